package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error so the HTTP layer can pick a status code
// without string-matching messages.
type Kind int

const (
	KindNotFound   Kind = iota // entity id does not resolve
	KindValidation             // missing/malformed field, unrecognized enum value
	KindConflict               // duplicate review, dependent-row delete guard
	KindDomainRule             // inactive chef, unavailable product
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func NotFound(entity string, id uint) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s %d not found", entity, id)}
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func DomainRule(format string, args ...any) *Error {
	return &Error{Kind: KindDomainRule, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err and whether err is an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
