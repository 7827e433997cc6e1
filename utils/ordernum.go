package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewOrderNumber returns "ORD-<unix millis>-<suffix>". The random suffix
// keeps two orders created in the same millisecond from colliding.
func NewOrderNumber() string {
	millis := time.Now().UnixMilli()
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("ORD-%d-%s", millis, suffix)
}
