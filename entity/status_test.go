package entity

import "testing"

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderPending, OrderConfirmed, OrderPreparing, OrderReady, OrderDelivered, OrderCancelled,
	} {
		if !s.Valid() {
			t.Fatalf("expected %s to be recognized", s)
		}
	}
	for _, s := range []OrderStatus{"", "SHIPPED", "pending", "Pending"} {
		if s.Valid() {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	if !OrderDelivered.Terminal() || !OrderCancelled.Terminal() {
		t.Fatal("delivered and cancelled are terminal")
	}
	if OrderPending.Terminal() || OrderReady.Terminal() {
		t.Fatal("pending and ready are not terminal")
	}
}

func TestPaymentStatusValid(t *testing.T) {
	for _, s := range []PaymentStatus{PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded} {
		if !s.Valid() {
			t.Fatalf("expected %s to be recognized", s)
		}
	}
	if PaymentStatus("VOIDED").Valid() {
		t.Fatal("expected VOIDED to be rejected")
	}
}
