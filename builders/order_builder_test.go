package builders

import (
	"testing"
	"time"

	"hms/models"
)

func TestOrderBuilder(t *testing.T) {
	checkIn := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

	order := NewOrderBuilder().
		WithOrderNumber("ORD1756600000000ABC123").
		WithCustomer(7).
		WithRoom(11).
		WithStay(checkIn, checkOut).
		WithTotalAmount(1500000).
		WithStatus(models.OrderStatusPending).
		Build()

	if order.OrderNumber != "ORD1756600000000ABC123" {
		t.Errorf("unexpected order number: %s", order.OrderNumber)
	}
	if order.CustomerID != 7 {
		t.Errorf("expected customer 7, got %d", order.CustomerID)
	}
	if order.RoomID != 11 {
		t.Errorf("expected room 11, got %d", order.RoomID)
	}
	if !order.CheckInDate.Equal(checkIn) || !order.CheckOutDate.Equal(checkOut) {
		t.Errorf("unexpected stay window: %v - %v", order.CheckInDate, order.CheckOutDate)
	}
	if order.TotalAmount != 1500000 {
		t.Errorf("expected total 1500000, got %v", order.TotalAmount)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("expected pending status, got %s", order.Status)
	}
	if order.Nights() != 3 {
		t.Errorf("expected 3 nights, got %d", order.Nights())
	}
}

func TestOrderBuilderDefaults(t *testing.T) {
	order := NewOrderBuilder().Build()
	if order.Status != models.OrderStatusPending {
		t.Errorf("zero-value order should be pending, got %s", order.Status)
	}
}
