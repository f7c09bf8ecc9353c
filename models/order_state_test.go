package models

import (
	"testing"

	"hms/errors"
)

func TestOrderStateTransitions(t *testing.T) {
	type action struct {
		name  string
		apply func(state OrderState, order *Order) error
	}
	confirm := action{"confirm", func(s OrderState, o *Order) error { return s.Confirm(o) }}
	cancel := action{"cancel", func(s OrderState, o *Order) error { return s.Cancel(o) }}
	checkIn := action{"checkin", func(s OrderState, o *Order) error { return s.CheckIn(o) }}
	checkOut := action{"checkout", func(s OrderState, o *Order) error { return s.CheckOut(o) }}

	cases := []struct {
		name     string
		from     OrderStatus
		action   action
		wantErr  bool
		expected OrderStatus
	}{
		{name: "pending confirm", from: OrderStatusPending, action: confirm, expected: OrderStatusConfirmed},
		{name: "pending cancel", from: OrderStatusPending, action: cancel, expected: OrderStatusCancelled},
		{name: "pending checkin", from: OrderStatusPending, action: checkIn, wantErr: true},
		{name: "pending checkout", from: OrderStatusPending, action: checkOut, wantErr: true},

		{name: "confirmed confirm", from: OrderStatusConfirmed, action: confirm, wantErr: true},
		{name: "confirmed cancel", from: OrderStatusConfirmed, action: cancel, expected: OrderStatusCancelled},
		{name: "confirmed checkin", from: OrderStatusConfirmed, action: checkIn, expected: OrderStatusCheckedIn},
		{name: "confirmed checkout", from: OrderStatusConfirmed, action: checkOut, wantErr: true},

		{name: "checked_in confirm", from: OrderStatusCheckedIn, action: confirm, wantErr: true},
		{name: "checked_in cancel", from: OrderStatusCheckedIn, action: cancel, wantErr: true},
		{name: "checked_in checkin", from: OrderStatusCheckedIn, action: checkIn, wantErr: true},
		{name: "checked_in checkout", from: OrderStatusCheckedIn, action: checkOut, expected: OrderStatusCheckedOut},

		{name: "checked_out confirm", from: OrderStatusCheckedOut, action: confirm, wantErr: true},
		{name: "checked_out cancel", from: OrderStatusCheckedOut, action: cancel, wantErr: true},
		{name: "checked_out checkin", from: OrderStatusCheckedOut, action: checkIn, wantErr: true},
		{name: "checked_out checkout", from: OrderStatusCheckedOut, action: checkOut, wantErr: true},

		{name: "cancelled confirm", from: OrderStatusCancelled, action: confirm, wantErr: true},
		{name: "cancelled cancel", from: OrderStatusCancelled, action: cancel, wantErr: true},
		{name: "cancelled checkin", from: OrderStatusCancelled, action: checkIn, wantErr: true},
		{name: "cancelled checkout", from: OrderStatusCancelled, action: checkOut, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := &Order{Status: tc.from}
			state := GetOrderState(order.Status)
			err := tc.action.apply(state, order)

			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil (status now %s)", order.Status)
				}
				if !errors.HasCode(err, errors.ErrCodeIllegalTransition) {
					t.Fatalf("expected ILLEGAL_TRANSITION, got %v", err)
				}
				if order.Status != tc.from {
					t.Fatalf("status changed on rejected transition: %s -> %s", tc.from, order.Status)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if order.Status != tc.expected {
				t.Fatalf("expected status %s, got %s", tc.expected, order.Status)
			}
		})
	}
}

func TestDoubleConfirmOnlyFirstSucceeds(t *testing.T) {
	order := &Order{Status: OrderStatusPending}

	if err := GetOrderState(order.Status).Confirm(order); err != nil {
		t.Fatalf("first confirm failed: %v", err)
	}
	if order.Status != OrderStatusConfirmed {
		t.Fatalf("expected confirmed, got %s", order.Status)
	}

	err := GetOrderState(order.Status).Confirm(order)
	if err == nil {
		t.Fatal("second confirm should fail")
	}
	if !errors.HasCode(err, errors.ErrCodeIllegalTransition) {
		t.Fatalf("expected ILLEGAL_TRANSITION, got %v", err)
	}
}

func TestCanEditStay(t *testing.T) {
	cases := []struct {
		status   OrderStatus
		editable bool
	}{
		{OrderStatusPending, true},
		{OrderStatusConfirmed, true},
		{OrderStatusCheckedIn, false},
		{OrderStatusCheckedOut, false},
		{OrderStatusCancelled, false},
	}
	for _, tc := range cases {
		if got := GetOrderState(tc.status).CanEditStay(); got != tc.editable {
			t.Errorf("status %s: expected editable=%v, got %v", tc.status, tc.editable, got)
		}
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	for _, status := range []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusCheckedIn} {
		if status.IsTerminal() {
			t.Errorf("%s should not be terminal", status)
		}
	}
	for _, status := range []OrderStatus{OrderStatusCheckedOut, OrderStatusCancelled} {
		if !status.IsTerminal() {
			t.Errorf("%s should be terminal", status)
		}
	}
}
