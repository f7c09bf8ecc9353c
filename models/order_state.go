package models

import (
	"fmt"

	"hms/errors"
)

// OrderState định nghĩa interface cho các trạng thái order.
// Mỗi trạng thái tự quyết định phép chuyển nào hợp lệ; gọi sai luôn trả lỗi
// ILLEGAL_TRANSITION thay vì lặng lẽ bỏ qua.
type OrderState interface {
	Confirm(order *Order) error
	Cancel(order *Order) error
	CheckIn(order *Order) error
	CheckOut(order *Order) error
	// CanEditStay cho biết order còn được sửa thông tin lưu trú không
	CanEditStay() bool
}

func illegalTransition(action string, current OrderStatus) error {
	return errors.NewAppError(errors.ErrCodeIllegalTransition,
		fmt.Sprintf("không thể %s order đang ở trạng thái %s", action, current), nil)
}

// PendingState trạng thái chờ xác nhận
type PendingState struct{}

func (s *PendingState) Confirm(order *Order) error {
	order.Status = OrderStatusConfirmed
	return nil
}

func (s *PendingState) Cancel(order *Order) error {
	order.Status = OrderStatusCancelled
	return nil
}

func (s *PendingState) CheckIn(order *Order) error {
	return illegalTransition("check-in", OrderStatusPending)
}

func (s *PendingState) CheckOut(order *Order) error {
	return illegalTransition("check-out", OrderStatusPending)
}

func (s *PendingState) CanEditStay() bool { return true }

// ConfirmedState trạng thái đã xác nhận
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(order *Order) error {
	return illegalTransition("xác nhận lại", OrderStatusConfirmed)
}

func (s *ConfirmedState) Cancel(order *Order) error {
	order.Status = OrderStatusCancelled
	return nil
}

func (s *ConfirmedState) CheckIn(order *Order) error {
	order.Status = OrderStatusCheckedIn
	return nil
}

func (s *ConfirmedState) CheckOut(order *Order) error {
	return illegalTransition("check-out", OrderStatusConfirmed)
}

func (s *ConfirmedState) CanEditStay() bool { return true }

// CheckedInState trạng thái khách đã nhận phòng.
// Khách đã ở trong phòng thì không hủy được nữa, chỉ có thể trả phòng.
type CheckedInState struct{}

func (s *CheckedInState) Confirm(order *Order) error {
	return illegalTransition("xác nhận", OrderStatusCheckedIn)
}

func (s *CheckedInState) Cancel(order *Order) error {
	return illegalTransition("hủy", OrderStatusCheckedIn)
}

func (s *CheckedInState) CheckIn(order *Order) error {
	return illegalTransition("check-in lại", OrderStatusCheckedIn)
}

func (s *CheckedInState) CheckOut(order *Order) error {
	order.Status = OrderStatusCheckedOut
	return nil
}

func (s *CheckedInState) CanEditStay() bool { return false }

// CheckedOutState trạng thái đã trả phòng (kết thúc)
type CheckedOutState struct{}

func (s *CheckedOutState) Confirm(order *Order) error {
	return illegalTransition("xác nhận", OrderStatusCheckedOut)
}

func (s *CheckedOutState) Cancel(order *Order) error {
	return illegalTransition("hủy", OrderStatusCheckedOut)
}

func (s *CheckedOutState) CheckIn(order *Order) error {
	return illegalTransition("check-in", OrderStatusCheckedOut)
}

func (s *CheckedOutState) CheckOut(order *Order) error {
	return illegalTransition("check-out lại", OrderStatusCheckedOut)
}

func (s *CheckedOutState) CanEditStay() bool { return false }

// CancelledState trạng thái đã hủy (kết thúc)
type CancelledState struct{}

func (s *CancelledState) Confirm(order *Order) error {
	return illegalTransition("xác nhận", OrderStatusCancelled)
}

func (s *CancelledState) Cancel(order *Order) error {
	return illegalTransition("hủy lại", OrderStatusCancelled)
}

func (s *CancelledState) CheckIn(order *Order) error {
	return illegalTransition("check-in", OrderStatusCancelled)
}

func (s *CancelledState) CheckOut(order *Order) error {
	return illegalTransition("check-out", OrderStatusCancelled)
}

func (s *CancelledState) CanEditStay() bool { return false }

// GetOrderState trả về state tương ứng với trạng thái order
func GetOrderState(status OrderStatus) OrderState {
	switch status {
	case OrderStatusPending:
		return &PendingState{}
	case OrderStatusConfirmed:
		return &ConfirmedState{}
	case OrderStatusCheckedIn:
		return &CheckedInState{}
	case OrderStatusCheckedOut:
		return &CheckedOutState{}
	case OrderStatusCancelled:
		return &CancelledState{}
	default:
		return &PendingState{}
	}
}
