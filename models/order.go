package models

import (
	"time"
)

// OrderStatus là tập trạng thái đóng của order
type OrderStatus int

const (
	OrderStatusPending    OrderStatus = 0
	OrderStatusConfirmed  OrderStatus = 1
	OrderStatusCheckedIn  OrderStatus = 2
	OrderStatusCheckedOut OrderStatus = 3
	OrderStatusCancelled  OrderStatus = 4
)

// String trả về tên trạng thái dạng snake_case dùng cho log và báo cáo
func (s OrderStatus) String() string {
	switch s {
	case OrderStatusPending:
		return "pending"
	case OrderStatusConfirmed:
		return "confirmed"
	case OrderStatusCheckedIn:
		return "checked_in"
	case OrderStatusCheckedOut:
		return "checked_out"
	case OrderStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// IsTerminal kiểm tra trạng thái có phải trạng thái kết thúc không
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCheckedOut || s == OrderStatusCancelled
}

// ActiveOrderStatuses các trạng thái còn giữ phòng (tính vào kiểm tra trùng lịch)
var ActiveOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusCheckedIn,
}

type Order struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	OrderNumber  string      `json:"orderNumber" gorm:"uniqueIndex;type:varchar(32)"`
	CustomerID   uint        `json:"customerId"`
	Customer     Customer    `json:"customer" gorm:"foreignKey:CustomerID"`
	RoomID       uint        `json:"roomId" gorm:"index"`
	Room         Room        `json:"room" gorm:"foreignKey:RoomID"`
	CheckInDate  time.Time   `json:"checkInDate" gorm:"type:date;index"`
	CheckOutDate time.Time   `json:"checkOutDate" gorm:"type:date;index"`
	TotalAmount  float64     `json:"totalAmount"`
	Status       OrderStatus `json:"status" gorm:"index"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Nights số đêm của order, cửa sổ [checkIn, checkOut)
func (o *Order) Nights() int {
	return int(o.CheckOutDate.Sub(o.CheckInDate).Hours() / 24)
}
