package builders

import (
	"time"

	"hms/models"
)

// OrderBuilder giúp tạo order theo từng bước
type OrderBuilder struct {
	order *models.Order
}

// NewOrderBuilder tạo instance mới của OrderBuilder
func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		order: &models.Order{},
	}
}

// WithOrderNumber thêm mã order
func (b *OrderBuilder) WithOrderNumber(orderNumber string) *OrderBuilder {
	b.order.OrderNumber = orderNumber
	return b
}

// WithCustomer thêm thông tin khách hàng
func (b *OrderBuilder) WithCustomer(customerID uint) *OrderBuilder {
	b.order.CustomerID = customerID
	return b
}

// WithRoom thêm thông tin phòng
func (b *OrderBuilder) WithRoom(roomID uint) *OrderBuilder {
	b.order.RoomID = roomID
	return b
}

// WithStay thêm cửa sổ lưu trú [checkIn, checkOut)
func (b *OrderBuilder) WithStay(checkIn, checkOut time.Time) *OrderBuilder {
	b.order.CheckInDate = checkIn
	b.order.CheckOutDate = checkOut
	return b
}

// WithTotalAmount thêm tổng tiền
func (b *OrderBuilder) WithTotalAmount(totalAmount float64) *OrderBuilder {
	b.order.TotalAmount = totalAmount
	return b
}

// WithStatus thêm trạng thái
func (b *OrderBuilder) WithStatus(status models.OrderStatus) *OrderBuilder {
	b.order.Status = status
	return b
}

// Build tạo order hoàn chỉnh
func (b *OrderBuilder) Build() *models.Order {
	return b.order
}
