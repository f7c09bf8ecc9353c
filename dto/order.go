package dto

import "time"

// OrderCustomerResponse là thông tin khách trong order
type OrderCustomerResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	IdCard string `json:"idCard"`
}

// OrderHotelResponse là thông tin khách sạn trong order
type OrderHotelResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	StarLevel int    `json:"starLevel"`
}

// OrderRoomResponse là thông tin phòng trong order
type OrderRoomResponse struct {
	ID         uint    `json:"id"`
	HotelID    uint    `json:"hotelId"`
	RoomType   string  `json:"roomType"`
	RoomNumber string  `json:"roomNumber"`
	Price      float64 `json:"price"`
}

// OrderResponse là DTO cho response của order
type OrderResponse struct {
	ID           uint                  `json:"id"`
	OrderNumber  string                `json:"orderNumber"`
	Customer     OrderCustomerResponse `json:"customer"`
	Hotel        OrderHotelResponse    `json:"hotel"`
	Room         OrderRoomResponse     `json:"room"`
	CheckInDate  string                `json:"checkInDate"`
	CheckOutDate string                `json:"checkOutDate"`
	Nights       int                   `json:"nights"`
	TotalAmount  float64               `json:"totalAmount"`
	Status       int                   `json:"status"`
	StatusText   string                `json:"statusText"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// UpdateOrderRequest là yêu cầu sửa thông tin lưu trú của order.
// Trường bỏ trống giữ nguyên giá trị hiện tại.
type UpdateOrderRequest struct {
	ID           uint   `json:"id"`
	CheckInDate  string `json:"checkInDate,omitempty"`
	CheckOutDate string `json:"checkOutDate,omitempty"`
	RoomID       uint   `json:"roomId,omitempty"`
}
