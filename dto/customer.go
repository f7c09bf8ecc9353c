package dto

import "time"

// CustomerResponse là DTO cho thông tin khách hàng kèm lịch sử đặt phòng
type CustomerResponse struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Phone        string          `json:"phone"`
	Email        string          `json:"email"`
	IdCard       string          `json:"idCard"`
	CreatedAt    time.Time       `json:"createdAt"`
	OrderHistory []OrderResponse `json:"orderHistory,omitempty"`
}

// CreateCustomerRequest là yêu cầu thêm khách hàng
type CreateCustomerRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	IdCard string `json:"idCard"`
}

// UpdateCustomerRequest là yêu cầu cập nhật khách hàng
type UpdateCustomerRequest struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}
