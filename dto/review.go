package dto

import "time"

// CreateReviewRequest là yêu cầu tạo đánh giá cho một order
type CreateReviewRequest struct {
	OrderID uint   `json:"orderId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ReplyReviewRequest là phản hồi của quản trị viên cho đánh giá
type ReplyReviewRequest struct {
	ID    uint   `json:"id"`
	Reply string `json:"reply"`
}

// ReviewResponse là DTO cho đánh giá
type ReviewResponse struct {
	ID        uint       `json:"id"`
	OrderID   uint       `json:"orderId"`
	HotelName string     `json:"hotelName"`
	Customer  string     `json:"customer"`
	Rating    int        `json:"rating"`
	Comment   string     `json:"comment"`
	Reply     string     `json:"reply,omitempty"`
	RepliedAt *time.Time `json:"repliedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
