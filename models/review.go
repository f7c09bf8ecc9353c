package models

import "time"

type Review struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	OrderID   uint       `json:"orderId" gorm:"index"`
	Order     Order      `json:"order" gorm:"foreignKey:OrderID"`
	Rating    int        `json:"rating"` // Số sao 1-5
	Comment   string     `json:"comment"`
	Reply     string     `json:"reply"` // Phản hồi của quản trị viên
	RepliedAt *time.Time `json:"repliedAt,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}
