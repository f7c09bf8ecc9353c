package models

import "time"

type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone" gorm:"type:varchar(16)"`
	Email     string    `json:"email"`
	IdCard    string    `json:"idCard" gorm:"uniqueIndex;type:varchar(32);not null"` // CMND/CCCD, khóa tự nhiên chống trùng khách
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Orders    []Order   `json:"orders,omitempty" gorm:"foreignKey:CustomerID"`
}
