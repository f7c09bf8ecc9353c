package models

import (
	"time"

	"github.com/lib/pq"
)

// User là tài khoản nhân viên vận hành (lễ tân / quản trị viên)
type User struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Name      string        `gorm:"default:New User" json:"name"`
	Email     string        `gorm:"unique" json:"email"`
	Password  string        `json:"password"`
	Role      int           `gorm:"default:0" json:"role"`
	Status    int           `gorm:"default:1" json:"status"`
	HotelIDs  pq.Int64Array `json:"hotel_ids" gorm:"type:integer[]"` // Các khách sạn tài khoản này phụ trách
}
