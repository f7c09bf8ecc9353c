package models

import (
	"fmt"
	"time"

	"hms/constants"
)

type Room struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	HotelID    uint   `json:"hotelId" gorm:"index;uniqueIndex:idx_hotel_room_number"`
	Hotel      Hotel  `json:"hotel" gorm:"foreignKey:HotelID"`
	RoomType   string `json:"roomType"`
	RoomNumber string `json:"roomNumber" gorm:"uniqueIndex:idx_hotel_room_number;type:varchar(16)"` // Số phòng, duy nhất trong một khách sạn
	// Price là giá mỗi đêm
	Price     float64   `json:"price"`
	Status    int       `json:"status" gorm:"default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Room) ValidateStatus() error {
	if r.Status < constants.RoomStatusAvailable || r.Status > constants.RoomStatusMaintenance {
		return fmt.Errorf("invalid status: %d, must be between 0 and 2", r.Status)
	}
	return nil
}

// Bookable phòng bảo trì không nhận đặt; phòng đang có khách vẫn nhận đặt
// cho cửa sổ ngày khác (trùng lịch đã có kiểm tra riêng).
func (r *Room) Bookable() bool {
	return r.Status != constants.RoomStatusMaintenance
}
