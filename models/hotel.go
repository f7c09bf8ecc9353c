package models

import (
	"encoding/json"
	"fmt"
	"time"

	"hms/constants"
)

type Hotel struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name"`
	Address     string          `json:"address"`
	Phone       string          `json:"phone"`
	StarLevel   int             `json:"starLevel"` // Số sao 1-5
	Description string          `json:"description"`
	Status      int             `json:"status" gorm:"default:1"`
	Photos      json.RawMessage `json:"photos" gorm:"type:json"` // Danh sách URL ảnh
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Rooms       []Room          `json:"rooms" gorm:"foreignKey:HotelID"`
}

func (h *Hotel) ValidateStarLevel() error {
	if h.StarLevel < 1 || h.StarLevel > 5 {
		return fmt.Errorf("invalid star level: %d, must be between 1 and 5", h.StarLevel)
	}
	return nil
}

func (h *Hotel) ValidateStatus() error {
	if h.Status != constants.HotelStatusActive && h.Status != constants.HotelStatusInactive {
		return fmt.Errorf("invalid status: %d", h.Status)
	}
	return nil
}

func (h *Hotel) IsActive() bool {
	return h.Status == constants.HotelStatusActive
}
