package dto

import "encoding/json"

// CreateHotelRequest là yêu cầu tạo khách sạn
type CreateHotelRequest struct {
	Name        string          `json:"name"`
	Address     string          `json:"address"`
	Phone       string          `json:"phone"`
	StarLevel   int             `json:"starLevel"`
	Description string          `json:"description"`
	Photos      json.RawMessage `json:"photos,omitempty"`
}

// UpdateHotelRequest là yêu cầu cập nhật khách sạn
type UpdateHotelRequest struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Address     string          `json:"address"`
	Phone       string          `json:"phone"`
	StarLevel   int             `json:"starLevel"`
	Description string          `json:"description"`
	Photos      json.RawMessage `json:"photos,omitempty"`
}

// ChangeHotelStatusRequest là yêu cầu bật/tắt khách sạn
type ChangeHotelStatusRequest struct {
	ID     uint `json:"id"`
	Status int  `json:"status"`
}

// HotelResponse là DTO cho thông tin khách sạn
type HotelResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Address     string          `json:"address"`
	Phone       string          `json:"phone"`
	StarLevel   int             `json:"starLevel"`
	Description string          `json:"description"`
	Status      int             `json:"status"`
	Photos      json.RawMessage `json:"photos,omitempty"`
	NumRooms    int             `json:"numRooms"`
}

// CreateRoomRequest là yêu cầu thêm phòng cho khách sạn
type CreateRoomRequest struct {
	HotelID    uint    `json:"hotelId"`
	RoomType   string  `json:"roomType"`
	RoomNumber string  `json:"roomNumber"`
	Price      float64 `json:"price"`
}

// UpdateRoomRequest là yêu cầu cập nhật phòng
type UpdateRoomRequest struct {
	ID       uint    `json:"id"`
	RoomType string  `json:"roomType"`
	Price    float64 `json:"price"`
	Status   int     `json:"status"`
}
