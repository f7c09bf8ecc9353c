package controllers

import (
	stderrors "errors"
	"strconv"
	"strings"

	"hms/config"
	"hms/constants"
	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func toHotelResponse(hotel *models.Hotel) dto.HotelResponse {
	return dto.HotelResponse{
		ID:          hotel.ID,
		Name:        hotel.Name,
		Address:     hotel.Address,
		Phone:       hotel.Phone,
		StarLevel:   hotel.StarLevel,
		Description: hotel.Description,
		Status:      hotel.Status,
		Photos:      hotel.Photos,
		NumRooms:    len(hotel.Rooms),
	}
}

// GetHotels liệt kê khách sạn kèm số phòng
func GetHotels(c *gin.Context) {
	tx := config.DB.Preload("Rooms")
	if statusStr := c.Query("status"); statusStr != "" {
		if status, err := strconv.Atoi(statusStr); err == nil {
			tx = tx.Where("status = ?", status)
		}
	}

	var hotels []models.Hotel
	if err := tx.Order("id").Find(&hotels).Error; err != nil {
		response.ServerError(c)
		return
	}

	data := make([]dto.HotelResponse, 0, len(hotels))
	for i := range hotels {
		data = append(data, toHotelResponse(&hotels[i]))
	}
	response.Success(c, data)
}

// GetHotelDetail trả về chi tiết khách sạn kèm danh sách phòng
func GetHotelDetail(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID khách sạn không hợp lệ")
		return
	}

	var hotel models.Hotel
	if err := config.DB.Preload("Rooms").First(&hotel, hotelID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"hotel": toHotelResponse(&hotel),
		"rooms": hotel.Rooms,
	})
}

// CreateHotel tạo khách sạn mới
func CreateHotel(c *gin.Context) {
	var req dto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	hotel := models.Hotel{
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		StarLevel:   req.StarLevel,
		Description: req.Description,
		Status:      constants.HotelStatusActive,
		Photos:      req.Photos,
	}
	if err := validator.ValidateHotel(&hotel); err != nil {
		response.FromError(c, err)
		return
	}

	if err := config.DB.Create(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, toHotelResponse(&hotel))
}

// UpdateHotel cập nhật thông tin khách sạn
func UpdateHotel(c *gin.Context) {
	var req dto.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if req.ID == 0 {
		response.BadRequest(c, "Thiếu ID khách sạn")
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, req.ID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if req.Name != "" {
		hotel.Name = req.Name
	}
	if req.Address != "" {
		hotel.Address = req.Address
	}
	if req.Phone != "" {
		hotel.Phone = req.Phone
	}
	if req.StarLevel != 0 {
		hotel.StarLevel = req.StarLevel
	}
	if req.Description != "" {
		hotel.Description = req.Description
	}
	if len(req.Photos) > 0 {
		hotel.Photos = req.Photos
	}
	if err := validator.ValidateHotel(&hotel); err != nil {
		response.FromError(c, err)
		return
	}

	if err := config.DB.Save(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, toHotelResponse(&hotel))
}

// ChangeHotelStatus bật/tắt khách sạn. Khách sạn tắt không xuất hiện trong
// kết quả tìm phòng.
func ChangeHotelStatus(c *gin.Context) {
	var req dto.ChangeHotelStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if req.Status != constants.HotelStatusActive && req.Status != constants.HotelStatusInactive {
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	result := config.DB.Model(&models.Hotel{}).Where("id = ?", req.ID).Update("status", req.Status)
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}
	response.Success(c, gin.H{"id": req.ID, "status": req.Status})
}

// CreateRoom thêm phòng cho khách sạn. Số phòng trùng trong cùng khách sạn
// trả về 409.
func CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateRoom(&req); err != nil {
		response.FromError(c, err)
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, req.HotelID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	room := models.Room{
		HotelID:    req.HotelID,
		RoomType:   req.RoomType,
		RoomNumber: req.RoomNumber,
		Price:      req.Price,
		Status:     constants.RoomStatusAvailable,
	}
	if err := config.DB.Create(&room).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			response.Conflict(c, "Số phòng đã tồn tại trong khách sạn này")
			return
		}
		response.ServerError(c)
		return
	}
	response.Success(c, room)
}

// UpdateRoom cập nhật loại, giá và trạng thái phòng
func UpdateRoom(c *gin.Context) {
	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if req.ID == 0 {
		response.BadRequest(c, "Thiếu ID phòng")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, req.ID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if req.RoomType != "" {
		room.RoomType = req.RoomType
	}
	if req.Price > 0 {
		room.Price = req.Price
	}
	room.Status = req.Status
	if err := room.ValidateStatus(); err != nil {
		response.BadRequest(c, "Trạng thái phòng không hợp lệ")
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, room)
}
