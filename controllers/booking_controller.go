package controllers

import (
	"hms/config"
	"hms/dto"
	"hms/response"
	"hms/services"
	"hms/validator"

	"github.com/gin-gonic/gin"
)

// SearchAvailableRooms tìm phòng trống theo cửa sổ ngày và bộ lọc tùy chọn
func SearchAvailableRooms(c *gin.Context) {
	var query dto.BookingQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	svc := services.NewBookingService(config.DB)
	rooms, err := svc.SearchAvailableRooms(&query)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, rooms)
}

// BookRoom đặt phòng: tìm hoặc tạo khách theo CMND/CCCD rồi tạo order pending
func BookRoom(c *gin.Context) {
	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	facade := services.NewBookingFacade(config.DB, notifier)
	order, err := facade.BookRoom(&req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	services.FlushReportCache()
	invalidateOrderCache()

	response.Success(c, dto.BookingResultResponse{
		OrderID:      order.ID,
		OrderNumber:  order.OrderNumber,
		CustomerID:   order.CustomerID,
		RoomID:       order.RoomID,
		CheckInDate:  order.CheckInDate.Format(validator.DateLayout),
		CheckOutDate: order.CheckOutDate.Format(validator.DateLayout),
		TotalAmount:  order.TotalAmount,
		Status:       int(order.Status),
	})
}
