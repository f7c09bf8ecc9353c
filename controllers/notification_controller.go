package controllers

import (
	"strconv"

	"hms/config"
	"hms/response"
	"hms/services"
	"hms/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// notifier đẩy thông báo sự kiện order lên console vận hành qua websocket.
// Được gán một lần khi dựng route.
var notifier notification.Service

// InitNotifier gắn kênh websocket cho các controller
func InitNotifier(m *melody.Melody) {
	notifier = notification.NewMelodyService(m)
}

// NotifyCheckIn nhắc khách nhận phòng cho order đã xác nhận
func NotifyCheckIn(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID order không hợp lệ")
		return
	}

	svc := services.NewOrderService(config.DB, notifier)
	if err := svc.NotifyCheckIn(uint(orderID)); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"notified": true})
}
