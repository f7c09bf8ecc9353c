package jobs

import (
	"log"
	"time"

	"hms/config"
	"hms/models"
	"hms/services"
	"hms/services/notification"
	"hms/utils"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// CancelStalePendingOrders hủy các order còn pending khi ngày nhận phòng đã
// qua. Khách không đến và lễ tân chưa xác nhận thì phòng phải được trả lại
// cho tìm kiếm.
func CancelStalePendingOrders(m *melody.Melody) {
	var stale []models.Order
	today := time.Now().Truncate(24 * time.Hour)
	if err := config.DB.
		Where("status = ? AND check_in_date < ?", models.OrderStatusPending, today).
		Find(&stale).Error; err != nil {
		utils.LogError("Lỗi khi truy vấn order quá hạn: %v", err)
		return
	}

	svc := services.NewOrderService(config.DB, notification.NewMelodyService(m))
	for _, order := range stale {
		if _, err := svc.Cancel(order.ID); err != nil {
			utils.LogError("Lỗi khi hủy order quá hạn %s: %v", order.OrderNumber, err)
			continue
		}
		utils.LogInfo("Đã tự động hủy order quá hạn %s", order.OrderNumber)
	}

	if len(stale) > 0 {
		services.FlushReportCache()
		log.Printf("Đã hủy %d order quá hạn nhận phòng", len(stale))
	}
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		log.Printf("Đang quét order quá hạn nhận phòng lúc: %v", time.Now())
		CancelStalePendingOrders(m)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
