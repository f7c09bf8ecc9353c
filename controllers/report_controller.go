package controllers

import (
	"hms/config"
	"hms/dto"
	"hms/response"
	"hms/services"

	"github.com/gin-gonic/gin"
)

// BookingStatistics thống kê đặt phòng theo khách sạn trong khoảng thời gian
func BookingStatistics(c *gin.Context) {
	var query dto.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	svc := services.NewReportService(config.DB)
	rows, err := svc.BookingStatistics(&query)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, rows)
}

// RevenueStatistics thống kê doanh thu theo khách sạn theo tháng
func RevenueStatistics(c *gin.Context) {
	var query dto.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	svc := services.NewReportService(config.DB)
	rows, err := svc.RevenueStatistics(&query)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, rows)
}

// OccupancyStatistics thống kê công suất phòng theo ngày
func OccupancyStatistics(c *gin.Context) {
	var query dto.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	svc := services.NewReportService(config.DB)
	rows, err := svc.OccupancyStatistics(&query)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, rows)
}
