package services

import (
	"fmt"
	"sort"
	"time"

	"hms/config"
	"hms/dto"
	"hms/errors"
	"hms/models"
	"hms/services/logger"
	"hms/validator"

	"gorm.io/gorm"
)

// ReportService gom số liệu thống kê từ order và phòng. Truy vấn lấy dữ liệu
// thô theo khoảng thời gian rồi gom nhóm trong bộ nhớ, kết quả được cache
// Redis 10 phút như danh sách ở các màn hình khác.
type ReportService struct {
	db  *gorm.DB
	log logger.Logger
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db, log: logger.NewDefaultLogger(logger.InfoLevel)}
}

// occupiedOrderStatuses là các trạng thái order được tính là có khách giữ phòng
// trong đêm thuộc lịch lưu trú của order
var occupiedOrderStatuses = []models.OrderStatus{
	models.OrderStatusConfirmed,
	models.OrderStatusCheckedIn,
	models.OrderStatusCheckedOut,
}

// parseReportRange đọc và kiểm tra khoảng thời gian báo cáo. Ngày kết thúc
// được hiểu bao gồm cả ngày đó.
func parseReportRange(query *dto.ReportQuery) (time.Time, time.Time, error) {
	start, err := validator.ParseDate(query.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := validator.ParseDate(query.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDateRange,
			"Ngày kết thúc phải sau hoặc bằng ngày bắt đầu", errors.ErrInvalidDateRange)
	}
	return start, end, nil
}

func (s *ReportService) fetchOrders(start, end time.Time, hotelID uint) ([]models.Order, error) {
	var orders []models.Order
	tx := s.db.Preload("Room").
		Joins("JOIN rooms ON rooms.id = orders.room_id").
		Where("orders.created_at >= ? AND orders.created_at < ?", start, end.AddDate(0, 0, 1))
	if hotelID != 0 {
		tx = tx.Where("rooms.hotel_id = ?", hotelID)
	}
	if err := tx.Find(&orders).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi truy vấn order cho báo cáo", err)
	}
	return orders, nil
}

func (s *ReportService) fetchHotels(hotelID uint) ([]models.Hotel, error) {
	var hotels []models.Hotel
	tx := s.db.Preload("Rooms")
	if hotelID != 0 {
		tx = tx.Where("id = ?", hotelID)
	}
	if err := tx.Find(&hotels).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi truy vấn khách sạn cho báo cáo", err)
	}
	return hotels, nil
}

// BookingStatistics thống kê lượng đặt phòng theo khách sạn trong khoảng thời gian
func (s *ReportService) BookingStatistics(query *dto.ReportQuery) ([]dto.BookingStatisticsRow, error) {
	start, end, err := parseReportRange(query)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("reports:bookings:%s:%s:%d", query.StartDate, query.EndDate, query.HotelID)
	var cached []dto.BookingStatisticsRow
	if err := GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &cached); err == nil && len(cached) > 0 {
		return cached, nil
	}

	hotels, err := s.fetchHotels(query.HotelID)
	if err != nil {
		return nil, err
	}
	orders, err := s.fetchOrders(start, end, query.HotelID)
	if err != nil {
		return nil, err
	}

	rows := ReduceBookingStatistics(hotels, orders)
	if err := SetToRedis(config.Ctx, config.RedisClient, cacheKey, rows, 10*time.Minute); err != nil {
		s.log.Error("Không thể lưu cache báo cáo đặt phòng: %v", err)
	}
	return rows, nil
}

// RevenueStatistics thống kê doanh thu theo khách sạn theo tháng. Order bị hủy
// không tính vào doanh thu.
func (s *ReportService) RevenueStatistics(query *dto.ReportQuery) ([]dto.RevenueStatisticsRow, error) {
	start, end, err := parseReportRange(query)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("reports:revenue:%s:%s:%d", query.StartDate, query.EndDate, query.HotelID)
	var cached []dto.RevenueStatisticsRow
	if err := GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &cached); err == nil && len(cached) > 0 {
		return cached, nil
	}

	hotels, err := s.fetchHotels(query.HotelID)
	if err != nil {
		return nil, err
	}
	orders, err := s.fetchOrders(start, end, query.HotelID)
	if err != nil {
		return nil, err
	}

	rows := ReduceRevenueStatistics(hotels, orders)
	if err := SetToRedis(config.Ctx, config.RedisClient, cacheKey, rows, 10*time.Minute); err != nil {
		s.log.Error("Không thể lưu cache báo cáo doanh thu: %v", err)
	}
	return rows, nil
}

// OccupancyStatistics thống kê công suất phòng theo khách sạn theo từng ngày
// trong khoảng thời gian
func (s *ReportService) OccupancyStatistics(query *dto.ReportQuery) ([]dto.OccupancyRateRow, error) {
	start, end, err := parseReportRange(query)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("reports:occupancy:%s:%s:%d", query.StartDate, query.EndDate, query.HotelID)
	var cached []dto.OccupancyRateRow
	if err := GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &cached); err == nil && len(cached) > 0 {
		return cached, nil
	}

	hotels, err := s.fetchHotels(query.HotelID)
	if err != nil {
		return nil, err
	}

	// Công suất tính theo đêm lưu trú nên lấy mọi order có lịch chạm vào khoảng
	// báo cáo, không lọc theo ngày tạo
	var orders []models.Order
	tx := s.db.Preload("Room").
		Joins("JOIN rooms ON rooms.id = orders.room_id").
		Where("orders.check_in_date < ? AND orders.check_out_date > ?", end.AddDate(0, 0, 1), start).
		Where("orders.status IN ?", occupiedOrderStatuses)
	if query.HotelID != 0 {
		tx = tx.Where("rooms.hotel_id = ?", query.HotelID)
	}
	if err := tx.Find(&orders).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi truy vấn order cho báo cáo", err)
	}

	rows := ReduceOccupancyStatistics(hotels, orders, start, end)
	if err := SetToRedis(config.Ctx, config.RedisClient, cacheKey, rows, 10*time.Minute); err != nil {
		s.log.Error("Không thể lưu cache báo cáo công suất: %v", err)
	}
	return rows, nil
}

// ReduceBookingStatistics gom order theo khách sạn và đếm theo trạng thái.
// Tỷ lệ đặt là phần trăm order đã xác nhận trở lên trên tổng order, tỷ lệ
// nhận phòng là phần trăm order đã nhận phòng trở lên.
func ReduceBookingStatistics(hotels []models.Hotel, orders []models.Order) []dto.BookingStatisticsRow {
	type bucket struct {
		total     int
		confirmed int
		checkedIn int
		cancelled int
	}
	buckets := make(map[uint]*bucket)
	names := make(map[uint]string)
	for _, h := range hotels {
		buckets[h.ID] = &bucket{}
		names[h.ID] = h.Name
	}

	for _, o := range orders {
		b, ok := buckets[o.Room.HotelID]
		if !ok {
			continue
		}
		b.total++
		switch o.Status {
		case models.OrderStatusConfirmed:
			b.confirmed++
		case models.OrderStatusCheckedIn, models.OrderStatusCheckedOut:
			b.confirmed++
			b.checkedIn++
		case models.OrderStatusCancelled:
			b.cancelled++
		}
	}

	rows := make([]dto.BookingStatisticsRow, 0, len(buckets))
	for hotelID, b := range buckets {
		row := dto.BookingStatisticsRow{
			HotelID:           hotelID,
			HotelName:         names[hotelID],
			TotalBookings:     b.total,
			ConfirmedBookings: b.confirmed,
			CheckInCount:      b.checkedIn,
			CancelledBookings: b.cancelled,
		}
		if b.total > 0 {
			row.BookingRate = clampRate(float64(b.confirmed) / float64(b.total) * 100)
			row.CheckInRate = clampRate(float64(b.checkedIn) / float64(b.total) * 100)
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].HotelID < rows[j].HotelID })
	return rows
}

// ReduceRevenueStatistics gom doanh thu theo khách sạn theo tháng tạo order.
// Giá phòng trung bình là doanh thu chia tổng số đêm đã bán.
func ReduceRevenueStatistics(hotels []models.Hotel, orders []models.Order) []dto.RevenueStatisticsRow {
	type key struct {
		hotelID uint
		month   string
	}
	type bucket struct {
		revenue float64
		nights  int
		count   int
	}
	names := make(map[uint]string)
	for _, h := range hotels {
		names[h.ID] = h.Name
	}

	buckets := make(map[key]*bucket)
	for _, o := range orders {
		if o.Status == models.OrderStatusCancelled {
			continue
		}
		if _, ok := names[o.Room.HotelID]; !ok {
			continue
		}
		k := key{hotelID: o.Room.HotelID, month: o.CreatedAt.Format("2006-01")}
		b, ok := buckets[k]
		if !ok {
			b = &bucket{}
			buckets[k] = b
		}
		b.revenue += o.TotalAmount
		b.nights += o.Nights()
		b.count++
	}

	rows := make([]dto.RevenueStatisticsRow, 0, len(buckets))
	for k, b := range buckets {
		row := dto.RevenueStatisticsRow{
			HotelID:      k.hotelID,
			HotelName:    names[k.hotelID],
			Month:        k.month,
			TotalRevenue: b.revenue,
			OrderCount:   b.count,
		}
		if b.nights > 0 {
			row.AverageRoomPrice = b.revenue / float64(b.nights)
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].HotelID != rows[j].HotelID {
			return rows[i].HotelID < rows[j].HotelID
		}
		return rows[i].Month < rows[j].Month
	})
	return rows
}

// ReduceOccupancyStatistics tính công suất từng đêm trong [start, end] cho mỗi
// khách sạn: số phòng có order giữ đêm đó chia tổng số phòng của khách sạn.
// Order dùng cửa sổ nửa mở nên đêm trả phòng không tính là có khách.
func ReduceOccupancyStatistics(hotels []models.Hotel, orders []models.Order, start, end time.Time) []dto.OccupancyRateRow {
	var rows []dto.OccupancyRateRow
	for _, h := range hotels {
		totalRooms := len(h.Rooms)
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			occupied := make(map[uint]bool)
			for _, o := range orders {
				if o.Room.HotelID != h.ID {
					continue
				}
				if !day.Before(o.CheckInDate) && day.Before(o.CheckOutDate) {
					occupied[o.RoomID] = true
				}
			}
			row := dto.OccupancyRateRow{
				HotelID:       h.ID,
				HotelName:     h.Name,
				Date:          day.Format(validator.DateLayout),
				TotalRooms:    totalRooms,
				OccupiedRooms: len(occupied),
			}
			if totalRooms > 0 {
				row.OccupancyRate = clampRate(float64(len(occupied)) / float64(totalRooms) * 100)
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// clampRate kẹp tỷ lệ phần trăm trong [0, 100]
func clampRate(rate float64) float64 {
	if rate < 0 {
		return 0
	}
	if rate > 100 {
		return 100
	}
	return rate
}

// FlushReportCache xóa toàn bộ cache báo cáo, gọi khi order thay đổi trạng thái
func FlushReportCache() {
	if config.RedisClient == nil {
		return
	}
	_ = DeleteByPattern(config.Ctx, config.RedisClient, "reports:*")
}
