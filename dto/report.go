package dto

// ReportQuery là tham số truy vấn báo cáo thống kê
type ReportQuery struct {
	StartDate string `form:"startDate" json:"startDate"`
	EndDate   string `form:"endDate" json:"endDate"`
	HotelID   uint   `form:"hotelId" json:"hotelId,omitempty"`
}

// BookingStatisticsRow là một dòng thống kê đặt phòng theo khách sạn
type BookingStatisticsRow struct {
	HotelID           uint    `json:"hotelId"`
	HotelName         string  `json:"hotelName"`
	TotalBookings     int     `json:"totalBookings"`
	ConfirmedBookings int     `json:"confirmedBookings"`
	CheckInCount      int     `json:"checkInCount"`
	CancelledBookings int     `json:"cancelledBookings"`
	BookingRate       float64 `json:"bookingRate"`
	CheckInRate       float64 `json:"checkInRate"`
}

// RevenueStatisticsRow là một dòng thống kê doanh thu theo khách sạn theo tháng
type RevenueStatisticsRow struct {
	HotelID          uint    `json:"hotelId"`
	HotelName        string  `json:"hotelName"`
	Month            string  `json:"month"` // Dạng YYYY-MM
	TotalRevenue     float64 `json:"totalRevenue"`
	AverageRoomPrice float64 `json:"averageRoomPrice"`
	OrderCount       int     `json:"orderCount"`
}

// OccupancyRateRow là một dòng thống kê công suất phòng theo khách sạn theo ngày
type OccupancyRateRow struct {
	HotelID       uint    `json:"hotelId"`
	HotelName     string  `json:"hotelName"`
	Date          string  `json:"date"` // Dạng YYYY-MM-DD
	TotalRooms    int     `json:"totalRooms"`
	OccupiedRooms int     `json:"occupiedRooms"`
	OccupancyRate float64 `json:"occupancyRate"` // Phần trăm, đã kẹp trong [0, 100]
}
