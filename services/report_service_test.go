package services

import (
	"testing"

	"hms/models"
)

func reportHotels() []models.Hotel {
	return []models.Hotel{
		{ID: 1, Name: "Khách sạn Hoa Sen", Rooms: []models.Room{{ID: 11, HotelID: 1}, {ID: 12, HotelID: 1}}},
		{ID: 2, Name: "Biển Xanh Resort", Rooms: []models.Room{{ID: 21, HotelID: 2}}},
	}
}

func reportOrder(hotelID, roomID uint, status models.OrderStatus, checkIn, checkOut, createdAt string, amount float64) models.Order {
	return models.Order{
		RoomID:       roomID,
		Room:         models.Room{ID: roomID, HotelID: hotelID},
		Status:       status,
		CheckInDate:  date(checkIn),
		CheckOutDate: date(checkOut),
		CreatedAt:    date(createdAt),
		TotalAmount:  amount,
	}
}

func TestReduceBookingStatistics(t *testing.T) {
	orders := []models.Order{
		reportOrder(1, 11, models.OrderStatusPending, "2026-09-01", "2026-09-03", "2026-08-20", 100),
		reportOrder(1, 11, models.OrderStatusConfirmed, "2026-09-05", "2026-09-07", "2026-08-21", 100),
		reportOrder(1, 12, models.OrderStatusCheckedOut, "2026-09-01", "2026-09-02", "2026-08-22", 100),
		reportOrder(1, 12, models.OrderStatusCancelled, "2026-09-10", "2026-09-12", "2026-08-23", 100),
		reportOrder(2, 21, models.OrderStatusCheckedIn, "2026-09-01", "2026-09-04", "2026-08-24", 100),
	}

	rows := ReduceBookingStatistics(reportHotels(), orders)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	hotel1 := rows[0]
	if hotel1.HotelID != 1 {
		t.Fatalf("expected hotel 1 first, got %d", hotel1.HotelID)
	}
	if hotel1.TotalBookings != 4 {
		t.Errorf("hotel 1: expected 4 bookings, got %d", hotel1.TotalBookings)
	}
	// checked_out tính vào confirmed vì đã đi qua trạng thái đó
	if hotel1.ConfirmedBookings != 2 {
		t.Errorf("hotel 1: expected 2 confirmed, got %d", hotel1.ConfirmedBookings)
	}
	if hotel1.CheckInCount != 1 {
		t.Errorf("hotel 1: expected 1 check-in, got %d", hotel1.CheckInCount)
	}
	if hotel1.CancelledBookings != 1 {
		t.Errorf("hotel 1: expected 1 cancelled, got %d", hotel1.CancelledBookings)
	}
	if hotel1.BookingRate != 50 {
		t.Errorf("hotel 1: expected booking rate 50, got %v", hotel1.BookingRate)
	}
	if hotel1.CheckInRate != 25 {
		t.Errorf("hotel 1: expected check-in rate 25, got %v", hotel1.CheckInRate)
	}

	hotel2 := rows[1]
	if hotel2.TotalBookings != 1 || hotel2.CheckInCount != 1 {
		t.Errorf("hotel 2: expected 1 booking with 1 check-in, got %+v", hotel2)
	}
}

func TestReduceBookingStatisticsEmptyHotel(t *testing.T) {
	rows := ReduceBookingStatistics(reportHotels(), nil)
	if len(rows) != 2 {
		t.Fatalf("expected a row per hotel, got %d", len(rows))
	}
	for _, row := range rows {
		if row.TotalBookings != 0 || row.BookingRate != 0 {
			t.Errorf("hotel %d: expected zeroed row, got %+v", row.HotelID, row)
		}
	}
}

func TestReduceRevenueStatistics(t *testing.T) {
	orders := []models.Order{
		// Tháng 8: 2 đêm 600k + 3 đêm 900k
		reportOrder(1, 11, models.OrderStatusCheckedOut, "2026-08-10", "2026-08-12", "2026-08-01", 600000),
		reportOrder(1, 12, models.OrderStatusConfirmed, "2026-08-20", "2026-08-23", "2026-08-02", 900000),
		// Tháng 9 khách sạn khác
		reportOrder(2, 21, models.OrderStatusConfirmed, "2026-09-01", "2026-09-02", "2026-09-01", 700000),
		// Order hủy không tính doanh thu
		reportOrder(1, 11, models.OrderStatusCancelled, "2026-08-15", "2026-08-18", "2026-08-03", 999999),
	}

	rows := ReduceRevenueStatistics(reportHotels(), orders)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	august := rows[0]
	if august.HotelID != 1 || august.Month != "2026-08" {
		t.Fatalf("unexpected first row: %+v", august)
	}
	if august.TotalRevenue != 1500000 {
		t.Errorf("expected revenue 1500000, got %v", august.TotalRevenue)
	}
	if august.OrderCount != 2 {
		t.Errorf("expected 2 orders, got %d", august.OrderCount)
	}
	if august.AverageRoomPrice != 300000 {
		t.Errorf("expected average price 300000 (5 nights), got %v", august.AverageRoomPrice)
	}

	september := rows[1]
	if september.HotelID != 2 || september.Month != "2026-09" || september.TotalRevenue != 700000 {
		t.Fatalf("unexpected second row: %+v", september)
	}
}

func TestReduceOccupancyStatistics(t *testing.T) {
	orders := []models.Order{
		// Phòng 11 có khách đêm 01 và 02
		reportOrder(1, 11, models.OrderStatusConfirmed, "2026-09-01", "2026-09-03", "2026-08-20", 0),
		// Phòng 12 có khách đêm 02
		reportOrder(1, 12, models.OrderStatusCheckedIn, "2026-09-02", "2026-09-03", "2026-08-21", 0),
	}

	rows := ReduceOccupancyStatistics(reportHotels()[:1], orders, date("2026-09-01"), date("2026-09-03"))
	if len(rows) != 3 {
		t.Fatalf("expected 3 daily rows, got %d", len(rows))
	}

	expected := []struct {
		date     string
		occupied int
		rate     float64
	}{
		{"2026-09-01", 1, 50},
		{"2026-09-02", 2, 100},
		// 03 là ngày trả phòng, cửa sổ nửa mở nên không tính
		{"2026-09-03", 0, 0},
	}
	for i, want := range expected {
		row := rows[i]
		if row.Date != want.date {
			t.Fatalf("row %d: expected date %s, got %s", i, want.date, row.Date)
		}
		if row.OccupiedRooms != want.occupied {
			t.Errorf("%s: expected %d occupied, got %d", want.date, want.occupied, row.OccupiedRooms)
		}
		if row.OccupancyRate != want.rate {
			t.Errorf("%s: expected rate %v, got %v", want.date, want.rate, row.OccupancyRate)
		}
		if row.TotalRooms != 2 {
			t.Errorf("%s: expected 2 total rooms, got %d", want.date, row.TotalRooms)
		}
	}
}

func TestReduceOccupancyStatisticsDoubleCountedRoom(t *testing.T) {
	// Hai order trên cùng một phòng trong cùng đêm chỉ tính một phòng có khách
	orders := []models.Order{
		reportOrder(2, 21, models.OrderStatusConfirmed, "2026-09-01", "2026-09-02", "2026-08-20", 0),
		reportOrder(2, 21, models.OrderStatusCheckedOut, "2026-09-01", "2026-09-02", "2026-08-21", 0),
	}

	rows := ReduceOccupancyStatistics(reportHotels()[1:], orders, date("2026-09-01"), date("2026-09-01"))
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].OccupiedRooms != 1 {
		t.Errorf("expected 1 occupied room, got %d", rows[0].OccupiedRooms)
	}
	if rows[0].OccupancyRate != 100 {
		t.Errorf("expected rate 100, got %v", rows[0].OccupancyRate)
	}
}

func TestClampRate(t *testing.T) {
	cases := []struct {
		input    float64
		expected float64
	}{
		{-5, 0},
		{0, 0},
		{42.5, 42.5},
		{100, 100},
		{130, 100},
	}
	for _, tc := range cases {
		if got := clampRate(tc.input); got != tc.expected {
			t.Errorf("clampRate(%v): expected %v, got %v", tc.input, tc.expected, got)
		}
	}
}

func TestOccupancyWindowTouchesRange(t *testing.T) {
	// Order bắt đầu trước khoảng báo cáo vẫn tính cho các đêm nằm trong khoảng
	orders := []models.Order{
		reportOrder(2, 21, models.OrderStatusConfirmed, "2026-08-30", "2026-09-02", "2026-08-20", 0),
	}
	rows := ReduceOccupancyStatistics(reportHotels()[1:], orders, date("2026-09-01"), date("2026-09-01"))
	if rows[0].OccupiedRooms != 1 {
		t.Errorf("expected stay spanning into range to count, got %d occupied", rows[0].OccupiedRooms)
	}
}
