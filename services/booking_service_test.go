package services

import (
	"regexp"
	"testing"
	"time"

	"hms/dto"
	"hms/models"
)

func date(s string) time.Time {
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestWindowsOverlap(t *testing.T) {
	cases := []struct {
		name     string
		aFrom    string
		aTo      string
		bFrom    string
		bTo      string
		expected bool
	}{
		{name: "identical", aFrom: "2026-09-01", aTo: "2026-09-04", bFrom: "2026-09-01", bTo: "2026-09-04", expected: true},
		{name: "partial overlap", aFrom: "2026-09-01", aTo: "2026-09-04", bFrom: "2026-09-03", bTo: "2026-09-06", expected: true},
		{name: "contained", aFrom: "2026-09-01", aTo: "2026-09-10", bFrom: "2026-09-03", bTo: "2026-09-05", expected: true},
		{name: "abutting checkout checkin", aFrom: "2026-09-01", aTo: "2026-09-04", bFrom: "2026-09-04", bTo: "2026-09-07", expected: false},
		{name: "abutting reversed", aFrom: "2026-09-04", aTo: "2026-09-07", bFrom: "2026-09-01", bTo: "2026-09-04", expected: false},
		{name: "disjoint", aFrom: "2026-09-01", aTo: "2026-09-03", bFrom: "2026-09-10", bTo: "2026-09-12", expected: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := WindowsOverlap(date(tc.aFrom), date(tc.aTo), date(tc.bFrom), date(tc.bTo))
			if got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestCalculateNightsAndTotalAmount(t *testing.T) {
	nights := CalculateNights(date("2026-09-01"), date("2026-09-04"))
	if nights != 3 {
		t.Fatalf("expected 3 nights, got %d", nights)
	}
	if total := CalculateTotalAmount(200, nights); total != 600 {
		t.Fatalf("expected total 600, got %v", total)
	}

	if nights := CalculateNights(date("2026-09-01"), date("2026-09-01")); nights != 0 {
		t.Fatalf("expected 0 nights for same-day window, got %d", nights)
	}
}

func TestGenerateOrderNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD\d{13}[0-9A-F]{6}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number := GenerateOrderNumber()
		if !pattern.MatchString(number) {
			t.Fatalf("order number %q does not match expected format", number)
		}
		if seen[number] {
			t.Fatalf("duplicate order number generated: %s", number)
		}
		seen[number] = true
	}
}

func testRooms() []models.Room {
	hanoi := models.Hotel{ID: 1, Name: "Khách sạn Hoa Sen", Address: "12 Tràng Tiền, Hà Nội", StarLevel: 4}
	danang := models.Hotel{ID: 2, Name: "Biển Xanh Resort", Address: "Võ Nguyên Giáp, Đà Nẵng", StarLevel: 5}
	return []models.Room{
		{ID: 11, HotelID: 1, Hotel: hanoi, RoomType: "standard", RoomNumber: "101", Price: 500000},
		{ID: 12, HotelID: 1, Hotel: hanoi, RoomType: "deluxe", RoomNumber: "201", Price: 900000},
		{ID: 21, HotelID: 2, Hotel: danang, RoomType: "standard", RoomNumber: "101", Price: 700000},
		{ID: 22, HotelID: 2, Hotel: danang, RoomType: "suite", RoomNumber: "301", Price: 2000000},
	}
}

func TestFilterAvailableRoomsExcludesBooked(t *testing.T) {
	results := FilterAvailableRooms(testRooms(), []uint{11, 22}, &dto.BookingQuery{})
	if len(results) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(results))
	}
	for _, r := range results {
		if r.RoomID == 11 || r.RoomID == 22 {
			t.Fatalf("booked room %d leaked into results", r.RoomID)
		}
	}
}

func TestFilterAvailableRoomsFilters(t *testing.T) {
	cases := []struct {
		name     string
		query    dto.BookingQuery
		expected []uint
	}{
		{name: "no filters sorted by hotel then room number", query: dto.BookingQuery{}, expected: []uint{11, 12, 21, 22}},
		{name: "room type equality", query: dto.BookingQuery{RoomType: "standard"}, expected: []uint{11, 21}},
		{name: "room type case and accent insensitive", query: dto.BookingQuery{RoomType: "STANDARD"}, expected: []uint{11, 21}},
		{name: "location substring", query: dto.BookingQuery{Location: "đà nẵng"}, expected: []uint{21, 22}},
		{name: "hotel name substring", query: dto.BookingQuery{HotelName: "hoa sen"}, expected: []uint{11, 12}},
		{name: "combined filters", query: dto.BookingQuery{Location: "hà nội", RoomType: "deluxe"}, expected: []uint{12}},
		{name: "no match", query: dto.BookingQuery{Location: "sài gòn"}, expected: []uint{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			results := FilterAvailableRooms(testRooms(), nil, &tc.query)
			if len(results) != len(tc.expected) {
				t.Fatalf("expected %d rooms, got %d", len(tc.expected), len(results))
			}
			for i, id := range tc.expected {
				if results[i].RoomID != id {
					t.Fatalf("position %d: expected room %d, got %d", i, id, results[i].RoomID)
				}
			}
		})
	}
}

func TestFilterAvailableRoomsFuzzyQuery(t *testing.T) {
	results := FilterAvailableRooms(testRooms(), nil, &dto.BookingQuery{Q: "bien xanh"})
	if len(results) == 0 {
		t.Fatal("expected fuzzy query to match Biển Xanh Resort")
	}
	for _, r := range results {
		if r.HotelID != 2 {
			t.Fatalf("expected only hotel 2 to match, got hotel %d", r.HotelID)
		}
	}
}

func TestFilterAvailableRoomsStableOrder(t *testing.T) {
	first := FilterAvailableRooms(testRooms(), nil, &dto.BookingQuery{})
	second := FilterAvailableRooms(testRooms(), nil, &dto.BookingQuery{})
	if len(first) != len(second) {
		t.Fatalf("result size differs between runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].RoomID != second[i].RoomID {
			t.Fatalf("position %d differs between runs: %d vs %d", i, first[i].RoomID, second[i].RoomID)
		}
	}
}

func TestNormalizeInput(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"Đà Nẵng", "da nang"},
		{"KHÁCH SẠN", "khach san"},
		{"hoa sen", "hoa sen"},
	}
	for _, tc := range cases {
		if got := normalizeInput(tc.input); got != tc.expected {
			t.Errorf("normalizeInput(%q): expected %q, got %q", tc.input, tc.expected, got)
		}
	}
}
