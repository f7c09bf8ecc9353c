package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"hms/constants"
	"hms/dto"
	"hms/errors"
	"hms/models"
	"hms/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/google/uuid"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

// WindowsOverlap kiểm tra hai cửa sổ [aFrom, aTo) và [bFrom, bTo) có giao nhau
// ít nhất một đêm không. Hai cửa sổ kề nhau (aTo == bFrom) không tính là giao.
func WindowsOverlap(aFrom, aTo, bFrom, bTo time.Time) bool {
	return aFrom.Before(bTo) && bFrom.Before(aTo)
}

// CalculateNights tính số đêm của cửa sổ [checkIn, checkOut)
func CalculateNights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// CalculateTotalAmount tính tổng tiền = giá mỗi đêm × số đêm
func CalculateTotalAmount(pricePerNight float64, nights int) float64 {
	return pricePerNight * float64(nights)
}

// GenerateOrderNumber sinh mã order duy nhất: ORD + timestamp ms + 6 ký tự UUID
func GenerateOrderNumber() string {
	fragment := strings.ToUpper(uuid.NewString()[:6])
	return fmt.Sprintf("ORD%d%s", time.Now().UnixMilli(), fragment)
}

// BookingService xử lý tìm phòng trống
type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

// SearchAvailableRooms trả về các phòng trống cho trọn cửa sổ [checkIn, checkOut).
// Phòng trống = khách sạn đang hoạt động, phòng không bảo trì, và không có order
// nào ở trạng thái pending/confirmed/checked_in trùng cửa sổ.
func (s *BookingService) SearchAvailableRooms(query *dto.BookingQuery) ([]dto.AvailableRoomResponse, error) {
	checkIn, err := validator.ParseDate(query.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := validator.ParseDate(query.CheckOutDate)
	if err != nil {
		return nil, err
	}
	// Chặn khoảng ngày sai trước khi chạm tới database
	if err := validator.ValidateDateRange(checkIn, checkOut); err != nil {
		return nil, err
	}

	var rooms []models.Room
	if err := s.db.Preload("Hotel").
		Joins("JOIN hotels ON hotels.id = rooms.hotel_id").
		Where("hotels.status = ?", constants.HotelStatusActive).
		Where("rooms.status <> ?", constants.RoomStatusMaintenance).
		Find(&rooms).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi truy vấn danh sách phòng", err)
	}

	// Các phòng đã có order giữ chỗ trùng cửa sổ
	var bookedRoomIDs []uint
	if err := s.db.Model(&models.Order{}).
		Where("status IN ? AND check_in_date < ? AND check_out_date > ?",
			models.ActiveOrderStatuses, checkOut, checkIn).
		Pluck("room_id", &bookedRoomIDs).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi kiểm tra lịch đặt phòng", err)
	}

	results := FilterAvailableRooms(rooms, bookedRoomIDs, query)
	return results, nil
}

// FilterAvailableRooms áp bộ lọc và xếp hạng lên danh sách phòng ứng viên.
// Thứ tự kết quả ổn định giữa các lần gọi trên cùng một snapshot dữ liệu.
func FilterAvailableRooms(rooms []models.Room, bookedRoomIDs []uint, query *dto.BookingQuery) []dto.AvailableRoomResponse {
	booked := make(map[uint]bool, len(bookedRoomIDs))
	for _, id := range bookedRoomIDs {
		booked[id] = true
	}

	results := make([]dto.AvailableRoomResponse, 0)
	for _, room := range rooms {
		if booked[room.ID] {
			continue
		}
		if query.Location != "" &&
			!strings.Contains(normalizeInput(room.Hotel.Address), normalizeInput(query.Location)) {
			continue
		}
		if query.RoomType != "" &&
			normalizeInput(room.RoomType) != normalizeInput(query.RoomType) {
			continue
		}
		if query.HotelName != "" &&
			!strings.Contains(normalizeInput(room.Hotel.Name), normalizeInput(query.HotelName)) {
			continue
		}

		results = append(results, dto.AvailableRoomResponse{
			RoomID:     room.ID,
			HotelID:    room.HotelID,
			HotelName:  room.Hotel.Name,
			Address:    room.Hotel.Address,
			StarLevel:  room.Hotel.StarLevel,
			RoomType:   room.RoomType,
			RoomNumber: room.RoomNumber,
			Price:      room.Price,
		})
	}

	if query.Q != "" {
		results = rankByFuzzyQuery(query.Q, results)
		return results
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].HotelID != results[j].HotelID {
			return results[i].HotelID < results[j].HotelID
		}
		return results[i].RoomNumber < results[j].RoomNumber
	})
	return results
}

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0 // Nếu cả hai chuỗi đều rỗng, tương đồng là 100%
	}

	similarity := 1.0 - float64(distance)/maxLen
	return similarity
}

// scoreRoom tính điểm phù hợp của một dòng kết quả với từ khóa tìm kiếm
func scoreRoom(query string, row dto.AvailableRoomResponse, cmHotel *closestmatch.ClosestMatch) int {
	score := 0
	hotelName := normalizeInput(row.HotelName)
	address := normalizeInput(row.Address)

	if cmHotel.Closest(query) == hotelName {
		score += 20
	}
	if strings.Contains(hotelName, query) || calculateSimilarity(query, hotelName) > 0.7 {
		score += 15
	}
	if strings.Contains(address, query) {
		score += 10
	}
	return score
}

// rankByFuzzyQuery lọc và xếp hạng kết quả theo từ khóa gần đúng, điểm cao lên trước
func rankByFuzzyQuery(q string, rows []dto.AvailableRoomResponse) []dto.AvailableRoomResponse {
	normalizedQuery := normalizeInput(q)

	uniqueNames := make(map[string]bool)
	for _, row := range rows {
		uniqueNames[normalizeInput(row.HotelName)] = true
	}
	names := make([]string, 0, len(uniqueNames))
	for name := range uniqueNames {
		names = append(names, name)
	}
	cmHotel := createMatcher(names)

	type scoredRow struct {
		row   dto.AvailableRoomResponse
		score int
	}
	scored := make([]scoredRow, 0, len(rows))
	for _, row := range rows {
		score := scoreRoom(normalizedQuery, row, cmHotel)
		if score > 0 {
			scored = append(scored, scoredRow{row: row, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		if scored[i].row.HotelID != scored[j].row.HotelID {
			return scored[i].row.HotelID < scored[j].row.HotelID
		}
		return scored[i].row.RoomNumber < scored[j].row.RoomNumber
	})

	ranked := make([]dto.AvailableRoomResponse, 0, len(scored))
	for _, s := range scored {
		ranked = append(ranked, s.row)
	}
	return ranked
}
