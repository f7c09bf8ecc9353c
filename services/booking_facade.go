package services

import (
	"time"

	"hms/builders"
	"hms/dto"
	"hms/errors"
	"hms/models"
	"hms/services/logger"
	"hms/services/notification"
	"hms/validator"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingFacade gom toàn bộ quy trình đặt phòng: validate yêu cầu, hợp nhất
// danh tính khách theo CMND/CCCD, kiểm tra lại phòng trống và tạo order.
// Tất cả chạy trong một transaction, hoặc thành công trọn vẹn hoặc không có gì.
type BookingFacade struct {
	db              *gorm.DB
	customerService *CustomerService
	notifier        notification.Service
	log             logger.Logger
}

// NewBookingFacade tạo instance mới của BookingFacade
func NewBookingFacade(db *gorm.DB, notifier notification.Service) *BookingFacade {
	return &BookingFacade{
		db:              db,
		customerService: NewCustomerService(db),
		notifier:        notifier,
		log:             logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// BookRoom đặt một phòng cho cửa sổ [checkIn, checkOut).
// Phòng được khóa FOR UPDATE trước khi kiểm tra trùng lịch nên hai yêu cầu
// đặt cùng phòng chạy đồng thời sẽ được tuần tự hóa: chỉ một yêu cầu thành
// công, yêu cầu còn lại nhận lỗi ROOM_UNAVAILABLE.
func (f *BookingFacade) BookRoom(req *dto.BookingRequest) (*models.Order, error) {
	if err := validator.ValidateBookingRequest(req); err != nil {
		return nil, err
	}

	checkIn, err := validator.ParseDate(req.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := validator.ParseDate(req.CheckOutDate)
	if err != nil {
		return nil, err
	}
	// Kiểm tra lại khoảng ngày: kết quả tìm kiếm phía caller có thể đã cũ
	if err := validator.ValidateDateRange(checkIn, checkOut); err != nil {
		return nil, err
	}
	nights := CalculateNights(checkIn, checkOut)

	var order *models.Order
	err = f.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, req.RoomID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewAppError(errors.ErrCodeRoomNotFound, "Không tìm thấy phòng", errors.ErrRoomNotFound)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tra cứu phòng", err)
		}

		var hotel models.Hotel
		if err := tx.First(&hotel, room.HotelID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tra cứu khách sạn", err)
		}
		if !hotel.IsActive() {
			return errors.NewAppError(errors.ErrCodeRoomUnavailable,
				"Khách sạn đang ngừng hoạt động", errors.ErrHotelInactive)
		}
		if !room.Bookable() {
			return errors.NewAppError(errors.ErrCodeRoomUnavailable,
				"Phòng đang bảo trì, không nhận đặt", errors.ErrRoomInMaintenance)
		}

		// Kiểm tra lại trùng lịch ngay trước khi tạo order, trong lúc đang
		// giữ khóa phòng. Kết quả tìm kiếm phía caller có thể đã cũ.
		var count int64
		if err := tx.Model(&models.Order{}).
			Where("room_id = ? AND status IN ? AND check_in_date < ? AND check_out_date > ?",
				room.ID, models.ActiveOrderStatuses, checkOut, checkIn).
			Count(&count).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi kiểm tra lịch đặt phòng", err)
		}
		if count > 0 {
			return errors.NewAppError(errors.ErrCodeRoomUnavailable,
				"Phòng vừa được đặt cho khoảng thời gian này, vui lòng tìm phòng khác",
				errors.ErrRoomNoLongerAvailable)
		}

		customer, err := f.customerService.FindOrCreateTx(tx, req)
		if err != nil {
			return err
		}

		order = builders.NewOrderBuilder().
			WithOrderNumber(GenerateOrderNumber()).
			WithCustomer(customer.ID).
			WithRoom(room.ID).
			WithStay(checkIn, checkOut).
			WithTotalAmount(CalculateTotalAmount(room.Price, nights)).
			WithStatus(models.OrderStatusPending).
			Build()
		if err := tx.Create(order).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tạo order", err)
		}
		order.Customer = *customer
		order.Room = room
		order.Room.Hotel = hotel
		return nil
	})
	if err != nil {
		return nil, err
	}

	f.log.Info("Đặt phòng thành công, mã order: %s", order.OrderNumber)

	// Các bước sau commit chỉ mang tính thông báo, lỗi không làm hỏng đặt phòng
	if order.Customer.Email != "" {
		if err := SendBookingEmail(order.Customer.Email, order.OrderNumber, order.TotalAmount,
			req.CheckInDate, req.CheckOutDate); err != nil {
			f.log.Error("Gửi email xác nhận đặt phòng không thành công: %v", err)
		}
	}
	if f.notifier != nil {
		message := notification.NewOrderMessageBuilder(order.OrderNumber, "đặt phòng mới").Build()
		if err := f.notifier.SendMessage(message); err != nil {
			f.log.Error("Gửi thông báo websocket không thành công: %v", err)
		}
	}

	return order, nil
}

// CheckRoomAvailabilityTx kiểm tra phòng còn trống cho cửa sổ trong transaction,
// bỏ qua order có ID trong excludeOrderID (dùng khi đổi lịch chính order đó)
func CheckRoomAvailabilityTx(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeOrderID uint) (bool, error) {
	query := tx.Model(&models.Order{}).
		Where("room_id = ? AND status IN ? AND check_in_date < ? AND check_out_date > ?",
			roomID, models.ActiveOrderStatuses, checkOut, checkIn)
	if excludeOrderID != 0 {
		query = query.Where("id <> ?", excludeOrderID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}
