package services

import (
	stderrors "errors"
	"fmt"

	"hms/constants"
	"hms/dto"
	"hms/errors"
	"hms/models"
	"hms/services/logger"
	"hms/services/notification"
	"hms/validator"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderService quản lý vòng đời order. Mọi phép chuyển trạng thái đều đọc lại
// order FOR UPDATE trong transaction nên hai yêu cầu confirm chạy đồng thời
// không thể cùng thành công.
type OrderService struct {
	db       *gorm.DB
	notifier notification.Service
	log      logger.Logger
}

func NewOrderService(db *gorm.DB, notifier notification.Service) *OrderService {
	return &OrderService{
		db:       db,
		notifier: notifier,
		log:      logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// GetByID lấy order kèm khách hàng, phòng và khách sạn
func (s *OrderService) GetByID(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Customer").Preload("Room").Preload("Room.Hotel").
		First(&order, orderID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeOrderNotFound, "Không tìm thấy order", errors.ErrOrderNotFound)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tra cứu order", err)
	}
	return &order, nil
}

// transition chạy một phép chuyển trạng thái trong transaction: khóa dòng order,
// hỏi state hiện tại xem phép chuyển có hợp lệ không, rồi ghi trạng thái mới
// cùng các side effect lên trạng thái phòng.
func (s *OrderService) transition(orderID uint, apply func(state models.OrderState, order *models.Order) error) (*models.Order, error) {
	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, orderID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeOrderNotFound, "Không tìm thấy order", errors.ErrOrderNotFound)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tra cứu order", err)
		}

		previous := order.Status
		state := models.GetOrderState(order.Status)
		if err := apply(state, &order); err != nil {
			return err
		}

		if err := tx.Model(&models.Order{}).
			Where("id = ?", order.ID).
			Update("status", order.Status).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi cập nhật trạng thái order", err)
		}

		if err := s.applyRoomSideEffect(tx, &order, previous); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// applyRoomSideEffect cập nhật trạng thái hiển thị của phòng theo trạng thái order:
// xác nhận giữ phòng, hủy hoặc trả phòng giải phóng phòng. Trạng thái phòng chỉ
// phục vụ hiển thị; phòng trống thật sự luôn được quyết định bởi kiểm tra trùng lịch.
func (s *OrderService) applyRoomSideEffect(tx *gorm.DB, order *models.Order, previous models.OrderStatus) error {
	var roomStatus int
	switch order.Status {
	case models.OrderStatusConfirmed:
		roomStatus = constants.RoomStatusOccupied
	case models.OrderStatusCancelled, models.OrderStatusCheckedOut:
		roomStatus = constants.RoomStatusAvailable
	default:
		return nil
	}
	if order.Status == models.OrderStatusCancelled && previous == models.OrderStatusPending {
		// Order pending chưa từng giữ phòng, không có gì để giải phóng
		return nil
	}
	if err := tx.Model(&models.Room{}).
		Where("id = ? AND status <> ?", order.RoomID, constants.RoomStatusMaintenance).
		Update("status", roomStatus).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi cập nhật trạng thái phòng", err)
	}
	return nil
}

// Confirm xác nhận order đang chờ
func (s *OrderService) Confirm(orderID uint) (*models.Order, error) {
	order, err := s.transition(orderID, func(state models.OrderState, order *models.Order) error {
		return state.Confirm(order)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Xác nhận order thành công, order ID: %d", order.ID)
	s.broadcast(order, "đã xác nhận")
	return order, nil
}

// Cancel hủy order (chỉ hợp lệ khi đang pending hoặc confirmed)
func (s *OrderService) Cancel(orderID uint) (*models.Order, error) {
	order, err := s.transition(orderID, func(state models.OrderState, order *models.Order) error {
		return state.Cancel(order)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Hủy order thành công, order ID: %d", order.ID)
	s.broadcast(order, "đã hủy")
	return order, nil
}

// CheckIn nhận phòng cho order đã xác nhận
func (s *OrderService) CheckIn(orderID uint) (*models.Order, error) {
	order, err := s.transition(orderID, func(state models.OrderState, order *models.Order) error {
		return state.CheckIn(order)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Khách nhận phòng, order ID: %d", order.ID)
	s.broadcast(order, "khách đã nhận phòng")
	return order, nil
}

// CheckOut trả phòng cho order đang lưu trú
func (s *OrderService) CheckOut(orderID uint) (*models.Order, error) {
	order, err := s.transition(orderID, func(state models.OrderState, order *models.Order) error {
		return state.CheckOut(order)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Khách trả phòng, order ID: %d", order.ID)
	s.broadcast(order, "khách đã trả phòng")
	return order, nil
}

// UpdateStay đổi lịch lưu trú hoặc đổi phòng cho order chưa bắt đầu ở.
// Kiểm tra trùng lịch được chạy lại cho cửa sổ mới, loại trừ chính order này.
func (s *OrderService) UpdateStay(req *dto.UpdateOrderRequest) (*models.Order, error) {
	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, req.ID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeOrderNotFound, "Không tìm thấy order", errors.ErrOrderNotFound)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tra cứu order", err)
		}

		state := models.GetOrderState(order.Status)
		if !state.CanEditStay() {
			return errors.NewAppError(errors.ErrCodeIllegalTransition,
				fmt.Sprintf("không thể sửa order đang ở trạng thái %s", order.Status),
				errors.ErrStayNotEditable)
		}

		// Trường bỏ trống giữ nguyên giá trị hiện tại
		checkIn := order.CheckInDate
		checkOut := order.CheckOutDate
		roomID := order.RoomID
		if req.CheckInDate != "" {
			parsed, err := validator.ParseDate(req.CheckInDate)
			if err != nil {
				return err
			}
			checkIn = parsed
		}
		if req.CheckOutDate != "" {
			parsed, err := validator.ParseDate(req.CheckOutDate)
			if err != nil {
				return err
			}
			checkOut = parsed
		}
		if req.RoomID != 0 {
			roomID = req.RoomID
		}

		if err := validator.ValidateDateRange(checkIn, checkOut); err != nil {
			return err
		}

		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, roomID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeRoomNotFound, "Không tìm thấy phòng", errors.ErrRoomNotFound)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tra cứu phòng", err)
		}
		if !room.Bookable() {
			return errors.NewAppError(errors.ErrCodeRoomUnavailable,
				"Phòng đang bảo trì, không nhận đặt", errors.ErrRoomInMaintenance)
		}

		available, err := CheckRoomAvailabilityTx(tx, roomID, checkIn, checkOut, order.ID)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi kiểm tra lịch đặt phòng", err)
		}
		if !available {
			return errors.NewAppError(errors.ErrCodeRoomUnavailable,
				"Phòng đã có khách đặt trong khoảng thời gian mới", errors.ErrRoomNoLongerAvailable)
		}

		nights := CalculateNights(checkIn, checkOut)
		order.CheckInDate = checkIn
		order.CheckOutDate = checkOut
		order.RoomID = roomID
		order.TotalAmount = CalculateTotalAmount(room.Price, nights)

		if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(map[string]interface{}{
			"check_in_date":  checkIn,
			"check_out_date": checkOut,
			"room_id":        roomID,
			"total_amount":   order.TotalAmount,
		}).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi cập nhật order", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Cập nhật lưu trú thành công, order ID: %d", order.ID)
	return &order, nil
}

// NotifyCheckIn nhắc khách nhận phòng cho order đã xác nhận. Hành động chỉ mang
// tính thông báo: lỗi gửi mail hay websocket chỉ được ghi log, không trả về để
// không làm hỏng nghiệp vụ đang chạy.
func (s *OrderService) NotifyCheckIn(orderID uint) error {
	order, err := s.GetByID(orderID)
	if err != nil {
		return err
	}
	if order.Status != models.OrderStatusConfirmed {
		return errors.NewAppError(errors.ErrCodeIllegalTransition,
			fmt.Sprintf("chỉ nhắc nhận phòng được cho order đã xác nhận, trạng thái hiện tại: %s", order.Status), nil)
	}

	if order.Customer.Email != "" {
		if err := SendCheckInReminderEmail(order.Customer.Email, order.Customer.Name,
			order.OrderNumber, order.CheckInDate.Format(validator.DateLayout)); err != nil {
			s.log.Error("Gửi email nhắc nhận phòng không thành công: %v", err)
		}
	}
	s.broadcast(order, "nhắc khách nhận phòng")
	return nil
}

func (s *OrderService) broadcast(order *models.Order, event string) {
	if s.notifier == nil {
		return
	}
	message := notification.NewOrderMessageBuilder(order.OrderNumber, event).Build()
	if err := s.notifier.SendMessage(message); err != nil {
		s.log.Error("Gửi thông báo websocket không thành công: %v", err)
	}
}
