package validator

import (
	"regexp"
	"time"

	"hms/dto"
	"hms/errors"
	"hms/models"
)

// DateLayout định dạng ngày dùng trên toàn hệ thống
const DateLayout = "2006-01-02"

// ParseDate chuyển chuỗi ngày YYYY-MM-DD thành time.Time
func ParseDate(dateStr string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày không đúng định dạng YYYY-MM-DD", err)
	}
	return parsed, nil
}

// ValidateDateRange kiểm tra ngày nhận phòng phải trước ngày trả phòng.
// Cửa sổ [checkIn, checkOut) nên ở cùng ngày cũng không hợp lệ.
func ValidateDateRange(checkIn, checkOut time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ngày nhận phòng và ngày trả phòng không được để trống", nil)
	}
	if !checkIn.Before(checkOut) {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	return nil
}

// ValidateBookingRequest kiểm tra yêu cầu đặt phòng trước khi chạm tới database
func ValidateBookingRequest(req *dto.BookingRequest) error {
	if req.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "RoomID không được để trống", nil)
	}
	if req.CustomerName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
	}
	if req.CustomerPhone == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại khách không được để trống", nil)
	}
	if !isValidPhone(req.CustomerPhone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}
	if req.CustomerEmail == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email khách không được để trống", nil)
	}
	if !isValidEmail(req.CustomerEmail) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	if req.CustomerIdCard == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số CMND/CCCD không được để trống", nil)
	}
	return nil
}

// ValidateCustomer validate thông tin khách hàng
func ValidateCustomer(name, phone, email, idCard string) error {
	if name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
	}
	if phone == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại không được để trống", nil)
	}
	if !isValidPhone(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}
	if email != "" && !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	if idCard == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số CMND/CCCD không được để trống", nil)
	}
	return nil
}

// ValidateHotel validate thông tin khách sạn
func ValidateHotel(hotel *models.Hotel) error {
	if hotel.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách sạn không được để trống", nil)
	}
	if hotel.Address == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Địa chỉ khách sạn không được để trống", nil)
	}
	if err := hotel.ValidateStarLevel(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Số sao phải từ 1 đến 5", err)
	}
	return nil
}

// ValidateRoom validate thông tin phòng
func ValidateRoom(req *dto.CreateRoomRequest) error {
	if req.HotelID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "HotelID không được để trống", nil)
	}
	if req.RoomNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số phòng không được để trống", nil)
	}
	if req.RoomType == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Loại phòng không được để trống", nil)
	}
	if req.Price <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Giá phòng phải lớn hơn 0", nil)
	}
	return nil
}

// ValidateReview validate đánh giá
func ValidateReview(req *dto.CreateReviewRequest) error {
	if req.OrderID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "OrderID không được để trống", nil)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số sao đánh giá phải từ 1 đến 5", nil)
	}
	return nil
}

// ValidateUser validate tài khoản nhân viên
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}
	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}
	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}
	if user.Role < 0 || user.Role > 1 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	re := regexp.MustCompile(`^[0-9+][0-9\-\s]{7,14}$`)
	return re.MatchString(phone)
}
