package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeInvalidRole        ErrorCode = "INVALID_ROLE"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"

	// Validation errors
	ErrCodeValidation       ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField    ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat    ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidDateRange ErrorCode = "INVALID_DATE_RANGE"
	ErrCodeInvalidEmail     ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone     ErrorCode = "INVALID_PHONE"

	// Not found errors
	ErrCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrCodeHotelNotFound    ErrorCode = "HOTEL_NOT_FOUND"
	ErrCodeRoomNotFound     ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeCustomerNotFound ErrorCode = "CUSTOMER_NOT_FOUND"
	ErrCodeOrderNotFound    ErrorCode = "ORDER_NOT_FOUND"

	// Business errors
	ErrCodeIllegalTransition ErrorCode = "ILLEGAL_TRANSITION"
	ErrCodeConflict          ErrorCode = "CONFLICT"
	ErrCodeRoomUnavailable   ErrorCode = "ROOM_UNAVAILABLE"
	ErrCodeDuplicateIdCard   ErrorCode = "DUPLICATE_ID_CARD"

	// Transport / database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode kiểm tra error có mang mã lỗi tương ứng không
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	// Customer errors
	ErrCustomerNotFound = errors.New("customer not found")
	ErrIdCardExists     = errors.New("id card already exists")

	// Order errors
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderInvalid          = errors.New("invalid order")
	ErrIllegalTransition     = errors.New("illegal order transition")
	ErrStayNotEditable       = errors.New("stay can no longer be edited")
	ErrRoomNoLongerAvailable = errors.New("room no longer available")

	// Room / hotel errors
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomInMaintenance = errors.New("room is under maintenance")
	ErrHotelNotFound     = errors.New("hotel not found")
	ErrHotelInactive     = errors.New("hotel is inactive")

	// Validation errors
	ErrInvalidInput     = errors.New("invalid input")
	ErrMissingRequired  = errors.New("missing required field")
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
)
