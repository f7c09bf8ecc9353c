package services

import (
	"errors"

	"hms/dto"
	apperrors "hms/errors"
	"hms/models"

	"gorm.io/gorm"
)

// CustomerService xử lý tra cứu và hợp nhất danh tính khách hàng theo CMND/CCCD
type CustomerService struct {
	db *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

// FindByIdCard tra cứu khách hàng theo số CMND/CCCD.
// Không tìm thấy trả về lỗi CUSTOMER_NOT_FOUND, tách biệt với lỗi kết nối
// database để caller phân biệt được "chưa có khách" với "không tra cứu được".
func (s *CustomerService) FindByIdCard(idCard string) (*models.Customer, error) {
	if idCard == "" {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Số CMND/CCCD không được để trống", nil)
	}

	var customer models.Customer
	if err := s.db.Where("id_card = ?", idCard).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeCustomerNotFound,
				"Không tìm thấy khách hàng với số CMND/CCCD này", apperrors.ErrCustomerNotFound)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi tra cứu khách hàng", err)
	}
	return &customer, nil
}

// ResolveBookingCustomer quyết định hồ sơ khách gắn vào order: khách đã tồn
// tại được dùng y nguyên, thông tin trên form không ghi đè hồ sơ cũ để tránh
// tách đôi danh tính; chưa có thì dựng hồ sơ mới từ form.
func ResolveBookingCustomer(existing *models.Customer, req *dto.BookingRequest) models.Customer {
	if existing != nil {
		return *existing
	}
	return models.Customer{
		Name:   req.CustomerName,
		Phone:  req.CustomerPhone,
		Email:  req.CustomerEmail,
		IdCard: req.CustomerIdCard,
	}
}

// FindOrCreateTx tìm khách theo CMND/CCCD trong transaction đang mở; chưa có
// thì tạo mới từ thông tin trên form
func (s *CustomerService) FindOrCreateTx(tx *gorm.DB, req *dto.BookingRequest) (*models.Customer, error) {
	var found models.Customer
	err := tx.Where("id_card = ?", req.CustomerIdCard).First(&found).Error
	if err == nil {
		customer := ResolveBookingCustomer(&found, req)
		return &customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi tra cứu khách hàng", err)
	}

	customer := ResolveBookingCustomer(nil, req)
	if err := tx.Create(&customer).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi tạo khách hàng mới", err)
	}
	return &customer, nil
}

// GetWithHistory lấy khách hàng kèm lịch sử order (mới nhất lên trước)
func (s *CustomerService) GetWithHistory(customerID uint) (*models.Customer, error) {
	var customer models.Customer
	err := s.db.Preload("Orders", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC")
	}).Preload("Orders.Room").Preload("Orders.Room.Hotel").
		First(&customer, customerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeCustomerNotFound,
				"Không tìm thấy khách hàng", apperrors.ErrCustomerNotFound)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi khi tra cứu khách hàng", err)
	}
	return &customer, nil
}
