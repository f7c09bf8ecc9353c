package controllers

import (
	stderrors "errors"
	"strconv"
	"strings"

	"hms/config"
	"hms/dto"
	"hms/errors"
	"hms/models"
	"hms/response"
	"hms/services"
	"hms/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func toCustomerResponse(customer *models.Customer, withHistory bool) dto.CustomerResponse {
	resp := dto.CustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Phone:     customer.Phone,
		Email:     customer.Email,
		IdCard:    customer.IdCard,
		CreatedAt: customer.CreatedAt,
	}
	if withHistory {
		resp.OrderHistory = make([]dto.OrderResponse, 0, len(customer.Orders))
		for i := range customer.Orders {
			order := customer.Orders[i]
			order.Customer = *customer
			resp.OrderHistory = append(resp.OrderHistory, toOrderResponse(&order))
		}
	}
	return resp
}

// GetCustomers liệt kê khách hàng, lọc gần đúng theo tên hoặc CMND/CCCD
func GetCustomers(c *gin.Context) {
	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed >= 0 {
			page = parsed
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	tx := config.DB.Model(&models.Customer{})
	if name := c.Query("name"); name != "" {
		tx = tx.Where("name ILIKE ?", "%"+name+"%")
	}
	if idCard := c.Query("idCard"); idCard != "" {
		tx = tx.Where("id_card LIKE ?", idCard+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var customers []models.Customer
	if err := tx.Order("created_at DESC").Offset(page * limit).Limit(limit).Find(&customers).Error; err != nil {
		response.ServerError(c)
		return
	}

	data := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		data = append(data, toCustomerResponse(&customers[i], false))
	}
	response.SuccessWithPagination(c, data, page, limit, int(total))
}

// GetCustomerDetail trả về thông tin khách kèm lịch sử đặt phòng mới nhất trước
func GetCustomerDetail(c *gin.Context) {
	customerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID khách hàng không hợp lệ")
		return
	}

	svc := services.NewCustomerService(config.DB)
	customer, err := svc.GetWithHistory(uint(customerID))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, toCustomerResponse(customer, true))
}

// FindCustomerByIdCard tra cứu khách theo CMND/CCCD, dùng khi lễ tân đặt phòng
// cho khách quen
func FindCustomerByIdCard(c *gin.Context) {
	svc := services.NewCustomerService(config.DB)
	customer, err := svc.FindByIdCard(c.Param("idCard"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, toCustomerResponse(customer, false))
}

// CreateCustomer thêm khách hàng mới. CMND/CCCD trùng trả về 409.
func CreateCustomer(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateCustomer(req.Name, req.Phone, req.Email, req.IdCard); err != nil {
		response.FromError(c, err)
		return
	}

	customer := models.Customer{
		Name:   req.Name,
		Phone:  req.Phone,
		Email:  req.Email,
		IdCard: req.IdCard,
	}
	if err := config.DB.Create(&customer).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			response.FromError(c, errors.NewAppError(errors.ErrCodeDuplicateIdCard,
				"CMND/CCCD đã tồn tại", errors.ErrIdCardExists))
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, toCustomerResponse(&customer, false))
}

// UpdateCustomer cập nhật thông tin liên lạc của khách. CMND/CCCD không đổi
// được vì là khóa hợp nhất danh tính.
func UpdateCustomer(c *gin.Context) {
	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if req.ID == 0 {
		response.BadRequest(c, "Thiếu ID khách hàng")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, req.ID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if req.Name != "" {
		customer.Name = req.Name
	}
	if req.Phone != "" {
		customer.Phone = req.Phone
	}
	if req.Email != "" {
		customer.Email = req.Email
	}
	if err := validator.ValidateCustomer(customer.Name, customer.Phone, customer.Email, customer.IdCard); err != nil {
		response.FromError(c, err)
		return
	}

	if err := config.DB.Save(&customer).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toCustomerResponse(&customer, false))
}
