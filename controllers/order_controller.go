package controllers

import (
	"fmt"
	"strconv"
	"time"

	"hms/config"
	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/services"
	"hms/validator"

	"github.com/gin-gonic/gin"
)

func invalidateOrderCache() {
	if config.RedisClient == nil {
		return
	}
	_ = services.DeleteByPattern(config.Ctx, config.RedisClient, "orders:*")
}

func toOrderResponse(order *models.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		Customer: dto.OrderCustomerResponse{
			ID:     order.Customer.ID,
			Name:   order.Customer.Name,
			Phone:  order.Customer.Phone,
			Email:  order.Customer.Email,
			IdCard: order.Customer.IdCard,
		},
		Hotel: dto.OrderHotelResponse{
			ID:        order.Room.Hotel.ID,
			Name:      order.Room.Hotel.Name,
			Address:   order.Room.Hotel.Address,
			StarLevel: order.Room.Hotel.StarLevel,
		},
		Room: dto.OrderRoomResponse{
			ID:         order.Room.ID,
			HotelID:    order.Room.HotelID,
			RoomType:   order.Room.RoomType,
			RoomNumber: order.Room.RoomNumber,
			Price:      order.Room.Price,
		},
		CheckInDate:  order.CheckInDate.Format(validator.DateLayout),
		CheckOutDate: order.CheckOutDate.Format(validator.DateLayout),
		Nights:       order.Nights(),
		TotalAmount:  order.TotalAmount,
		Status:       int(order.Status),
		StatusText:   order.Status.String(),
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
}

// GetOrders liệt kê order có lọc theo trạng thái, khách sạn và khoảng ngày
// nhận phòng, phân trang sau khi lọc. Trang đầu không lọc được cache Redis.
func GetOrders(c *gin.Context) {
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

	statusStr := c.Query("status")
	hotelIDStr := c.Query("hotelId")
	fromDate := c.Query("fromDate")
	toDate := c.Query("toDate")

	cacheKey := fmt.Sprintf("orders:page=%d:limit=%d:status=%s:hotel=%s:from=%s:to=%s",
		page, limit, statusStr, hotelIDStr, fromDate, toDate)

	var cached struct {
		Data  []dto.OrderResponse `json:"data"`
		Total int                 `json:"total"`
	}
	if err := services.GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &cached); err == nil && len(cached.Data) > 0 {
		response.SuccessWithPagination(c, cached.Data, page, limit, cached.Total)
		return
	}

	tx := config.DB.Preload("Customer").Preload("Room").Preload("Room.Hotel").
		Joins("JOIN rooms ON rooms.id = orders.room_id")
	if statusStr != "" {
		if status, err := strconv.Atoi(statusStr); err == nil {
			tx = tx.Where("orders.status = ?", status)
		}
	}
	if hotelIDStr != "" {
		if hotelID, err := strconv.Atoi(hotelIDStr); err == nil {
			tx = tx.Where("rooms.hotel_id = ?", hotelID)
		}
	}
	if fromDate != "" {
		if parsed, err := time.Parse(validator.DateLayout, fromDate); err == nil {
			tx = tx.Where("orders.check_in_date >= ?", parsed)
		}
	}
	if toDate != "" {
		if parsed, err := time.Parse(validator.DateLayout, toDate); err == nil {
			tx = tx.Where("orders.check_in_date <= ?", parsed)
		}
	}

	var orders []models.Order
	if err := tx.Order("orders.created_at DESC").Find(&orders).Error; err != nil {
		response.ServerError(c)
		return
	}

	total := len(orders)
	start := page * limit
	end := start + limit
	if start >= total {
		start = total
	}
	if end > total {
		end = total
	}

	data := make([]dto.OrderResponse, 0, end-start)
	for i := start; i < end; i++ {
		data = append(data, toOrderResponse(&orders[i]))
	}

	cached.Data = data
	cached.Total = total
	if err := services.SetToRedis(config.Ctx, config.RedisClient, cacheKey, cached, 10*time.Minute); err != nil {
		fmt.Println("Lỗi khi lưu danh sách order vào Redis:", err)
	}

	response.SuccessWithPagination(c, data, page, limit, total)
}

// OrderHistory liệt kê lịch sử order của một khách, mới nhất lên trước
func OrderHistory(c *gin.Context) {
	customerID, err := strconv.ParseUint(c.Param("customerId"), 10, 32)
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

	history := make([]dto.OrderResponse, 0, len(customer.Orders))
	for i := range customer.Orders {
		order := customer.Orders[i]
		order.Customer = *customer
		history = append(history, toOrderResponse(&order))
	}
	response.Success(c, history)
}

// GetOrderDetail trả về chi tiết một order kèm khách, phòng và khách sạn
func GetOrderDetail(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID order không hợp lệ")
		return
	}

	svc := services.NewOrderService(config.DB, notifier)
	order, err := svc.GetByID(uint(orderID))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, toOrderResponse(order))
}

func transitionHandler(c *gin.Context, apply func(svc *services.OrderService, orderID uint) (*models.Order, error)) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID order không hợp lệ")
		return
	}

	svc := services.NewOrderService(config.DB, notifier)
	order, err := apply(svc, uint(orderID))
	if err != nil {
		response.FromError(c, err)
		return
	}

	services.FlushReportCache()
	invalidateOrderCache()

	// Trạng thái mới đã chắc chắn, load lại đầy đủ quan hệ để trả về
	full, err := svc.GetByID(order.ID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, toOrderResponse(full))
}

// ConfirmOrder xác nhận order đang chờ
func ConfirmOrder(c *gin.Context) {
	transitionHandler(c, func(svc *services.OrderService, orderID uint) (*models.Order, error) {
		return svc.Confirm(orderID)
	})
}

// CancelOrder hủy order đang chờ hoặc đã xác nhận
func CancelOrder(c *gin.Context) {
	transitionHandler(c, func(svc *services.OrderService, orderID uint) (*models.Order, error) {
		return svc.Cancel(orderID)
	})
}

// CheckInOrder nhận phòng cho order đã xác nhận
func CheckInOrder(c *gin.Context) {
	transitionHandler(c, func(svc *services.OrderService, orderID uint) (*models.Order, error) {
		return svc.CheckIn(orderID)
	})
}

// CheckOutOrder trả phòng cho order đang lưu trú
func CheckOutOrder(c *gin.Context) {
	transitionHandler(c, func(svc *services.OrderService, orderID uint) (*models.Order, error) {
		return svc.CheckOut(orderID)
	})
}

// UpdateOrder sửa lịch lưu trú hoặc đổi phòng cho order chưa nhận phòng
func UpdateOrder(c *gin.Context) {
	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if req.ID == 0 {
		response.BadRequest(c, "Thiếu ID order")
		return
	}

	svc := services.NewOrderService(config.DB, notifier)
	order, err := svc.UpdateStay(&req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	services.FlushReportCache()
	invalidateOrderCache()

	full, err := svc.GetByID(order.ID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, toOrderResponse(full))
}
