package controllers

import (
	stderrors "errors"
	"strconv"
	"time"

	"hms/config"
	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func toReviewResponse(review *models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:        review.ID,
		OrderID:   review.OrderID,
		HotelName: review.Order.Room.Hotel.Name,
		Customer:  review.Order.Customer.Name,
		Rating:    review.Rating,
		Comment:   review.Comment,
		Reply:     review.Reply,
		RepliedAt: review.RepliedAt,
		CreatedAt: review.CreatedAt,
	}
}

// GetReviews liệt kê đánh giá, lọc được theo khách sạn
func GetReviews(c *gin.Context) {
	tx := config.DB.Preload("Order").Preload("Order.Customer").
		Preload("Order.Room").Preload("Order.Room.Hotel").
		Joins("JOIN orders ON orders.id = reviews.order_id").
		Joins("JOIN rooms ON rooms.id = orders.room_id")
	if hotelIDStr := c.Query("hotelId"); hotelIDStr != "" {
		if hotelID, err := strconv.Atoi(hotelIDStr); err == nil {
			tx = tx.Where("rooms.hotel_id = ?", hotelID)
		}
	}

	var reviews []models.Review
	if err := tx.Order("reviews.created_at DESC").Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	data := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		data = append(data, toReviewResponse(&reviews[i]))
	}
	response.Success(c, data)
}

// CreateReview tạo đánh giá cho order đã trả phòng
func CreateReview(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateReview(&req); err != nil {
		response.FromError(c, err)
		return
	}

	var order models.Order
	if err := config.DB.First(&order, req.OrderID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}
	if order.Status != models.OrderStatusCheckedOut {
		response.BadRequest(c, "Chỉ đánh giá được order đã trả phòng")
		return
	}

	review := models.Review{
		OrderID: req.OrderID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if err := config.DB.Create(&review).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, review)
}

// ReplyReview quản trị viên phản hồi một đánh giá
func ReplyReview(c *gin.Context) {
	var req dto.ReplyReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if req.ID == 0 || req.Reply == "" {
		response.BadRequest(c, "Thiếu ID hoặc nội dung phản hồi")
		return
	}

	var review models.Review
	if err := config.DB.First(&review, req.ID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	now := time.Now()
	review.Reply = req.Reply
	review.RepliedAt = &now
	if err := config.DB.Save(&review).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, review)
}

// DeleteReview xóa một đánh giá
func DeleteReview(c *gin.Context) {
	reviewID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID đánh giá không hợp lệ")
		return
	}

	result := config.DB.Delete(&models.Review{}, reviewID)
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}
	response.Success(c, gin.H{"deleted": reviewID})
}
