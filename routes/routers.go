package routes

import (
	"context"
	"net/http"

	"hms/config"
	"hms/constants"
	"hms/controllers"
	"hms/middleware"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

func SetupRoutes(router *gin.Engine, m *melody.Melody) {
	controllers.InitNotifier(m)

	api := router.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.POST("/register", middleware.AuthMiddleware(constants.RoleAdmin), controllers.Register)
		auth.POST("/google", controllers.AuthGoogle)
	}

	staff := middleware.AuthMiddleware(constants.RoleReceptionist, constants.RoleAdmin)
	admin := middleware.AuthMiddleware(constants.RoleAdmin)

	booking := api.Group("/booking", staff)
	{
		booking.GET("/rooms", controllers.SearchAvailableRooms)
		booking.POST("", controllers.BookRoom)
	}

	customers := api.Group("/customers", staff)
	{
		customers.GET("", controllers.GetCustomers)
		customers.GET("/:id", controllers.GetCustomerDetail)
		customers.GET("/idcard/:idCard", controllers.FindCustomerByIdCard)
		customers.POST("", controllers.CreateCustomer)
		customers.PUT("", controllers.UpdateCustomer)
	}

	orders := api.Group("/orders", staff)
	{
		orders.GET("", controllers.GetOrders)
		orders.GET("/:id", controllers.GetOrderDetail)
		orders.POST("/:id/confirm", controllers.ConfirmOrder)
		orders.POST("/:id/cancel", controllers.CancelOrder)
		orders.POST("/:id/checkin", controllers.CheckInOrder)
		orders.POST("/:id/checkout", controllers.CheckOutOrder)
		orders.POST("/:id/notify", controllers.NotifyCheckIn)
	}
	api.PUT("/orderUpdate", staff, controllers.UpdateOrder)
	api.GET("/orderHistory/:customerId", staff, controllers.OrderHistory)

	reports := api.Group("/reports", admin)
	{
		reports.GET("/bookings", controllers.BookingStatistics)
		reports.GET("/revenue", controllers.RevenueStatistics)
		reports.GET("/occupancy", controllers.OccupancyStatistics)
	}

	hotels := api.Group("/hotels")
	{
		hotels.GET("", staff, controllers.GetHotels)
		hotels.GET("/:id", staff, controllers.GetHotelDetail)
		hotels.POST("", admin, controllers.CreateHotel)
		hotels.PUT("", admin, controllers.UpdateHotel)
		hotels.PUT("/status", admin, controllers.ChangeHotelStatus)
	}

	rooms := api.Group("/rooms", admin)
	{
		rooms.POST("", controllers.CreateRoom)
		rooms.PUT("", controllers.UpdateRoom)
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("", staff, controllers.GetReviews)
		reviews.POST("", staff, controllers.CreateReview)
		reviews.PUT("/reply", admin, controllers.ReplyReview)
		reviews.DELETE("/:id", admin, controllers.DeleteReview)
	}

	// Upload ảnh khách sạn lên Cloudinary, trả về danh sách URL
	api.POST("/upload", admin, func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi đọc form"})
			return
		}

		files := form.File["files"]
		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "hotels"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{"urls": urls})
	})
}
