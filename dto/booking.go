package dto

// BookingQuery là tham số tìm phòng trống
type BookingQuery struct {
	CheckInDate  string `form:"checkInDate" json:"checkInDate"`
	CheckOutDate string `form:"checkOutDate" json:"checkOutDate"`
	Location     string `form:"location" json:"location,omitempty"`
	RoomType     string `form:"roomType" json:"roomType,omitempty"`
	HotelName    string `form:"hotelName" json:"hotelName,omitempty"`
	Q            string `form:"q" json:"q,omitempty"` // Từ khóa tìm gần đúng theo tên/địa chỉ khách sạn
}

// AvailableRoomResponse là một dòng kết quả tìm phòng, đủ thông tin để đặt
// ngay không cần tra cứu thêm
type AvailableRoomResponse struct {
	RoomID     uint    `json:"roomId"`
	HotelID    uint    `json:"hotelId"`
	HotelName  string  `json:"hotelName"`
	Address    string  `json:"address"`
	StarLevel  int     `json:"starLevel"`
	RoomType   string  `json:"roomType"`
	RoomNumber string  `json:"roomNumber"`
	Price      float64 `json:"price"`
}

// BookingRequest là yêu cầu đặt phòng
type BookingRequest struct {
	RoomID         uint   `json:"roomId"`
	CheckInDate    string `json:"checkInDate"`
	CheckOutDate   string `json:"checkOutDate"`
	CustomerName   string `json:"customerName"`
	CustomerPhone  string `json:"customerPhone"`
	CustomerEmail  string `json:"customerEmail"`
	CustomerIdCard string `json:"customerIdCard"`
}

// BookingResultResponse là kết quả đặt phòng trả về cho client
type BookingResultResponse struct {
	OrderID      uint    `json:"orderId"`
	OrderNumber  string  `json:"orderNumber"`
	CustomerID   uint    `json:"customerId"`
	RoomID       uint    `json:"roomId"`
	CheckInDate  string  `json:"checkInDate"`
	CheckOutDate string  `json:"checkOutDate"`
	TotalAmount  float64 `json:"totalAmount"`
	Status       int     `json:"status"`
}
