package dto

// LoginInput là dữ liệu đăng nhập của nhân viên
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput là dữ liệu tạo tài khoản nhân viên
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     int    `json:"role"`
}

// GoogleUser là thông tin lấy từ Google ID token
type GoogleUser struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Picture       string `json:"picture"`
}

// LoginResponse là kết quả đăng nhập
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	UserID      uint   `json:"userId"`
	Name        string `json:"name"`
	Role        int    `json:"role"`
}
