package services

import (
	stderrors "errors"
	"fmt"
	"net/smtp"
	"time"

	"hms/config"
	"hms/dto"
	"hms/errors"
	"hms/models"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))

func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("không tìm thấy người dùng với email %s", email)
	}
	if result.Error != nil {
		return user, result.Error
	}
	return user, nil
}

// Login kiểm tra thông tin đăng nhập và trả về access token cho nhân viên
func Login(input dto.LoginInput) (*dto.LoginResponse, error) {
	if input.Email == "" || input.Password == "" {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "Không được để trống email và password", nil)
	}

	user, err := GetUserByEmail(input.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidCredentials, "Email hoặc mật khẩu không đúng", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidCredentials, "Email hoặc mật khẩu không đúng", err)
	}

	accessToken, err := GenerateToken(UserInfo{UserId: user.ID, Role: user.Role}, 3*24*60)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo token", err)
	}

	return &dto.LoginResponse{
		AccessToken: accessToken,
		UserID:      user.ID,
		Name:        user.Name,
		Role:        user.Role,
	}, nil
}

// CreateUser tạo tài khoản nhân viên mới với mật khẩu đã hash
func CreateUser(input dto.RegisterInput) (models.User, error) {
	if input.Email == "" || input.Password == "" {
		return models.User{}, errors.NewAppError(errors.ErrCodeRequiredField, "Không được để trống email và password", nil)
	}

	if existing, err := GetUserByEmail(input.Email); err == nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBDuplicate,
			fmt.Sprintf("email %s đã được sử dụng", existing.Email), nil)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashedPassword,
		Role:     input.Role,
	}
	if result := config.DB.Create(&user); result.Error != nil {
		return user, errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo tài khoản", result.Error)
	}
	return user, nil
}

// LoginWithGoogle tìm hoặc tạo tài khoản từ email đã xác thực của Google rồi
// đăng nhập như bình thường
func LoginWithGoogle(googleUser dto.GoogleUser) (*dto.LoginResponse, error) {
	if !googleUser.VerifiedEmail {
		return nil, errors.NewAppError(errors.ErrCodeInvalidCredentials, "Email Google chưa được xác thực", nil)
	}

	user, err := GetUserByEmail(googleUser.Email)
	if err != nil {
		user = models.User{
			Name:  googleUser.Name,
			Email: googleUser.Email,
		}
		if result := config.DB.Create(&user); result.Error != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo tài khoản", result.Error)
		}
	}

	accessToken, err := GenerateToken(UserInfo{UserId: user.ID, Role: user.Role}, 3*24*60)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo token", err)
	}

	return &dto.LoginResponse{
		AccessToken: accessToken,
		UserID:      user.ID,
		Name:        user.Name,
		Role:        user.Role,
	}, nil
}

func sendMail(to, subject, body string) error {
	from := config.GetEnv("SMTP_FROM")
	password := config.GetEnv("SMTP_PASSWORD")

	host := "smtp.gmail.com"
	port := "587"
	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" +
		"Subject: " + subject + "\n\n" + body)

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, []string{to}, msg)
}

// SendBookingEmail gửi email xác nhận đặt phòng cho khách
func SendBookingEmail(email, orderNumber string, totalAmount float64, checkInDate, checkOutDate string) error {
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Xác nhận đặt phòng</title>
		</head>
		<body>
			<p>Xin chào,</p>
			<p>Chúng tôi đã nhận yêu cầu đặt phòng của bạn.</p>
			<p>Mã đặt phòng: <strong>%s</strong></p>
			<p>Nhận phòng: %s - Trả phòng: %s</p>
			<p>Tổng tiền: <strong>%.0f VND</strong></p>
			<p>Xin cám ơn,<br>Đội ngũ lễ tân</p>
		</body>
		</html>
	`, orderNumber, checkInDate, checkOutDate, totalAmount)

	return sendMail(email, "Xác nhận đặt phòng", body)
}

// SendCheckInReminderEmail nhắc khách ngày nhận phòng sắp tới
func SendCheckInReminderEmail(email, name, orderNumber, checkInDate string) error {
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Nhắc nhận phòng</title>
		</head>
		<body>
			<p>Xin chào %s,</p>
			<p>Đặt phòng <strong>%s</strong> của bạn sẽ nhận phòng vào ngày %s.</p>
			<p>Vui lòng mang theo giấy tờ tùy thân khi đến nhận phòng.</p>
			<p>Xin cám ơn,<br>Đội ngũ lễ tân</p>
		</body>
		</html>
	`, name, orderNumber, checkInDate)

	return sendMail(email, "Nhắc lịch nhận phòng", body)
}
