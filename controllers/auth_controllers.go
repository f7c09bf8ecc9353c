package controllers

import (
	"context"
	"os"
	"strings"

	"hms/dto"
	"hms/response"
	"hms/services"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
)

// Login đăng nhập bằng email và mật khẩu
func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Email = strings.ToLower(input.Email)

	result, err := services.Login(input)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, result)
}

// Register tạo tài khoản nhân viên mới
func Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Email = strings.ToLower(input.Email)

	user, err := services.CreateUser(input)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}

// verifyGoogleIDToken xác thực ID token từ Google
func verifyGoogleIDToken(tokenId string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(context.Background(), tokenId, clientID)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// AuthGoogle đăng nhập bằng tài khoản Google
func AuthGoogle(c *gin.Context) {
	var body struct {
		IDToken string `json:"idToken"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.IDToken == "" {
		response.BadRequest(c, "Thiếu ID token")
		return
	}

	payload, err := verifyGoogleIDToken(body.IDToken)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	googleUser := dto.GoogleUser{
		Email:         strings.ToLower(payload.Claims["email"].(string)),
		VerifiedEmail: payload.Claims["email_verified"] == true,
	}
	if name, ok := payload.Claims["name"].(string); ok {
		googleUser.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		googleUser.Picture = picture
	}

	result, err := services.LoginWithGoogle(googleUser)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, result)
}
