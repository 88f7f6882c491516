package dto

import "bff/models"

// LoginRequest là DTO cho request đăng nhập
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest là DTO cho request đăng ký
type RegisterRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6"`
	ContactNumber string `json:"contactNumber,omitempty"`
}

// GoogleLoginRequest là DTO cho callback đăng nhập Google
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// LoginData là payload data backend trả về khi đăng nhập thành công
type LoginData struct {
	User        models.User `json:"user"`
	AccessToken string      `json:"accessToken"`
}

// SessionResponse là trạng thái phiên trả về cho trình duyệt
type SessionResponse struct {
	User            *models.User `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}
