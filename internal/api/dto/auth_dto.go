package dto

import "time"

// LoginRequest 登录请求（邮箱 + 密码）
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=255"`
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email           string  `json:"email" binding:"required,email,max=255"`
	Username        string  `json:"username" binding:"required,min=1,max=255"`
	Password        string  `json:"password" binding:"required,min=6,max=255"`
	ConfirmPassword string  `json:"confirm_password" binding:"required,eqfield=Password"`
	FirstName       *string `json:"first_name" binding:"omitempty,max=255"`
	LastName        *string `json:"last_name" binding:"omitempty,max=255"`
	ProfileImageURL *string `json:"profile_image_url" binding:"omitempty,max=500"`
	Role            string  `json:"role" binding:"omitempty,oneof=consumer creator"`
}

// TokenData 注册/登录成功返回的 Token 信息
type TokenData struct {
	Token     string   `json:"token"`
	TokenType string   `json:"token_type"`
	ExpiresIn int      `json:"expires_in"`
	User      UserInfo `json:"user"`
}

// UserInfo 用户公开信息（不含密码哈希）
type UserInfo struct {
	ID              int64     `json:"id"`
	Email           string    `json:"email"`
	Username        string    `json:"username"`
	FirstName       *string   `json:"first_name"`
	LastName        *string   `json:"last_name"`
	ProfileImageURL *string   `json:"profile_image_url"`
	Role            string    `json:"role"`
	CreatedAt       time.Time `json:"created_at"`
}
