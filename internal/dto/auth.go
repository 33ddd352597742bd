package dto

import "github.com/buildcrew/construction_mgmt_app/internal/core/domain"

// RegisterRequest creates a new application login.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

// LoginRequest authenticates an application user.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expiresIn"` // seconds
	User      UserResponse `json:"user"`
}

// UserResponse is the API shape of an application user.
type UserResponse struct {
	UserID   int64  `json:"userID"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

func ToUserResponse(u *domain.AppUser) UserResponse {
	return UserResponse{
		UserID:   u.UserID,
		Username: u.Username,
		Name:     u.Name,
	}
}
