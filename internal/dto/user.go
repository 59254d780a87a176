package dto

import (
	"time"

	"github.com/planillasvb/planillas_backend/internal/models"
)

// RegisterRequest defines the data needed to create a user account.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"displayName" binding:"required"`
}

// LoginRequest carries password-login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed access token and the user profile.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// GoogleCallbackRequest carries the ID token from the Google sign-in
// flow on the frontend.
type GoogleCallbackRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// UserResponse defines the public view of a user.
type UserResponse struct {
	UserID      string          `json:"userID"`
	Email       string          `json:"email"`
	DisplayName string          `json:"displayName"`
	Role        models.UserRole `json:"role"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToUserResponse converts a models.User to its response DTO.
func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		UserID:      u.UserID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
	}
}
