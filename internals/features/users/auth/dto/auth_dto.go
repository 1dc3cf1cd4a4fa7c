// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"time"

	"konisurabaya_backend/internals/features/users/user/model"
)

type LoginRequest struct {
	// Identifier boleh email atau username.
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type UserResponse struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserResponse(m *model.UserModel) UserResponse {
	return UserResponse{
		UserID:    m.UserID.String(),
		Username:  m.UserUsername,
		Email:     m.UserEmail,
		Role:      string(m.UserRole),
		IsActive:  m.UserIsActive,
		CreatedAt: m.UserCreatedAt,
	}
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}
