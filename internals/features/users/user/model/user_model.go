// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"konisurabaya_backend/internals/constants"
)

// UserModel merepresentasikan tabel users
type UserModel struct {
	// PK
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	// Identitas akun
	UserUsername     string `gorm:"column:user_username;type:varchar(50);uniqueIndex;not null" json:"user_username"`
	UserEmail        string `gorm:"column:user_email;type:varchar(100);uniqueIndex;not null" json:"user_email"`
	UserPasswordHash string `gorm:"column:user_password_hash;type:text;not null" json:"-"`

	// Role tertutup: ADMIN_KONI / ADMIN_CABOR / ADMIN_CLUB
	UserRole constants.Role `gorm:"column:user_role;type:varchar(20);not null" json:"user_role"`

	UserIsActive bool `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	// Audit
	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
