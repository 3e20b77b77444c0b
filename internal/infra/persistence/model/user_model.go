// Package model holds the GORM persistence structs. They are exported so the
// GORM Gen tool can read them from cmd/gen.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Fullname         string    `gorm:"type:varchar(100);not null"`
	PhoneNumber      string    `gorm:"type:varchar(32);not null;default:''"`
	Avatar           string    `gorm:"type:text;not null;default:''"`
	PasswordHash     *string   `gorm:"type:text"`
	RefreshTokenHash *string   `gorm:"type:text"`
	IsVerify         bool      `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
