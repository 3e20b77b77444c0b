package model

import (
	"time"

	"github.com/google/uuid"
)

// MembershipModel mirrors the 'memberships' table shared by teams and projects.
// A NULL revoked_at means the membership is active.
type MembershipModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Scope     string     `gorm:"type:varchar(16);not null;uniqueIndex:uq_memberships_scope_user,priority:1"`
	ScopeID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_memberships_scope_user,priority:2"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_memberships_scope_user,priority:3"`
	IsCreator bool       `gorm:"not null;default:false"`
	RevokedAt *time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (MembershipModel) TableName() string {
	return "memberships"
}
