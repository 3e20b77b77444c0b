package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskModel mirrors the 'tasks' table. Reporter and assignee reference memberships.id.
type TaskModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProjectID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	SprintID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Content     string     `gorm:"type:text;not null"`
	Description string     `gorm:"type:text;not null;default:''"`
	Type        string     `gorm:"type:varchar(16);not null"`
	Status      string     `gorm:"type:varchar(16);not null"`
	Priority    string     `gorm:"type:varchar(16);not null"`
	EndAt       *time.Time
	ReporterID  uuid.UUID `gorm:"type:uuid;not null"`
	AssigneeID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Reporter *MembershipModel `gorm:"foreignKey:ReporterID"`
	Assignee *MembershipModel `gorm:"foreignKey:AssigneeID"`
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}
