package model

import (
	"time"

	"github.com/present-lee/module-6/internal/constants"
)

type Task struct {
	ID          string                 `gorm:"primaryKey;size:36" json:"id"`
	Title       string                 `gorm:"size:200;not null" json:"title"`
	Description *string                `json:"description"`
	CategoryID  string                 `gorm:"size:36;not null;index" json:"category_id"`
	AssignedTo  *string                `gorm:"size:36;index" json:"assigned_to"`
	CreatedBy   string                 `gorm:"size:36;not null;index" json:"created_by"`
	StartDate   *time.Time             `json:"start_date"`
	DueDate     *time.Time             `json:"due_date"`
	Priority    constants.TaskPriority `gorm:"type:varchar(10);not null" json:"priority"`
	Order       int                    `gorm:"not null;default:0" json:"order"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Assignee *User     `gorm:"foreignKey:AssignedTo" json:"assignee,omitempty"`
	Creator  *User     `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}
