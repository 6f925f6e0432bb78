package dto

import (
	"time"

	"github.com/present-lee/module-6/internal/constants"
	"github.com/present-lee/module-6/internal/optional"
)

type CreateTaskRequest struct {
	Title       string                 `json:"title"`
	Description *string                `json:"description"`
	CategoryID  string                 `json:"category_id"`
	AssignedTo  *string                `json:"assigned_to"`
	StartDate   *time.Time             `json:"start_date"`
	DueDate     *time.Time             `json:"due_date"`
	Priority    constants.TaskPriority `json:"priority"`
	// Order defaults to the end of the target category when omitted.
	Order *int `json:"order"`
}

// UpdateTaskRequest is a tri-state patch: absent fields are untouched,
// explicit nulls clear the nullable columns (description, assigned_to,
// start_date, due_date).
type UpdateTaskRequest struct {
	Title       optional.Field[string]                 `json:"title"`
	Description optional.Field[string]                 `json:"description"`
	CategoryID  optional.Field[string]                 `json:"category_id"`
	AssignedTo  optional.Field[string]                 `json:"assigned_to"`
	StartDate   optional.Field[time.Time]              `json:"start_date"`
	DueDate     optional.Field[time.Time]              `json:"due_date"`
	Priority    optional.Field[constants.TaskPriority] `json:"priority"`
	Order       optional.Field[int]                    `json:"order"`
}

type MoveTaskRequest struct {
	CategoryID string `json:"category_id"`
	Order      int    `json:"order"`
}
