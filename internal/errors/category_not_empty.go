package errors

import (
	"fmt"
	"net/http"
)

// NewCategoryNotEmpty reports a delete attempt on a category that still
// holds tasks. The message carries the exact task count.
func NewCategoryNotEmpty(taskCount int64) *Exception {
	return &Exception{
		Message:    fmt.Sprintf("category has %d tasks and cannot be deleted; move or delete them first", taskCount),
		StatusCode: http.StatusConflict,
	}
}
