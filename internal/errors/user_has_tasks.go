package errors

import (
	"fmt"
	"net/http"
)

// NewUserHasTasks reports a delete attempt on a user who is the creator of
// tasks still on the board.
func NewUserHasTasks(taskCount int64) *Exception {
	return &Exception{
		Message:    fmt.Sprintf("user created %d tasks and cannot be deleted; reassign or delete them first", taskCount),
		StatusCode: http.StatusConflict,
	}
}
