package errors

import "net/http"

var ErrAssigneeNotFound = &Exception{
	Message:    "assignee not found",
	StatusCode: http.StatusNotFound,
}
