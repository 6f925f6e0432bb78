package errors

import "net/http"

var ErrCategoryNameTaken = &Exception{
	Message:    "category name already exists",
	StatusCode: http.StatusConflict,
}
