package errors

import "net/http"

var ErrSelfTarget = &Exception{
	Message:    "cannot perform this operation on your own account",
	StatusCode: http.StatusBadRequest,
}
