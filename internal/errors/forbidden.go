package errors

import "net/http"

var ErrForbidden = &Exception{
	Message:    "insufficient permissions for this operation",
	StatusCode: http.StatusForbidden,
}
