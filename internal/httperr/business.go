package httperr

import "net/http"

type BusinessError struct {
	Code    string
	Status  int
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code, Status: http.StatusBadRequest}
}

func ErrConflict(code, message string) error {
	return BusinessError{Code: code, Status: http.StatusConflict, Message: message}
}

func ErrNotFound(code, message string) error {
	return BusinessError{Code: code, Status: http.StatusNotFound, Message: message}
}

func ErrUnauthorized(code, message string) error {
	return BusinessError{Code: code, Status: http.StatusUnauthorized, Message: message}
}
