package httperr

import (
	"errors"
	"net/http"
)

// BusinessError is an expected failure the caller can act on. Status is
// the HTTP status it surfaces as.
type BusinessError struct {
	Code   string
	Status int
}

func (e BusinessError) Error() string {
	return e.Code
}

// ErrBusiness builds a 400-class business error.
func ErrBusiness(code string) error {
	return BusinessError{Code: code, Status: http.StatusBadRequest}
}

func ErrBusinessStatus(status int, code string) error {
	return BusinessError{Code: code, Status: status}
}

func IsBusiness(err error, code string) bool {
	be, ok := AsBusiness(err)
	return ok && be.Code == code
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return BusinessError{}, false
}
