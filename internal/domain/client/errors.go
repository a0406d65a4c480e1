package client

import (
	"errors"
	"net/http"

	"github.com/BruksfildServices01/mapa-clientes/internal/httperr"
)

const (
	CodeMissingParams = "missing_params"
	CodeEmptyList     = "empty_list"
	CodeTooManyCodes  = "too_many_codes"
	CodeNotFound      = "client_not_found"
	CodeUnmappable    = "client_unmappable"
)

var (
	ErrMissingParams = httperr.ErrBusiness(CodeMissingParams)
	ErrEmptyList     = httperr.ErrBusiness(CodeEmptyList)
	ErrTooManyCodes  = httperr.ErrBusinessStatus(http.StatusRequestEntityTooLarge, CodeTooManyCodes)
	ErrNotFound      = httperr.ErrBusinessStatus(http.StatusNotFound, CodeNotFound)
)

// UnmappableError reports a record that exists but whose coordinates do not
// parse. It discloses the identity and nothing else.
type UnmappableError struct {
	Generation Generation
	Key        Key
}

func (e *UnmappableError) Error() string {
	return CodeUnmappable
}

// Is lets errors.Is match the business code.
func (e *UnmappableError) Is(target error) bool {
	return httperr.IsBusiness(target, CodeUnmappable)
}

func AsUnmappable(err error) (*UnmappableError, bool) {
	var ue *UnmappableError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
