package dataservice

import (
	"errors"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"travel_console/internal/domain"
	"travel_console/pkg/errcodes"
)

var errInvalidPayload = errors.New("payload is not JSON")

// ResponseError is a non-2xx answer of the data service.
type ResponseError struct {
	Method string
	Path   string
	Status int
	Body   []byte
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Status)
}

func (e *ResponseError) StatusCode() int {
	return e.Status
}

func AsResponseError(err error) (*ResponseError, bool) {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr, true
	}

	return nil, false
}

// codeError attaches an error code to a failed hotel request so the
// console API can answer with a meaningful status.
func codeError(err error, notFound failure.ErrorCode) error {
	respErr, ok := AsResponseError(err)
	if !ok {
		return domain.WrapError(err, errcodes.DataServiceUnavailable, "data service is unavailable")
	}

	switch respErr.Status {
	case http.StatusBadRequest:
		return domain.WrapError(err, errcodes.ValidationError, "data service rejected the request")
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.WrapError(err, errcodes.Forbidden, "access denied by data service")
	case http.StatusNotFound:
		return domain.WrapError(err, notFound, "not found")
	default:
		return domain.WrapError(err, errcodes.DataServiceUnavailable, "data service request failed")
	}
}
