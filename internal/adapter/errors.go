package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrTransport marks failures where no interpretable response was received:
// the request never completed, or the body could not be decoded.
var ErrTransport = errors.New("transport error")

// Status sentinels returned by [ResponseError.Unwrap].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ResponseError is a service-reported failure: a response with a non-2xx
// status. Message holds the body's "message" field and is empty when the
// service did not provide one.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps the status code to one of the package sentinels so that
// callers can use errors.Is.
func (e *ResponseError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return ErrUnexpectedStatus
	}
}

// ServiceMessage extracts the service-provided message from err. ok is false
// when err is not a [*ResponseError] or the message is empty.
func ServiceMessage(err error) (string, bool) {
	var respErr *ResponseError
	if !errors.As(err, &respErr) || respErr.Message == "" {
		return "", false
	}
	return respErr.Message, true
}

// IsTransport reports whether err belongs to the transport tier.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}
