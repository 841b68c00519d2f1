package services

import "net/http"

// HTTPError is the business-error taxonomy: validation (400), forbidden (403)
// and not-found (404). Anything else that escapes a service is treated as an
// internal failure by the transport layer.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string { return e.Message }

func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func validationError(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

func notFoundError(message string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message)
}

func forbiddenError(message string) *HTTPError {
	return NewHTTPError(http.StatusForbidden, message)
}
