package server

import (
	"errors"
	"net/http"
)

var (
	// ErrValidation indicates a malformed or invalid request body.
	ErrValidation = errors.New("validation failed")

	// ErrAnalysisNotFound indicates the requested analysis does not exist.
	ErrAnalysisNotFound = errors.New("analysis not found")

	// ErrDatabaseUnavailable indicates the server is running without
	// persistence and the requested endpoint requires it.
	ErrDatabaseUnavailable = errors.New("database unavailable")
)

// HTTPStatus maps a service error to the status code it should produce.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrAnalysisNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDatabaseUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
