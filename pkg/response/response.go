// Package response centralizes HTTP response shapes and helpers.
// Handlers rely on it to keep controllers thin and uniform.
package response

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shriank296/subtle/internal/repository"
	"github.com/shriank296/subtle/internal/service"
)

// storeErrorDetail is the only text an unexpected database failure is allowed
// to leak to a caller. The real error goes to the log, never to the wire.
const storeErrorDetail = "An unexpected database error occurred. Please contact support if the issue persists."

// ErrorDetail is one entry in the errors list of the canonical envelope.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// ErrorResponse is the canonical error envelope returned by the API.
type ErrorResponse struct {
	Timestamp time.Time     `json:"timestamp"`
	Status    int           `json:"status"`
	Title     string        `json:"title"`
	Errors    []ErrorDetail `json:"errors"`
	Path      string        `json:"path"`
}

// MapError converts a domain / infrastructure error into an HTTP status,
// a human-readable title and the detail list. Extend here as new domain
// error categories emerge.
func MapError(err error) (int, string, []ErrorDetail) {
	if err == nil {
		return http.StatusOK, "OK", nil
	}

	if errors.Is(err, service.ErrInvalidInput) {
		details := make([]ErrorDetail, 0, 1)
		for _, fe := range service.FieldErrors(err) {
			details = append(details, ErrorDetail{Detail: fe.Field + ": " + fe.Message})
		}
		if len(details) == 0 {
			details = append(details, ErrorDetail{Detail: "one or more fields are invalid"})
		}
		return http.StatusBadRequest, "Validation Error", details
	}

	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, "Not Found", []ErrorDetail{{Detail: "No technical adjustments found for given parameters"}}
	case errors.Is(err, repository.ErrAlreadyExists):
		return http.StatusConflict, "Conflict", []ErrorDetail{{Detail: "resource already exists"}}
	case errors.Is(err, repository.ErrConflict):
		return http.StatusConflict, "Conflict", []ErrorDetail{{Detail: "conflicting resource state"}}
	default:
		return http.StatusInternalServerError, "Database Error", []ErrorDetail{{Detail: storeErrorDetail}}
	}
}

// WriteError writes the canonical error envelope and aborts the context.
func WriteError(c *gin.Context, err error) {
	status, title, details := MapError(err)
	c.AbortWithStatusJSON(status, ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Title:     title,
		Errors:    details,
		Path:      c.Request.URL.Path,
	})
}

// WriteData writes a successful JSON response.
func WriteData(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}
