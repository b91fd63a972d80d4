package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/marcos-nsantos/detection-map-backend/internal/domain"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		StatusCode: http.StatusNotFound,
	}
}

func BadRequest(message string) *AppError {
	return &AppError{
		Code:       "BAD_REQUEST",
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func Unavailable(message string) *AppError {
	return &AppError{
		Code:       "UNAVAILABLE",
		Message:    message,
		StatusCode: http.StatusServiceUnavailable,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "an internal error occurred",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

func Wrap(err error, message string) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:       appErr.Code,
			Message:    message,
			StatusCode: appErr.StatusCode,
			Err:        err,
		}
	}
	return Internal(fmt.Errorf("%s: %w", message, err))
}

// FromDomain maps domain sentinel errors to their HTTP form. Anything it does
// not recognize becomes an internal error.
func FromDomain(err error) *AppError {
	var appErr *AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, domain.ErrInformationNotFound):
		return NotFound("information")
	case errors.Is(err, domain.ErrImageNotFound):
		return NotFound("image")
	case errors.Is(err, domain.ErrInvalidBoundingBox):
		return New("INVALID_BOUNDING_BOX", "invalid bounding box", http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidLocation):
		return New("INVALID_LOCATION", "invalid location", http.StatusBadRequest)
	case errors.Is(err, domain.ErrMalformedGeometry):
		return &AppError{
			Code:       "MALFORMED_GEOMETRY",
			Message:    err.Error(),
			StatusCode: http.StatusBadRequest,
			Err:        err,
		}
	case errors.Is(err, domain.ErrUnsupportedImageType):
		return New("INVALID_TYPE", "only jpeg and png images are allowed", http.StatusBadRequest)
	case errors.Is(err, domain.ErrSourceUnavailable):
		return Unavailable("feature source unavailable")
	default:
		return Internal(err)
	}
}

func Is(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
