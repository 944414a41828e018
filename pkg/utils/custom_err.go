package utils

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrDatabaseError      = errors.New("database error")

	ErrGenerationAuth        = errors.New("generation API authentication failed")
	ErrGenerationRateLimited = errors.New("generation API rate limit exceeded")
	ErrGenerationUpstream    = errors.New("generation API request failed")

	ErrCityNotFound    = errors.New("city not found")
	ErrWeatherUpstream = errors.New("weather API error")
)

// FieldError reports the first missing or invalid field of a request.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func NewFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}
