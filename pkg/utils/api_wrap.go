package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondDetail writes an error body in the {"detail": ...} shape the frontend
// expects for every non-2xx response.
func RespondDetail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"detail": message})
}

// HandleServiceError maps a service error onto a status code and a detail
// message. Validation errors keep their own message; everything upstream is
// reported as-is so the client can tell a throttle from a hard failure.
func HandleServiceError(c *gin.Context, err error) {
	var fieldErr *FieldError

	switch {
	case errors.As(err, &fieldErr):
		RespondDetail(c, http.StatusBadRequest, fieldErr.Message)
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondDetail(c, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, ErrInvalidCredentials):
		RespondDetail(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrAccountNotFound):
		RespondDetail(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrCityNotFound):
		RespondDetail(c, http.StatusNotFound, "City not found")
	case errors.Is(err, ErrWeatherUpstream):
		RespondDetail(c, http.StatusBadGateway, "Weather API error")
	case errors.Is(err, ErrGenerationAuth),
		errors.Is(err, ErrGenerationRateLimited),
		errors.Is(err, ErrGenerationUpstream):
		log.Printf("Generation error: %v", err)
		RespondDetail(c, http.StatusInternalServerError, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondDetail(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondDetail(c, http.StatusInternalServerError, "Internal server error")
	}
}
