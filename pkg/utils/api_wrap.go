package utils

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// The envelope mirrors the public API contract: {"success":true,"data":...}
// on success and {"error":{"message":...,"status":...}} on failure. The trace
// ID travels in the X-Trace-ID header so the body shape stays stable.
type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}

func RespondSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{
		Error: APIError{
			Message: message,
			Status:  code,
		},
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrShareNotFound):
		RespondError(c, http.StatusNotFound, "Shared itinerary not found or expired")
	case errors.Is(err, ErrShareExpired):
		RespondError(c, http.StatusGone, "Shared itinerary has expired")
	case errors.Is(err, ErrUnparsableResponse):
		RespondError(c, http.StatusBadGateway, "Could not parse AI response")
	case errors.Is(err, ErrGenerationUnavailable):
		log.Printf("Generation unavailable: %v", err)
		RespondError(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		RespondError(c, 499, "Request cancelled")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
