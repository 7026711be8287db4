package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service sentinel errors onto HTTP statuses.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTripNotFound),
		errors.Is(err, ErrRouteNotFound),
		errors.Is(err, ErrCostNotFound),
		errors.Is(err, ErrPostNotFound),
		errors.Is(err, ErrCommentNotFound),
		errors.Is(err, ErrGroupNotFound),
		errors.Is(err, ErrDestinationNotFound),
		errors.Is(err, ErrContactNotFound),
		errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidCoordinates):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
	case errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrAlreadyMember):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrNotMember):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrWeatherUnavailable):
		RespondError(c, http.StatusBadGateway, "Weather provider unavailable")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
