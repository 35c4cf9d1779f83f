package delivery

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  "Success",
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  "Fail",
		Message: message,
	})
}

// mapErrorToStatus translates the error text conventions used by the usecase
// and repository layers into HTTP status codes. Business-rule checkout
// failures (insufficient stock) deliberately fall through to 500 while still
// carrying their descriptive message.
func mapErrorToStatus(err error) int {
	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "not found") {
		return http.StatusNotFound
	}
	if strings.Contains(errMsg, "already exists") || strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint") {
		return http.StatusConflict
	}
	if strings.Contains(errMsg, "still in use") {
		return http.StatusConflict
	}
	if strings.Contains(errMsg, "invalid") || strings.Contains(errMsg, "cannot be empty") ||
		strings.Contains(errMsg, "must be positive") || strings.Contains(errMsg, "cannot be negative") ||
		strings.Contains(errMsg, "at least one item") || strings.Contains(errMsg, "constraint violation") ||
		strings.Contains(errMsg, "is required") {
		return http.StatusBadRequest
	}
	if strings.Contains(errMsg, "does not exist") {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
