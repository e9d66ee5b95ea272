package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.Request.URL.Path))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Detail: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, detail string) {
	Logger := GetLogger()
	Logger.Warn("request failed", zap.Int("status", status), zap.String("detail", detail), zap.String("path", c.Request.URL.Path))
	c.AbortWithStatusJSON(status, ErrorResponse{Detail: detail})
}

// StatusFor maps a service error onto an HTTP status. gatewayStatus is used
// for upstream faults since the flights API reports them as 502 while the
// other endpoints report 500.
func StatusFor(err error, gatewayStatus int) int {
	var validationErr *ValidationError
	var gatewayErr *GatewayError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, ErrPaymentVerification):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &gatewayErr):
		return gatewayStatus
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes err using the status from StatusFor and the error message as detail.
func WriteError(c *gin.Context, err error, gatewayStatus int) {
	JSONError(c, StatusFor(err, gatewayStatus), err.Error())
}
