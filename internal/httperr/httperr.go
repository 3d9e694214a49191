package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const ContextRequestID = "requestID"

type HTTPError struct {
	Message string   `json:"message"`
	Code    string   `json:"error_code,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func TooManyRequests(c *gin.Context, code, message string) {
	Write(c, http.StatusTooManyRequests, code, message)
}

// Validation writes a 400 with one message per failing field.
func Validation(c *gin.Context, fieldErrors []string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, HTTPError{
		Code:    "validation_error",
		Message: "Validation error",
		Errors:  fieldErrors,
	})
}

// Respond maps a use case error onto the JSON error shape. Anything that is
// not a BusinessError is logged and reported as a 500.
func Respond(c *gin.Context, logger *slog.Logger, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		status := be.Status
		if status == 0 {
			status = http.StatusBadRequest
		}
		message := be.Message
		if message == "" {
			message = http.StatusText(status)
		}
		Write(c, status, be.Code, message)
		return
	}

	if logger != nil {
		logger.ErrorContext(c.Request.Context(), "request failed",
			"error", err,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"request_id", c.GetString(ContextRequestID),
		)
	}
	Internal(c, "internal_error", "Internal server error")
}
