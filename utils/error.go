package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error codes shared across handlers.
const (
	CodeValidationError  = "VALIDATION_ERROR"
	CodeDocumentTooLarge = "DOCUMENT_TOO_LARGE"
	CodeMissingParameter = "MISSING_PARAMETER"
	CodeSessionNotFound  = "SESSION_NOT_FOUND"
	CodeInvalidHash      = "INVALID_HASH"
	CodeAnalysisError    = "ANALYSIS_ERROR"
	CodeGenerationError  = "GENERATION_ERROR"
	CodePaymentError     = "PAYMENT_ERROR"
	CodeAIUnavailable    = "AI_UNAVAILABLE"
	CodeInternalError    = "INTERNAL_ERROR"
)

// APIError defines the structure of error responses.
type APIError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, gin.H{"error": APIError{
					Code:    CodeInternalError,
					Message: "An unexpected error occurred. Please try again later.",
				}})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response.
func JSONError(c *gin.Context, status int, code, message string, details ...string) {
	logger := GetLogger()
	logger.Warn(message, zap.String("code", code), zap.Strings("details", details))
	c.JSON(status, gin.H{"error": APIError{Code: code, Message: message, Details: details}})
}
