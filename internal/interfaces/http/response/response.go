package response

import (
	"github.com/gin-gonic/gin"
	domainerrors "investgrow.backend/internal/domain/errors"
)

// Success sends a success envelope.
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// SuccessWithMessage sends a success envelope with a message.
func SuccessWithMessage(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
		"message": message,
	})
}

// Error sends an error envelope. Anything that is not an AppError is
// reported as a 500 without leaking internal detail.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if e, ok := err.(*domainerrors.AppError); ok {
		appErr = e
	} else {
		appErr = domainerrors.InternalError(err)
	}

	c.JSON(appErr.Code, gin.H{
		"success": false,
		"message": appErr.Message,
	})
}

// AbortError stops the handler chain with an error envelope. Used by
// middleware.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"message": message,
	})
}
