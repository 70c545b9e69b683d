package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the error shape of the employee API. The message sits
// under "error" because that is the key browser clients read first.
type ErrorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Success writes data as-is, without an envelope: list endpoints answer
// with a bare JSON array.
func Success(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

func NoContent(c *gin.Context, status int) {
	c.Status(status)
}

func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.JSON(status, ErrorBody{
		Error:   message,
		Code:    errorCode,
		Details: details,
	})
}

func AbortError(c *gin.Context, status int, errorCode string, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{
		Error: message,
		Code:  errorCode,
	})
}
