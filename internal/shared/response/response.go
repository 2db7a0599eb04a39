package response

import (
	"github.com/gin-gonic/gin"
)

// Success writes the payload as-is. Representation field names are the wire
// contract, so success bodies carry the data without an envelope.
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, errorBody{
		Error: errorDetail{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
	})
}
