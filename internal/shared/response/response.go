package response

import (
	"maventoys-backend/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform body returned by every operation: a message plus
// the payload. Error responses carry only the message.
type Envelope struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func JSON(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Envelope{
		Message: message,
		Data:    data,
	})
}

// Error writes the envelope for a failed operation. The HTTP status comes
// from the error taxonomy (404 for NotFound, 500 otherwise).
func Error(c *gin.Context, err error) {
	c.JSON(apperror.HTTPStatus(err), Envelope{
		Message: err.Error(),
	})
}

// BadRequest is used at the binding/parsing boundary, before service code runs.
func BadRequest(c *gin.Context, message string) {
	c.JSON(400, Envelope{
		Message: message,
	})
}
