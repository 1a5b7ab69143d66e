package httperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"bizapi/internal/apperr"
)

// Payload is the standardized error response body: a single human-readable
// error field. Internal details never appear here.
type Payload struct {
	Error string `json:"error"`
}

// Write writes a JSON error body with the given status.
func Write(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Payload{Error: message})
}

// ErrorHandler returns a Fiber global error handler that maps the application
// error taxonomy to HTTP statuses. Storage and internal failures are logged
// with their cause and answered with a generic message.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch fe.Code {
			case fiber.StatusNotFound:
				return Write(c, fe.Code, "resource not found")
			case fiber.StatusMethodNotAllowed:
				return Write(c, fe.Code, "method not allowed")
			default:
				return Write(c, fe.Code, fe.Message)
			}
		}

		status := apperr.StatusCode(err)
		if status == fiber.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}
		return Write(c, status, apperr.ClientMessage(err))
	}
}
