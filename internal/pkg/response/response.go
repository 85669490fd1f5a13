package response

import "github.com/gofiber/fiber/v2"

// Response is the envelope used by error and message-only endpoints.
// Endpoints with a documented payload return that shape directly.
type Response struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Message sends a response with the given status code and message
func Message(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Message: message,
	})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusUnauthorized, message)
}

// Forbidden sends a 403 forbidden response
func Forbidden(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusForbidden, message)
}

// NotFound sends a 404 not found response
func NotFound(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusNotFound, message)
}

// InternalServerError sends a 500 response with the underlying error detail
func InternalServerError(c *fiber.Ctx, message string, err error) error {
	resp := Response{Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(resp)
}
