package utils

import "github.com/gofiber/fiber/v2"

// APIMessage is the body returned for mutations and errors.
type APIMessage struct {
	Code        int    `json:"code"`
	UserMessage string `json:"userMessage"`
	ID          uint   `json:"id,omitempty"`
}

// MessageResponse sends a status code with a machine-readable message body.
func MessageResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(APIMessage{Code: code, UserMessage: message})
}

// CreatedResponse sends a 201 with the generated id of the new row.
func CreatedResponse(c *fiber.Ctx, message string, id uint) error {
	return c.Status(fiber.StatusCreated).JSON(APIMessage{
		Code:        fiber.StatusCreated,
		UserMessage: message,
		ID:          id,
	})
}

// ErrorResponse sends an error status with a message body. Internal error
// text must never be passed here; callers pick a client-safe message.
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(APIMessage{Code: code, UserMessage: message})
}
