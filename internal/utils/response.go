package utils

import (
	"github.com/gofiber/fiber/v2"
)

// MissingDataMessage is returned when a required body field is absent
const MissingDataMessage = "Missing data"

// ErrorResponse sends {"error": message} with the given status
func ErrorResponse(c *fiber.Ctx, message string, status int) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, message, fiber.StatusNotFound)
}

// MissingDataResponse sends the 400 response for an incomplete body
func MissingDataResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, MissingDataMessage, fiber.StatusBadRequest)
}

// MessageResponse sends {"message": message} with the given status
func MessageResponse(c *fiber.Ctx, message string, status int) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Error string `json:"error"`
}

// MessageResponseStruct defines the schema for delete confirmations
type MessageResponseStruct struct {
	Message string `json:"message"`
}
