package middleware

import "github.com/gofiber/fiber/v2"

// JsonResponse writes the uniform {status, message, data} envelope.
// Every handler response, success or failure, goes through here.
func JsonResponse(c *fiber.Ctx, statusCode int, status string, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// SuccessResponse wraps data in a "success" envelope
func SuccessResponse(c *fiber.Ctx, statusCode int, message string, data interface{}) error {
	return JsonResponse(c, statusCode, "success", message, data)
}

// ErrorResponse wraps a failure message in an "error" envelope
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return JsonResponse(c, statusCode, "error", message, nil)
}
