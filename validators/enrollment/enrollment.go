package enrollmentValidator

import (
	"edtechbackend/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// EnrollCourse validates the course id path parameter.
func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Course ID is required!")
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Course ID!")
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// VerifyPayment validates the transaction reference path parameter.
func VerifyPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reference := strings.TrimSpace(c.Params("reference"))
		if reference == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Transaction reference is required!")
		}

		c.Locals("reference", reference)
		return c.Next()
	}
}
