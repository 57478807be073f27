package courseController

import (
	"edtechbackend/middleware"
	"edtechbackend/models"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetCourseContent retrieves a course with its full content tree and
// an isPaid flag. isPaid is true only when the caller has an
// enrollment for the course whose transaction status is "success".
// The content itself is returned either way; gating on payload depth
// is left to the client.
func GetCourseContent(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized!")
		}

		courseIDStr := strings.TrimSpace(c.Params("id"))
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Course ID!")
		}

		var course models.Course
		if err := db.
			Preload("Modules", func(db *gorm.DB) *gorm.DB { return db.Order("order_index asc") }).
			Preload("Modules.Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("order_index asc") }).
			Preload("Modules.Lessons.Videos").
			First(&course, courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
			}
			log.Printf("Error fetching course %d: %v", courseID, err)
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "An error occurred")
		}

		var paid int64
		if err := db.Model(&models.Enrollment{}).
			Joins("JOIN transactions ON transactions.id = enrollments.transaction_id").
			Where("enrollments.user_id = ? AND enrollments.course_id = ? AND transactions.status = ?",
				userID, course.ID, models.TxnSuccess).
			Count(&paid).Error; err != nil {
			log.Printf("Error checking enrollment for user %d course %d: %v", userID, course.ID, err)
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "An error occurred")
		}

		return middleware.SuccessResponse(c, fiber.StatusOK, "Fetched successfully", fiber.Map{
			"isPaid": paid > 0,
			"data":   course,
		})
	}
}
