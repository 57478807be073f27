package enrollmentController

import (
	"edtechbackend/middleware"
	"edtechbackend/models"
	"edtechbackend/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnrollInCourse creates a pending transaction and an enrollment for
// the caller. The transaction flips to "success" once the payment
// gateway confirms it via VerifyPayment.
func EnrollInCourse(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized!")
		}

		courseID := c.Locals("courseID").(int)

		var course models.Course
		if err := db.Where("id = ? AND is_published = ?", courseID, true).First(&course).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found or not published!")
		}

		// Reject duplicate enrollment
		var existing models.Enrollment
		if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
			return middleware.ErrorResponse(c, fiber.StatusConflict, "User already enrolled in this course!")
		}

		transaction := models.Transaction{
			Reference: uuid.NewString(),
			Amount:    course.Price,
			Status:    models.TxnPending,
		}
		enrollment := models.Enrollment{
			UserID:   userID,
			CourseID: uint(courseID),
		}

		// Transaction and enrollment are created atomically
		tx := db.Begin()
		if err := tx.Create(&transaction).Error; err != nil {
			tx.Rollback()
			log.Printf("Error creating transaction: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "An error occurred")
		}
		enrollment.TransactionID = transaction.ID
		if err := tx.Create(&enrollment).Error; err != nil {
			tx.Rollback()
			log.Printf("Error creating enrollment: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "An error occurred")
		}
		tx.Commit()

		enrollment.Transaction = transaction
		return middleware.SuccessResponse(c, fiber.StatusCreated, "Created Successfully", enrollment)
	}
}

// VerifyPayment asks the payment gateway for the final status of a
// transaction reference and records the answer.
func VerifyPayment(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := c.Locals("userId").(uint); !ok {
			return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized!")
		}

		reference := c.Locals("reference").(string)

		var transaction models.Transaction
		if err := db.Where("reference = ?", reference).First(&transaction).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "ID not found")
		}

		status, err := utils.VerifyTransaction(reference)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Payment verification failed!")
		}

		if status == models.TxnSuccess || status == models.TxnFailed {
			transaction.Status = status
			if err := db.Save(&transaction).Error; err != nil {
				log.Printf("Error updating transaction %s: %v", reference, err)
				return middleware.ErrorResponse(c, fiber.StatusBadRequest, "An error occurred")
			}
		}

		return middleware.SuccessResponse(c, fiber.StatusOK, "Fetched successfully", transaction)
	}
}

// GetEnrollments lists the caller's enrollments with their course and
// transaction, paginated when a page is requested.
func GetEnrollments(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized!")
		}

		query := db.Model(&models.Enrollment{}).
			Where("user_id = ?", userID).
			Preload("Course").
			Preload("Transaction").
			Order("created_at desc")

		if c.Query("page") == "" {
			var enrollments []models.Enrollment
			if err := query.Find(&enrollments).Error; err != nil {
				log.Printf("Error fetching enrollments for user %d: %v", userID, err)
				return middleware.ErrorResponse(c, fiber.StatusBadRequest, "An error occurred")
			}
			return middleware.SuccessResponse(c, fiber.StatusOK, "Fetched successfully", enrollments)
		}

		page, limit := utils.PageParams(c)

		var total int64
		query.Count(&total)

		var enrollments []models.Enrollment
		if err := query.Offset((page - 1) * limit).Limit(limit).Find(&enrollments).Error; err != nil {
			log.Printf("Error fetching enrollments for user %d: %v", userID, err)
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "An error occurred")
		}

		return middleware.SuccessResponse(c, fiber.StatusOK, "Fetched successfully", fiber.Map{
			"results":    enrollments,
			"pagination": utils.Pagination{Total: total, Page: page, Limit: limit},
		})
	}
}
