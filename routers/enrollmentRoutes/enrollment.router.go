package enrollmentRoutes

import (
	controllers "edtechbackend/controllers/enrollment"
	"edtechbackend/middleware"
	validators "edtechbackend/validators/enrollment"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupEnrollmentRoutes mounts enrollment and payment verification
func SetupEnrollmentRoutes(app *fiber.App, db *gorm.DB) {
	enrollGroup := app.Group("/enrollment", middleware.JWTMiddleware)

	enrollGroup.Get("/", controllers.GetEnrollments(db))
	enrollGroup.Post("/:id", validators.EnrollCourse(), controllers.EnrollInCourse(db))
	enrollGroup.Post("/verify/:reference", validators.VerifyPayment(), controllers.VerifyPayment(db))
}
