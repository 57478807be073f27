package courseRoutes

import (
	controllers "edtechbackend/controllers/course"
	"edtechbackend/crud"
	"edtechbackend/middleware"
	"edtechbackend/models"
	validators "edtechbackend/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupCourseRoutes mounts category, course, review and course-content
// endpoints. Reads need a valid token; catalog mutations need ADMIN.
func SetupCourseRoutes(app *fiber.App, db *gorm.DB) {
	category := &crud.Controller[models.Category]{
		Store:  crud.NewGormStore[models.Category](db, "created_at desc"),
		Schema: func() crud.Schema[models.Category] { return new(validators.CategorySchema) },
	}
	category.Register(app.Group("/category", middleware.JWTMiddleware), middleware.RequireAdmin)

	course := &crud.Controller[models.Course]{
		Store:  crud.NewGormStore[models.Course](db, "created_at desc"),
		Schema: func() crud.Schema[models.Course] { return new(validators.CourseSchema) },
		Filters: func(c *fiber.Ctx) map[string]interface{} {
			f := map[string]interface{}{}
			if v := c.Query("category"); v != "" {
				f["category_id"] = v
			}
			if v := c.Query("published"); v != "" {
				f["is_published"] = v == "true"
			}
			return f
		},
	}
	course.Register(app.Group("/course", middleware.JWTMiddleware), middleware.RequireAdmin)

	// Reviews are written by enrolled users, not admins
	review := &crud.Controller[models.CourseReview]{
		Store:  crud.NewGormStore[models.CourseReview](db, "created_at desc"),
		Schema: func() crud.Schema[models.CourseReview] { return new(validators.ReviewSchema) },
		Filters: func(c *fiber.Ctx) map[string]interface{} {
			f := map[string]interface{}{}
			if v := c.Query("course"); v != "" {
				f["course_id"] = v
			}
			return f
		},
	}
	review.Register(app.Group("/review", middleware.JWTMiddleware))

	// Course content with the paid-access check
	app.Get("/course-content/:id", middleware.JWTMiddleware, controllers.GetCourseContent(db))
}
