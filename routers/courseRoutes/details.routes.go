package courseRoutes

import (
	"edtechbackend/crud"
	"edtechbackend/middleware"
	"edtechbackend/models"
	validators "edtechbackend/validators/courseDetails"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupCourseDetailRoutes mounts module, lesson, video and progress
// endpoints. Modules and lessons list in their configured order.
func SetupCourseDetailRoutes(app *fiber.App, db *gorm.DB) {
	module := &crud.Controller[models.Module]{
		Store:  crud.NewGormStore[models.Module](db, "order_index asc"),
		Schema: func() crud.Schema[models.Module] { return new(validators.ModuleSchema) },
		Filters: func(c *fiber.Ctx) map[string]interface{} {
			f := map[string]interface{}{}
			if v := c.Query("course"); v != "" {
				f["course_id"] = v
			}
			return f
		},
	}
	module.Register(app.Group("/module", middleware.JWTMiddleware), middleware.RequireAdmin)

	lesson := &crud.Controller[models.Lesson]{
		Store:  crud.NewGormStore[models.Lesson](db, "order_index asc"),
		Schema: func() crud.Schema[models.Lesson] { return new(validators.LessonSchema) },
		Filters: func(c *fiber.Ctx) map[string]interface{} {
			f := map[string]interface{}{}
			if v := c.Query("module"); v != "" {
				f["module_id"] = v
			}
			return f
		},
	}
	lesson.Register(app.Group("/lesson", middleware.JWTMiddleware), middleware.RequireAdmin)

	video := &crud.Controller[models.Video]{
		Store:  crud.NewGormStore[models.Video](db, "created_at desc"),
		Schema: func() crud.Schema[models.Video] { return new(validators.VideoSchema) },
		Filters: func(c *fiber.Ctx) map[string]interface{} {
			f := map[string]interface{}{}
			if v := c.Query("lesson"); v != "" {
				f["lesson_id"] = v
			}
			return f
		},
	}
	video.Register(app.Group("/video", middleware.JWTMiddleware), middleware.RequireAdmin)

	// Progress records are written by the learners themselves
	progress := &crud.Controller[models.CourseProgress]{
		Store:  crud.NewGormStore[models.CourseProgress](db, "created_at desc"),
		Schema: func() crud.Schema[models.CourseProgress] { return new(validators.ProgressSchema) },
		Filters: func(c *fiber.Ctx) map[string]interface{} {
			f := map[string]interface{}{}
			if v := c.Query("user"); v != "" {
				f["user_id"] = v
			}
			if v := c.Query("lesson"); v != "" {
				f["lesson_id"] = v
			}
			return f
		},
	}
	progress.Register(app.Group("/progress", middleware.JWTMiddleware))
}
