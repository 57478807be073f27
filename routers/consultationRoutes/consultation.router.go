package consultationRoutes

import (
	"edtechbackend/crud"
	"edtechbackend/middleware"
	"edtechbackend/models"
	"edtechbackend/utils"
	validators "edtechbackend/validators/consultation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupConsultationRoutes mounts consultation request endpoints. A new
// request triggers a notification email; email failures are logged
// inside the mailer and never affect the response.
func SetupConsultationRoutes(app *fiber.App, db *gorm.DB) {
	consultation := &crud.Controller[models.Consultation]{
		Store:  crud.NewGormStore[models.Consultation](db, "created_at desc"),
		Schema: func() crud.Schema[models.Consultation] { return new(validators.ConsultationSchema) },
		Filters: func(c *fiber.Ctx) map[string]interface{} {
			f := map[string]interface{}{}
			if v := c.Query("status"); v != "" {
				f["status"] = v
			}
			return f
		},
		AfterCreate: func(m *models.Consultation) {
			go utils.SendConsultationEmail(m.Name, m.Email, m.Phone, m.Topic, m.Message)
		},
	}
	consultation.Register(app.Group("/consultation", middleware.JWTMiddleware))
}
