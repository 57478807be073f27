package authRoutes

import (
	controllers "edtechbackend/controllers/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupAuthRoutes sets up signup and login
func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", controllers.Signup(db))
	authGroup.Post("/login", controllers.Login(db))
}
