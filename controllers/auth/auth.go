package authController

import (
	"edtechbackend/config"
	"edtechbackend/middleware"
	"edtechbackend/models"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Signup registers a new user
func Signup(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Mobile   string `json:"mobile"`
			Password string `json:"password"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if strings.TrimSpace(reqData.Email) == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Email is empty")
		}
		if strings.TrimSpace(reqData.Password) == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Password is empty")
		}

		// Check if email already exists
		if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
			return middleware.ErrorResponse(c, fiber.StatusConflict, "Email is already registered!")
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "An error occurred")
		}

		newUser := models.User{
			Name:     reqData.Name,
			Email:    reqData.Email,
			Mobile:   reqData.Mobile,
			Password: string(hashedPassword),
		}

		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("Error saving user to database: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "An error occurred")
		}

		return middleware.SuccessResponse(c, fiber.StatusCreated, "Created Successfully", newUser)
	}
}

// Login verifies credentials and issues a bearer token
func Login(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		var user models.User
		if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials!")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials!")
		}

		token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
		if err != nil {
			log.Printf("Error generating JWT: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "An error occurred")
		}

		now := time.Now()
		user.LastLogin = &now
		if err := db.Save(&user).Error; err != nil {
			log.Printf("Error updating last login: %v", err)
		}

		return middleware.SuccessResponse(c, fiber.StatusOK, "Fetched successfully", fiber.Map{
			"token": token,
			"user":  user,
		})
	}
}
