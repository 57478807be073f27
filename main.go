package main

import (
	"edtechbackend/config"
	"edtechbackend/database"
	authRoutes "edtechbackend/routers/authRoutes"
	consultationRoutes "edtechbackend/routers/consultationRoutes"
	courseRoutes "edtechbackend/routers/courseRoutes"
	enrollmentRoutes "edtechbackend/routers/enrollmentRoutes"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(recover.New())

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	db := database.Database.Db
	authRoutes.SetupAuthRoutes(app, db)
	courseRoutes.SetupCourseRoutes(app, db)
	courseRoutes.SetupCourseDetailRoutes(app, db)
	enrollmentRoutes.SetupEnrollmentRoutes(app, db)
	consultationRoutes.SetupConsultationRoutes(app, db)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
