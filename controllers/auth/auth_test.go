package authController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"edtechbackend/config"
	"edtechbackend/database"
	"edtechbackend/middleware"
	authRoutes "edtechbackend/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setup(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app, db)
	app.Get("/protected", middleware.JWTMiddleware, func(c *fiber.Ctx) error {
		return middleware.SuccessResponse(c, fiber.StatusOK, "Fetched successfully", nil)
	})
	return app
}

func post(t *testing.T, app *fiber.App, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env map[string]interface{}
	data, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(data, &env)
	return resp, env
}

func TestSignupAndLogin(t *testing.T) {
	app := setup(t)

	resp, env := post(t, app, "/auth/signup", fiber.Map{
		"name": "Jordan", "email": "jordan@example.com", "password": "s3cret",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "success", env["status"])

	// Duplicate email
	resp, _ = post(t, app, "/auth/signup", fiber.Map{
		"name": "Jordan", "email": "jordan@example.com", "password": "other",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// Wrong password
	resp, _ = post(t, app, "/auth/login", fiber.Map{
		"email": "jordan@example.com", "password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Correct login returns a working token
	resp, env = post(t, app, "/auth/login", fiber.Map{
		"email": "jordan@example.com", "password": "s3cret",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := env["data"].(map[string]interface{})
	token := data["token"].(string)
	require.NotEmpty(t, token)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	protectedResp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, protectedResp.StatusCode)
}

func TestSignupMissingFields(t *testing.T) {
	app := setup(t)

	resp, env := post(t, app, "/auth/signup", fiber.Map{"name": "NoEmail"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email is empty", env["message"])

	resp, env = post(t, app, "/auth/signup", fiber.Map{"email": "a@b.com"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Password is empty", env["message"])
}
