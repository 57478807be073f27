package enrollmentController_test

import (
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
	"edtechbackend/models"
	enrollmentRoutes "edtechbackend/routers/enrollmentRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setup(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)

	app := fiber.New()
	enrollmentRoutes.SetupEnrollmentRoutes(app, db)
	return app, db
}

func seed(t *testing.T, db *gorm.DB) (models.Course, string) {
	t.Helper()

	category := models.Category{Name: "Programming"}
	require.NoError(t, db.Create(&category).Error)
	course := models.Course{Title: "Go in depth", CategoryID: category.ID, Price: 100, IsPublished: true}
	require.NoError(t, db.Create(&course).Error)

	user := models.User{Name: "Student", Email: "student@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return course, token
}

func do(t *testing.T, app *fiber.App, method, path, token string) (*http.Response, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &env)
	}
	return resp, env
}

func TestEnrollCreatesPendingTransaction(t *testing.T) {
	app, db := setup(t)
	course, token := seed(t, db)

	resp, env := do(t, app, "POST", fmt.Sprintf("/enrollment/%d", course.ID), token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "success", env.Status)

	var enrollment models.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &enrollment))
	assert.Equal(t, course.ID, enrollment.CourseID)
	assert.Equal(t, models.TxnPending, enrollment.Transaction.Status)
	assert.NotEmpty(t, enrollment.Transaction.Reference)
	assert.Equal(t, course.Price, enrollment.Transaction.Amount)

	// Enrolling twice is rejected
	resp, env = do(t, app, "POST", fmt.Sprintf("/enrollment/%d", course.ID), token)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "error", env.Status)
}

func TestEnrollUnknownCourse(t *testing.T) {
	app, db := setup(t)
	_, token := seed(t, db)

	resp, env := do(t, app, "POST", "/enrollment/9999", token)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "error", env.Status)
}

func TestVerifyPaymentFlipsStatus(t *testing.T) {
	app, db := setup(t)
	course, token := seed(t, db)

	// Gateway stub confirming every reference
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer gw-secret", r.Header.Get("Authorization"))
		assert.True(t, strings.HasPrefix(r.URL.Path, "/transaction/verify/"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status": true, "data": {"status": "success"}}`)
	}))
	defer gateway.Close()
	config.AppConfig.PaymentApiURL = gateway.URL
	config.AppConfig.PaymentApiKey = "gw-secret"

	_, env := do(t, app, "POST", fmt.Sprintf("/enrollment/%d", course.ID), token)
	var enrollment models.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &enrollment))

	resp, env := do(t, app, "POST", "/enrollment/verify/"+enrollment.Transaction.Reference, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var transaction models.Transaction
	require.NoError(t, json.Unmarshal(env.Data, &transaction))
	assert.Equal(t, models.TxnSuccess, transaction.Status)

	// Recorded in the store as well
	var stored models.Transaction
	require.NoError(t, db.Where("reference = ?", enrollment.Transaction.Reference).First(&stored).Error)
	assert.Equal(t, models.TxnSuccess, stored.Status)
}

func TestVerifyPaymentUnknownReference(t *testing.T) {
	app, db := setup(t)
	_, token := seed(t, db)

	resp, env := do(t, app, "POST", "/enrollment/verify/no-such-reference", token)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "ID not found", env.Message)
}

func TestGetEnrollments(t *testing.T) {
	app, db := setup(t)
	course, token := seed(t, db)

	resp, _ := do(t, app, "POST", fmt.Sprintf("/enrollment/%d", course.ID), token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, env := do(t, app, "GET", "/enrollment", token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var enrollments []models.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &enrollments))
	require.Len(t, enrollments, 1)
	assert.Equal(t, course.ID, enrollments[0].Course.ID)

	// Paginated form
	resp, env = do(t, app, "GET", "/enrollment?page=1&limit=5", token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var paged struct {
		Results    []models.Enrollment `json:"results"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &paged))
	assert.Len(t, paged.Results, 1)
	assert.Equal(t, int64(1), paged.Pagination.Total)
}
