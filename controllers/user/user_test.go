package userController_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"visualearn/config"
	"visualearn/database"
	"visualearn/middleware"
	"visualearn/models"
	"visualearn/routers/userRoutes"
)

func setupUserTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	app := fiber.New()
	userRoutes.SetupUserRoutes(app, db)
	return app, db
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	app, db := setupUserTest(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/users", `{"name":"Alice","email":"a@x.com"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Same email again: short-circuit, no second insert
	resp, err = app.Test(jsonRequest(http.MethodPost, "/users", `{"name":"Alice Again","email":"a@x.com"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "User already exists", decodeEnvelope(t, resp).Message)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "a@x.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateUserDefaultsToStudent(t *testing.T) {
	app, db := setupUserTest(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/users", `{"name":"Bob","email":"b@x.com","role":"admin"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var user models.User
	require.NoError(t, db.Where("email = ?", "b@x.com").First(&user).Error)
	assert.Equal(t, models.RoleStudent, user.Role)
}

func TestCreateUserRejectsBadEmail(t *testing.T) {
	app, _ := setupUserTest(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/users", `{"name":"Bad","email":"not-an-email"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGetAllUsers(t *testing.T) {
	app, db := setupUserTest(t)

	require.NoError(t, db.Create(&models.User{Name: "A", Email: "a@x.com"}).Error)
	require.NoError(t, db.Create(&models.User{Name: "B", Email: "b@x.com"}).Error)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var users []models.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	assert.Len(t, users, 2)
}

func TestPromoteToAdminAndCheck(t *testing.T) {
	app, db := setupUserTest(t)

	user := models.User{Name: "Carol", Email: "c@x.com", Role: models.RoleStudent}
	require.NoError(t, db.Create(&user).Error)

	resp, err := app.Test(jsonRequest(http.MethodPatch, fmt.Sprintf("/users/admin/%d", user.ID), ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.Equal(t, models.RoleAdmin, reloaded.Role)

	// Matching claim email answers true
	token, err := middleware.GenerateJWT("c@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/users/admin/c@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]bool
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result["admin"])

	// Mismatched claim email answers false regardless of the stored role
	otherToken, err := middleware.GenerateJWT("someone@else.com")
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/users/admin/c@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+otherToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	result = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.False(t, result["admin"])
}

func TestPromoteToInstructor(t *testing.T) {
	app, db := setupUserTest(t)

	user := models.User{Name: "Dave", Email: "d@x.com"}
	require.NoError(t, db.Create(&user).Error)

	resp, err := app.Test(jsonRequest(http.MethodPatch, fmt.Sprintf("/users/instructor/%d", user.ID), ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.Equal(t, models.RoleInstructor, reloaded.Role)
}

func TestPromoteUnknownUser(t *testing.T) {
	app, _ := setupUserTest(t)

	resp, err := app.Test(jsonRequest(http.MethodPatch, "/users/admin/9999", ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInstructorCheckRequiresToken(t *testing.T) {
	app, _ := setupUserTest(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/instructor/a@x.com", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDeleteUser(t *testing.T) {
	app, db := setupUserTest(t)

	user := models.User{Name: "Gone", Email: "gone@x.com"}
	require.NoError(t, db.Create(&user).Error)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/users/%d", user.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Hard removal, not a soft delete
	var count int64
	require.NoError(t, db.Unscoped().Model(&models.User{}).Where("email = ?", "gone@x.com").Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDeleteUserNotFound(t *testing.T) {
	app, _ := setupUserTest(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/users/424242", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteUserInvalidID(t *testing.T) {
	app, _ := setupUserTest(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/users/not-a-number", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
