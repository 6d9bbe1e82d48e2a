package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestLogin(t *testing.T) {
	app, _ := newTestApp(t)
	pair := login(t, app)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/api/v1/login", "",
		fiber.Map{"username": testUsername, "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid username or password", env.Message)
	assert.Empty(t, env.Data)
}

func TestLoginUnknownUser(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/api/v1/login", "",
		fiber.Map{"username": "ghost", "password": "whatever"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid username or password", env.Message)
}

func TestLoginMissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/api/v1/login", "",
		fiber.Map{"username": testUsername})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Validation failed", env.Message)
}

func TestRefreshRotatesToken(t *testing.T) {
	app, _ := newTestApp(t)
	pair := login(t, app)

	status, env := doJSON(t, app, http.MethodPost, "/api/v1/login/refresh", "",
		fiber.Map{"token": pair.RefreshToken})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Token refreshed", env.Message)

	// The presented token is revoked; replaying it is refused.
	status, env = doJSON(t, app, http.MethodPost, "/api/v1/login/refresh", "",
		fiber.Map{"token": pair.RefreshToken})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Invalid refresh token", env.Message)
}

func TestLogoutRevokesToken(t *testing.T) {
	app, _ := newTestApp(t)
	pair := login(t, app)

	status, env := doJSON(t, app, http.MethodPost, "/api/v1/login/logout", "",
		fiber.Map{"token": pair.RefreshToken})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Logged out", env.Message)

	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/login/refresh", "",
		fiber.Map{"token": pair.RefreshToken})
	assert.Equal(t, http.StatusForbidden, status)
}

func TestMutationRequiresToken(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/api/v1/departements", "",
		fiber.Map{"code_departement": "INFO", "lib_departement_fr": "Informatique"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Access token is required", env.Message)
}

func TestMutationRejectsBadToken(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/api/v1/departements", "not-a-jwt",
		fiber.Map{"code_departement": "INFO", "lib_departement_fr": "Informatique"})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Invalid access token", env.Message)
}
