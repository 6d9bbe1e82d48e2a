package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/alphadev-tn/stage_manager/database"
	"github.com/alphadev-tn/stage_manager/handlers"
	"github.com/alphadev-tn/stage_manager/models"
	"github.com/alphadev-tn/stage_manager/repository"
	"github.com/alphadev-tn/stage_manager/routes"
	"github.com/alphadev-tn/stage_manager/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testUsername = "admin"
	testPassword = "admin123"
)

// envelope is the response shape every endpoint answers with.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("ACCESS_TOKEN_SECRET", "unit-test-secret")

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.DefaultCost)
	require.NoError(t, err)
	admin := models.User{Username: testUsername, Password: string(hash), Firstname: "Ad", Lastname: "Min"}
	require.NoError(t, db.Create(&admin).Error)

	users := repository.NewUserRepository(db)
	etudiants := repository.NewEtudiantRepository(db)
	stages := repository.NewStageRepository(db)
	refreshTokens := repository.NewRefreshTokenRepository(db)
	departements := repository.New[models.Departement](db, "departement_id")
	classes := repository.New[models.Classe](db, "classe_id", "NiveauFormation")
	userTypes := repository.New[models.UserType](db, "user_type_id")

	importer := services.NewImportService(db)

	app := fiber.New()
	api := app.Group("/api/v1")
	routes.RegisterAuthRoutes(api, handlers.NewAuthHandler(users, refreshTokens))
	routes.RegisterUserRoutes(api, handlers.NewUserHandler(users))
	routes.RegisterUserTypeRoutes(api, handlers.NewUserTypeHandler(userTypes))
	routes.RegisterDepartementRoutes(api, handlers.NewDepartementHandler(departements))
	routes.RegisterClasseRoutes(api, handlers.NewClasseHandler(classes))
	routes.RegisterEtudiantRoutes(api, handlers.NewEtudiantHandler(etudiants, importer))
	routes.RegisterStageRoutes(api, handlers.NewStageHandler(stages))

	return app, db
}

// doJSON fires one request at the app and decodes the envelope.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

// tempUploads lists the handler-made temp copies matching pattern, e.g.
// "import-*" or "ocr-*".
func tempUploads(t *testing.T, pattern string) map[string]bool {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(os.TempDir(), pattern))
	require.NoError(t, err)
	set := make(map[string]bool, len(matches))
	for _, m := range matches {
		set[m] = true
	}
	return set
}

// assertNoNewUploads fails when a temp copy created during the request is
// still on disk.
func assertNoNewUploads(t *testing.T, pattern string, before map[string]bool) {
	t.Helper()
	for path := range tempUploads(t, pattern) {
		if !before[path] {
			t.Errorf("temp upload %s was not removed", path)
		}
	}
}

type tokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// login authenticates the seeded admin and returns the token pair.
func login(t *testing.T, app *fiber.App) tokenPair {
	t.Helper()
	status, env := doJSON(t, app, http.MethodPost, "/api/v1/login", "",
		fiber.Map{"username": testUsername, "password": testPassword})
	require.Equal(t, http.StatusOK, status)
	require.True(t, env.Success)

	var pair tokenPair
	require.NoError(t, json.Unmarshal(env.Data, &pair))
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	return pair
}
