package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alphadev-tn/stage_manager/handlers"
	"github.com/alphadev-tn/stage_manager/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOcrApp(t *testing.T, upstream http.HandlerFunc) *fiber.App {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	app := fiber.New()
	h := handlers.NewOcrHandler(services.NewOcrService(srv.URL))
	app.Post("/ocr/image", h.OcrImage)
	return app
}

func postImage(t *testing.T, app *fiber.App) (int, envelope) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("uploaded_doc", "scan.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("not-a-real-png"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/ocr/image", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestOcrImage(t *testing.T) {
	app := newOcrApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"carte\nidentite"}`))
	})

	before := tempUploads(t, "ocr-*")
	status, env := postImage(t, app)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Processing ocr image", env.Message)
	assert.JSONEq(t, `"carte identite"`, string(env.Data))
	assertNoNewUploads(t, "ocr-*", before)
}

func TestOcrImageUpstreamFailure(t *testing.T) {
	app := newOcrApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	before := tempUploads(t, "ocr-*")
	status, env := postImage(t, app)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Error calling OCR service", env.Message)

	// The temp copy is gone even though the relay failed.
	assertNoNewUploads(t, "ocr-*", before)
}

func TestOcrImageWithoutFile(t *testing.T) {
	app := newOcrApp(t, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodPost, "/ocr/image", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Image file is required", env.Message)
}
