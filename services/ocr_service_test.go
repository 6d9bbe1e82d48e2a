package services

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan.png")
	require.NoError(t, os.WriteFile(path, []byte("not-a-real-png"), 0o600))
	return path
}

func TestExtractText(t *testing.T) {
	var gotField string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, header, err := r.FormFile("image_file")
		if err == nil {
			gotField = header.Filename
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"ligne une\nligne deux"}`))
	}))
	defer srv.Close()

	svc := NewOcrService(srv.URL)
	text, err := svc.ExtractText(writeImage(t))
	require.NoError(t, err)
	assert.Equal(t, "ligne une ligne deux", text)
	assert.Equal(t, "scan.png", gotField)
}

func TestExtractTextUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := NewOcrService(srv.URL)
	_, err := svc.ExtractText(writeImage(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestExtractTextMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	svc := NewOcrService(srv.URL)
	_, err := svc.ExtractText(writeImage(t))
	assert.Error(t, err)
}

func TestExtractTextMissingFile(t *testing.T) {
	svc := NewOcrService("http://127.0.0.1:0")
	_, err := svc.ExtractText(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}
