package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const defaultOcrURL = "http://127.0.0.1:5000/upload_image"

// OcrService forwards an image to the external image-to-text HTTP service
// and relays the recognized text.
type OcrService struct {
	url    string
	client *http.Client
}

func NewOcrService(url string) *OcrService {
	if url == "" {
		url = defaultOcrURL
	}
	return &OcrService{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type ocrResponse struct {
	Text string `json:"text"`
}

func (s *OcrService) ExtractText(imagePath string) (string, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image_file", filepath.Base(imagePath))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	resp, err := s.client.Post(s.url, writer.FormDataContentType(), &body)
	if err != nil {
		return "", fmt.Errorf("ocr service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ocr service returned status %d", resp.StatusCode)
	}

	var data ocrResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("ocr service returned malformed response: %w", err)
	}

	return strings.ReplaceAll(data.Text, "\n", " "), nil
}
