package handlers

import (
	"os"
	"path/filepath"

	"github.com/alphadev-tn/stage_manager/services"
	"github.com/alphadev-tn/stage_manager/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type OcrHandler struct {
	ocr *services.OcrService
}

func NewOcrHandler(ocr *services.OcrService) *OcrHandler {
	return &OcrHandler{ocr: ocr}
}

// OcrImage relays the uploaded image to the external image-to-text service.
// Upstream trouble is the one place that answers 500. The temporary copy is
// removed whatever happens.
func (h *OcrHandler) OcrImage(c *fiber.Ctx) error {
	file, err := c.FormFile("uploaded_doc")
	if err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Image file is required", err)
	}

	dst := filepath.Join(os.TempDir(), "ocr-"+uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveFile(file, dst); err != nil {
		return utils.JsonError(c, fiber.StatusInternalServerError, "Failed to store uploaded file", err)
	}
	defer os.Remove(dst)

	text, err := h.ocr.ExtractText(dst)
	if err != nil {
		return utils.JsonError(c, fiber.StatusInternalServerError, "Error calling OCR service", err)
	}

	return utils.JsonOK(c, "Processing ocr image", text)
}
