package routes

import (
	"github.com/alphadev-tn/stage_manager/handlers"
	"github.com/alphadev-tn/stage_manager/middleware"
	"github.com/gofiber/fiber/v2"
)

func RegisterOcrRoutes(api fiber.Router, h *handlers.OcrHandler) {
	api.Post("/ocr/image", middleware.Protected(), h.OcrImage)
}
