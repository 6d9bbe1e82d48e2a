package routes

import (
	"github.com/alphadev-tn/stage_manager/handlers"
	"github.com/alphadev-tn/stage_manager/middleware"
	"github.com/gofiber/fiber/v2"
)

func RegisterStageRoutes(api fiber.Router, h *handlers.StageHandler) {
	group := api.Group("/stages")
	group.Get("/", h.GetAll)
	group.Get("/formatted/:stageId", h.GetFormatted)
	group.Get("/:stageId", h.GetByID)
	group.Post("/", middleware.Protected(), h.Create)
	group.Put("/:stageId", middleware.Protected(), h.Update)
	group.Delete("/:stageId", middleware.Protected(), h.Delete)
}
