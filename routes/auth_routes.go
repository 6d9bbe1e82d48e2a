package routes

import (
	"github.com/alphadev-tn/stage_manager/handlers"
	"github.com/gofiber/fiber/v2"
)

func RegisterAuthRoutes(api fiber.Router, h *handlers.AuthHandler) {
	api.Post("/login", h.Login)
	api.Post("/login/refresh", h.Refresh)
	api.Post("/login/logout", h.Logout)
}
