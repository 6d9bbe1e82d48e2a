package routes

import (
	"github.com/alphadev-tn/stage_manager/handlers"
	"github.com/alphadev-tn/stage_manager/middleware"
	"github.com/gofiber/fiber/v2"
)

// RegisterEtudiantRoutes wires the etudiant resource. The classe roster and
// import routes are registered before /:etudiantId so they are not swallowed
// by the wildcard.
func RegisterEtudiantRoutes(api fiber.Router, h *handlers.EtudiantHandler) {
	group := api.Group("/etudiants")
	group.Get("/", h.GetAll)
	group.Get("/classe/:classeId", h.GetClasseEtudiants)
	group.Get("/:etudiantId", h.GetByID)
	group.Post("/import/:classeId", middleware.Protected(), h.Import)
	group.Post("/", middleware.Protected(), h.Create)
	group.Put("/:etudiantId", middleware.Protected(), h.Update)
	group.Delete("/:etudiantId", middleware.Protected(), h.Delete)
}
