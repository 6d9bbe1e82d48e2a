package routes

import (
	"github.com/alphadev-tn/stage_manager/handlers"
	"github.com/alphadev-tn/stage_manager/middleware"
	"github.com/gofiber/fiber/v2"
)

// resourceHandler is the five-verb surface every entity handler exposes.
type resourceHandler interface {
	GetAll(c *fiber.Ctx) error
	GetByID(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

// registerResource wires the standard five routes under path. Reads are
// open; every mutation sits behind the access-token check.
func registerResource(api fiber.Router, path, param string, h resourceHandler) {
	group := api.Group(path)
	group.Get("/", h.GetAll)
	group.Get("/:"+param, h.GetByID)
	group.Post("/", middleware.Protected(), h.Create)
	group.Put("/:"+param, middleware.Protected(), h.Update)
	group.Delete("/:"+param, middleware.Protected(), h.Delete)
}

func RegisterUserRoutes(api fiber.Router, h *handlers.UserHandler) {
	registerResource(api, "/users", "userId", h)
}

func RegisterUserTypeRoutes(api fiber.Router, h *handlers.UserTypeHandler) {
	registerResource(api, "/user_types", "userTypeId", h)
}

func RegisterDepartementRoutes(api fiber.Router, h *handlers.DepartementHandler) {
	registerResource(api, "/departements", "departementId", h)
}

func RegisterAnneeUniversitaireRoutes(api fiber.Router, h *handlers.AnneeUniversitaireHandler) {
	registerResource(api, "/annee_universitaire", "anneeId", h)
}

func RegisterFormationRoutes(api fiber.Router, h *handlers.FormationHandler) {
	registerResource(api, "/formations", "formationId", h)
}

func RegisterParcoursRoutes(api fiber.Router, h *handlers.ParcoursHandler) {
	registerResource(api, "/parcours", "parcoursId", h)
}

func RegisterTypeStageRoutes(api fiber.Router, h *handlers.TypeStageHandler) {
	registerResource(api, "/type_stages", "typeStageId", h)
}

func RegisterNiveauFormationRoutes(api fiber.Router, h *handlers.NiveauFormationHandler) {
	registerResource(api, "/niveau_formation", "niveauFormationId", h)
}

func RegisterClasseRoutes(api fiber.Router, h *handlers.ClasseHandler) {
	registerResource(api, "/classes", "classeId", h)
}

func RegisterOrganismeRoutes(api fiber.Router, h *handlers.OrganismeHandler) {
	registerResource(api, "/organismes", "organismeId", h)
}

func RegisterProjectRoutes(api fiber.Router, h *handlers.ProjectHandler) {
	registerResource(api, "/projects", "projectId", h)
}

func RegisterEncadrantRoutes(api fiber.Router, h *handlers.EncadrantHandler) {
	registerResource(api, "/encadrant", "encadrantId", h)
}

func RegisterEtudiantStageRoutes(api fiber.Router, h *handlers.EtudiantStageHandler) {
	registerResource(api, "/etudiantStages", "etudiantStageId", h)
}
