package handlers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alphadev-tn/stage_manager/models"
	"github.com/alphadev-tn/stage_manager/repository"
	"github.com/alphadev-tn/stage_manager/services"
	"github.com/alphadev-tn/stage_manager/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type EtudiantHandler struct {
	crudHandler[models.Etudiant]
	etudiants *repository.EtudiantRepository
	importer  *services.ImportService
}

func NewEtudiantHandler(repo *repository.EtudiantRepository, importer *services.ImportService) *EtudiantHandler {
	return &EtudiantHandler{
		crudHandler: crudHandler[models.Etudiant]{
			repo: repo,
			cfg:  crudConfig{display: "Etudiant", plural: "etudiants", param: "etudiantId"},
			idOf: func(e *models.Etudiant) interface{} { return e.Cin },
		},
		etudiants: repo,
		importer:  importer,
	}
}

// GetClasseEtudiants lists the etudiants of one classe.
func (h *EtudiantHandler) GetClasseEtudiants(c *fiber.Ctx) error {
	classeID, err := c.ParamsInt("classeId")
	if err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Invalid classe id", err)
	}

	etudiants, err := h.etudiants.OfClasse(uint(classeID))
	if err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Contact your administrator", err)
	}
	return utils.JsonOK(c, fmt.Sprintf("Get etudiants of classe with id %d", classeID), etudiants)
}

// Import bulk-creates etudiants from an uploaded spreadsheet, attaching them
// to the classe in the path. The whole batch commits or none of it does, and
// the temporary file is removed on every exit path.
func (h *EtudiantHandler) Import(c *fiber.Ctx) error {
	classeID, err := c.ParamsInt("classeId")
	if err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Invalid classe id", err)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Spreadsheet file is required", err)
	}

	dst := filepath.Join(os.TempDir(), "import-"+uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveFile(file, dst); err != nil {
		return utils.JsonError(c, fiber.StatusInternalServerError, "Failed to store uploaded file", err)
	}
	defer os.Remove(dst)

	count, err := h.importer.ImportEtudiants(dst, uint(classeID))
	if err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Import failed", err)
	}

	return utils.JsonOK(c,
		fmt.Sprintf("Imported %d etudiants into classe %d", count, classeID),
		fiber.Map{"rows_processed": count})
}
