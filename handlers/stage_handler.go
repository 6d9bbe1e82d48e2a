package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alphadev-tn/stage_manager/models"
	"github.com/alphadev-tn/stage_manager/repository"
	"github.com/alphadev-tn/stage_manager/utils"
	"github.com/gofiber/fiber/v2"
)

type StageHandler struct {
	stages *repository.StageRepository
}

func NewStageHandler(stages *repository.StageRepository) *StageHandler {
	return &StageHandler{stages: stages}
}

type StageRequest struct {
	StartDate         *string  `json:"start_date"`
	EndDate           *string  `json:"end_date"`
	Status            *string  `json:"status"`
	Evaluation        *string  `json:"evaluation"`
	ClasseID          *uint    `json:"classe_id"`
	NiveauFormationID *uint    `json:"niveau_formation_id"`
	ProjectID         *uint    `json:"project_id"`
	EncadrantID       *uint    `json:"encadrant_id"`
	Etudiants         []string `json:"etudiants"`
}

func (h *StageHandler) GetAll(c *fiber.Ctx) error {
	stages, err := h.stages.ListWithEtudiants()
	if err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Contact your administrator", err)
	}
	return utils.JsonOK(c, "Get all stages", stages)
}

func (h *StageHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("stageId")
	stage, err := h.stages.GetWithEtudiants(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.JsonError(c, fiber.StatusNotFound,
				fmt.Sprintf("Stage with id %s not found", id), nil)
		}
		return utils.JsonError(c, fiber.StatusBadRequest, "Contact your administrator", err)
	}
	return utils.JsonOK(c, fmt.Sprintf("Get stage with id %s", id), stage)
}

// Create inserts the stage and its roster in one transaction; a bad cin
// rolls back the stage row as well.
func (h *StageHandler) Create(c *fiber.Ctx) error {
	var req StageRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Cannot parse JSON", err)
	}

	stage := models.Stage{
		Status:            req.Status,
		Evaluation:        req.Evaluation,
		ClasseID:          req.ClasseID,
		NiveauFormationID: req.NiveauFormationID,
		ProjectID:         req.ProjectID,
		EncadrantID:       req.EncadrantID,
	}

	var err error
	if stage.StartDate, err = parseOptionalDate(req.StartDate); err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Invalid start_date", err)
	}
	if stage.EndDate, err = parseOptionalDate(req.EndDate); err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Invalid end_date", err)
	}

	if err := h.stages.CreateWithRoster(&stage, req.Etudiants); err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Contact your administrator", err)
	}

	created, err := h.stages.GetWithEtudiants(stage.StageID)
	if err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Contact your administrator", err)
	}
	return utils.JsonCreated(c, fmt.Sprintf("New stage with id %d created", stage.StageID), created)
}

// Update patches stage fields and, when an etudiants array is present,
// replaces the whole roster transactionally.
func (h *StageHandler) Update(c *fiber.Ctx) error {
	id := c.Params("stageId")
	fields := map[string]interface{}{}
	if err := c.BodyParser(&fields); err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Cannot parse JSON", err)
	}

	// Date fields get the same validation as Create; a bad value answers
	// "Invalid start_date"/"Invalid end_date" instead of a store error.
	for _, key := range []string{"start_date", "end_date"} {
		raw, ok := fields[key]
		if !ok || raw == nil {
			continue
		}
		value, ok := raw.(string)
		if !ok {
			return utils.JsonError(c, fiber.StatusBadRequest, "Invalid "+key, nil)
		}
		parsed, err := parseOptionalDate(&value)
		if err != nil {
			return utils.JsonError(c, fiber.StatusBadRequest, "Invalid "+key, err)
		}
		if parsed == nil {
			fields[key] = nil
		} else {
			fields[key] = *parsed
		}
	}

	var cins []string
	if raw, ok := fields["etudiants"]; ok {
		list, ok := raw.([]interface{})
		if !ok {
			return utils.JsonError(c, fiber.StatusBadRequest, "etudiants must be an array of cins", nil)
		}
		cins = make([]string, 0, len(list))
		for _, v := range list {
			cin, ok := v.(string)
			if !ok {
				return utils.JsonError(c, fiber.StatusBadRequest, "etudiants must be an array of cins", nil)
			}
			cins = append(cins, cin)
		}
	}

	rows, err := h.stages.UpdateWithRoster(id, fields, cins)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.JsonError(c, fiber.StatusNotFound,
				fmt.Sprintf("Stage with id %s not found or no changes made", id), nil)
		}
		return utils.JsonError(c, fiber.StatusBadRequest, "Contact your administrator", err)
	}
	if rows == 0 {
		return utils.JsonError(c, fiber.StatusNotFound,
			fmt.Sprintf("Stage with id %s not found or no changes made", id), nil)
	}

	updated, err := h.stages.GetWithEtudiants(id)
	if err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Contact your administrator", err)
	}
	return utils.JsonOK(c, fmt.Sprintf("Stage with id %s updated", id), updated)
}

func (h *StageHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("stageId")
	rows, err := h.stages.Delete(id)
	if err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Contact your administrator", err)
	}
	if rows == 0 {
		return utils.JsonError(c, fiber.StatusNotFound,
			fmt.Sprintf("Stage with id %s not found", id), nil)
	}
	return utils.JsonOK(c, fmt.Sprintf("Stage with id %s deleted", id), nil)
}

// GetFormatted returns the stage flattened together with numbered
// etudiant1_cin, etudiant2_cin, ... entries, the shape the reporting
// front-end consumes.
func (h *StageHandler) GetFormatted(c *fiber.Ctx) error {
	id := c.Params("stageId")
	stage, err := h.stages.GetWithEtudiants(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.JsonError(c, fiber.StatusNotFound,
				fmt.Sprintf("Stage with id %s not found", id), nil)
		}
		return utils.JsonError(c, fiber.StatusBadRequest, "Contact your administrator", err)
	}

	roster, err := h.stages.RosterOf(id)
	if err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Contact your administrator", err)
	}

	encoded, err := json.Marshal(stage)
	if err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Contact your administrator", err)
	}
	data := map[string]interface{}{}
	if err := json.Unmarshal(encoded, &data); err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Contact your administrator", err)
	}
	for i, link := range roster {
		data[fmt.Sprintf("etudiant%d_cin", i+1)] = link.Etudiant
	}

	return utils.JsonOK(c, fmt.Sprintf("Get stage with id %s formatted", id), data)
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := utils.ParseDate(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
