package handlers

import (
	"errors"
	"fmt"

	"github.com/alphadev-tn/stage_manager/repository"
	"github.com/alphadev-tn/stage_manager/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// crudRepo is what every entity repository satisfies.
type crudRepo[T any] interface {
	ListAll() ([]T, error)
	GetByID(id interface{}) (*T, error)
	Create(entity *T) error
	Update(id interface{}, fields map[string]interface{}) (int64, *T, error)
	Delete(id interface{}) (int64, error)
}

type crudConfig struct {
	display string // "Departement", used in messages
	plural  string // "departements"
	param   string // path parameter name, e.g. "departementId"
}

// crudHandler is the five-verb resource handler every plain entity embeds.
// Lookup misses answer 404, anything else the store rejects answers 400,
// always inside the {success, message, data|error} envelope.
type crudHandler[T any] struct {
	repo crudRepo[T]
	cfg  crudConfig
	idOf func(*T) interface{}
}

func (h *crudHandler[T]) GetAll(c *fiber.Ctx) error {
	entities, err := h.repo.ListAll()
	if err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Contact your administrator", err)
	}
	return utils.JsonOK(c, "Get all "+h.cfg.plural, entities)
}

func (h *crudHandler[T]) GetByID(c *fiber.Ctx) error {
	id := c.Params(h.cfg.param)
	entity, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.JsonError(c, fiber.StatusNotFound,
				fmt.Sprintf("%s with id %s not found", h.cfg.display, id), nil)
		}
		return utils.JsonError(c, fiber.StatusBadRequest, "Contact your administrator", err)
	}
	return utils.JsonOK(c, fmt.Sprintf("Get %s with id %s", h.cfg.display, id), entity)
}

func (h *crudHandler[T]) Create(c *fiber.Ctx) error {
	entity := new(T)
	if err := c.BodyParser(entity); err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Cannot parse JSON", err)
	}
	if err := h.repo.Create(entity); err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Contact your administrator", err)
	}
	return utils.JsonCreated(c,
		fmt.Sprintf("New %s with id %v created", h.cfg.display, h.idOf(entity)), entity)
}

func (h *crudHandler[T]) Update(c *fiber.Ctx) error {
	id := c.Params(h.cfg.param)
	fields := map[string]interface{}{}
	if err := c.BodyParser(&fields); err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Cannot parse JSON", err)
	}

	rows, entity, err := h.repo.Update(id, fields)
	if err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Contact your administrator", err)
	}
	if rows == 0 {
		return utils.JsonError(c, fiber.StatusNotFound,
			fmt.Sprintf("%s with id %s not found or no changes made", h.cfg.display, id), nil)
	}
	return utils.JsonOK(c, fmt.Sprintf("%s with id %s updated", h.cfg.display, id), entity)
}

func (h *crudHandler[T]) Delete(c *fiber.Ctx) error {
	id := c.Params(h.cfg.param)
	rows, err := h.repo.Delete(id)
	if err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Contact your administrator", err)
	}
	if rows == 0 {
		return utils.JsonError(c, fiber.StatusNotFound,
			fmt.Sprintf("%s with id %s not found", h.cfg.display, id), nil)
	}
	return utils.JsonOK(c, fmt.Sprintf("%s with id %s deleted", h.cfg.display, id), nil)
}
