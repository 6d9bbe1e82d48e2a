package handlers

import (
	"github.com/alphadev-tn/stage_manager/models"
	"github.com/alphadev-tn/stage_manager/repository"
)

type EncadrantHandler struct {
	crudHandler[models.Encadrant]
}

func NewEncadrantHandler(repo *repository.CRUD[models.Encadrant]) *EncadrantHandler {
	return &EncadrantHandler{crudHandler[models.Encadrant]{
		repo: repo,
		cfg:  crudConfig{display: "Encadrant", plural: "encadrants", param: "encadrantId"},
		idOf: func(e *models.Encadrant) interface{} { return e.EncadrantID },
	}}
}
