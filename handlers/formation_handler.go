package handlers

import (
	"github.com/alphadev-tn/stage_manager/models"
	"github.com/alphadev-tn/stage_manager/repository"
)

type FormationHandler struct {
	crudHandler[models.Formation]
}

func NewFormationHandler(repo *repository.CRUD[models.Formation]) *FormationHandler {
	return &FormationHandler{crudHandler[models.Formation]{
		repo: repo,
		cfg:  crudConfig{display: "Formation", plural: "formations", param: "formationId"},
		idOf: func(e *models.Formation) interface{} { return e.FormationID },
	}}
}
