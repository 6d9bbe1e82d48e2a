package handlers

import (
	"github.com/alphadev-tn/stage_manager/models"
	"github.com/alphadev-tn/stage_manager/repository"
)

type NiveauFormationHandler struct {
	crudHandler[models.NiveauFormation]
}

func NewNiveauFormationHandler(repo *repository.CRUD[models.NiveauFormation]) *NiveauFormationHandler {
	return &NiveauFormationHandler{crudHandler[models.NiveauFormation]{
		repo: repo,
		cfg:  crudConfig{display: "NiveauFormation", plural: "niveau formations", param: "niveauFormationId"},
		idOf: func(e *models.NiveauFormation) interface{} { return e.NiveauFormationID },
	}}
}
