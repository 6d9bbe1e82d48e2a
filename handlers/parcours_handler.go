package handlers

import (
	"github.com/alphadev-tn/stage_manager/models"
	"github.com/alphadev-tn/stage_manager/repository"
)

type ParcoursHandler struct {
	crudHandler[models.Parcours]
}

func NewParcoursHandler(repo *repository.CRUD[models.Parcours]) *ParcoursHandler {
	return &ParcoursHandler{crudHandler[models.Parcours]{
		repo: repo,
		cfg:  crudConfig{display: "Parcours", plural: "parcours", param: "parcoursId"},
		idOf: func(e *models.Parcours) interface{} { return e.ParcoursID },
	}}
}
