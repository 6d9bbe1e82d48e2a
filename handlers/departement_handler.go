package handlers

import (
	"github.com/alphadev-tn/stage_manager/models"
	"github.com/alphadev-tn/stage_manager/repository"
)

type DepartementHandler struct {
	crudHandler[models.Departement]
}

func NewDepartementHandler(repo *repository.CRUD[models.Departement]) *DepartementHandler {
	return &DepartementHandler{crudHandler[models.Departement]{
		repo: repo,
		cfg:  crudConfig{display: "Departement", plural: "departements", param: "departementId"},
		idOf: func(e *models.Departement) interface{} { return e.DepartementID },
	}}
}
