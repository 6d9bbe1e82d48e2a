package handlers

import (
	"github.com/alphadev-tn/stage_manager/models"
	"github.com/alphadev-tn/stage_manager/repository"
)

type OrganismeHandler struct {
	crudHandler[models.Organisme]
}

func NewOrganismeHandler(repo *repository.CRUD[models.Organisme]) *OrganismeHandler {
	return &OrganismeHandler{crudHandler[models.Organisme]{
		repo: repo,
		cfg:  crudConfig{display: "Organisme", plural: "organismes", param: "organismeId"},
		idOf: func(e *models.Organisme) interface{} { return e.OrganismeID },
	}}
}
