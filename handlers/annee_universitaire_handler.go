package handlers

import (
	"github.com/alphadev-tn/stage_manager/models"
	"github.com/alphadev-tn/stage_manager/repository"
)

type AnneeUniversitaireHandler struct {
	crudHandler[models.AnneeUniversitaire]
}

func NewAnneeUniversitaireHandler(repo *repository.CRUD[models.AnneeUniversitaire]) *AnneeUniversitaireHandler {
	return &AnneeUniversitaireHandler{crudHandler[models.AnneeUniversitaire]{
		repo: repo,
		cfg:  crudConfig{display: "AnneeUniversitaire", plural: "annees universitaires", param: "anneeId"},
		idOf: func(e *models.AnneeUniversitaire) interface{} { return e.AnneeUniversitaireID },
	}}
}
