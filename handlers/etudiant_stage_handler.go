package handlers

import (
	"github.com/alphadev-tn/stage_manager/models"
	"github.com/alphadev-tn/stage_manager/repository"
)

type EtudiantStageHandler struct {
	crudHandler[models.EtudiantStage]
}

func NewEtudiantStageHandler(repo *repository.CRUD[models.EtudiantStage]) *EtudiantStageHandler {
	return &EtudiantStageHandler{crudHandler[models.EtudiantStage]{
		repo: repo,
		cfg:  crudConfig{display: "EtudiantStage", plural: "etudiant stages", param: "etudiantStageId"},
		idOf: func(e *models.EtudiantStage) interface{} { return e.EtudiantStageID },
	}}
}
