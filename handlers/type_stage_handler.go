package handlers

import (
	"github.com/alphadev-tn/stage_manager/models"
	"github.com/alphadev-tn/stage_manager/repository"
)

type TypeStageHandler struct {
	crudHandler[models.TypeStage]
}

func NewTypeStageHandler(repo *repository.CRUD[models.TypeStage]) *TypeStageHandler {
	return &TypeStageHandler{crudHandler[models.TypeStage]{
		repo: repo,
		cfg:  crudConfig{display: "TypeStage", plural: "type stages", param: "typeStageId"},
		idOf: func(e *models.TypeStage) interface{} { return e.TypeStageID },
	}}
}
