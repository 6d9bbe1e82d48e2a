package handlers

import (
	"github.com/alphadev-tn/stage_manager/models"
	"github.com/alphadev-tn/stage_manager/repository"
)

type ClasseHandler struct {
	crudHandler[models.Classe]
}

func NewClasseHandler(repo *repository.CRUD[models.Classe]) *ClasseHandler {
	return &ClasseHandler{crudHandler[models.Classe]{
		repo: repo,
		cfg:  crudConfig{display: "Classe", plural: "classes", param: "classeId"},
		idOf: func(e *models.Classe) interface{} { return e.ClasseID },
	}}
}
