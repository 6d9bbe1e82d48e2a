package handlers

import (
	"github.com/alphadev-tn/stage_manager/models"
	"github.com/alphadev-tn/stage_manager/repository"
)

type ProjectHandler struct {
	crudHandler[models.Project]
}

func NewProjectHandler(repo *repository.CRUD[models.Project]) *ProjectHandler {
	return &ProjectHandler{crudHandler[models.Project]{
		repo: repo,
		cfg:  crudConfig{display: "Project", plural: "projects", param: "projectId"},
		idOf: func(e *models.Project) interface{} { return e.ProjectID },
	}}
}
