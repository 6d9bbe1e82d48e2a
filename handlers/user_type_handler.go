package handlers

import (
	"github.com/alphadev-tn/stage_manager/models"
	"github.com/alphadev-tn/stage_manager/repository"
)

type UserTypeHandler struct {
	crudHandler[models.UserType]
}

func NewUserTypeHandler(repo *repository.CRUD[models.UserType]) *UserTypeHandler {
	return &UserTypeHandler{crudHandler[models.UserType]{
		repo: repo,
		cfg:  crudConfig{display: "UserType", plural: "user types", param: "userTypeId"},
		idOf: func(e *models.UserType) interface{} { return e.UserTypeID },
	}}
}
