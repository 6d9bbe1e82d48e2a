package handlers

import (
	"errors"
	"fmt"

	"github.com/alphadev-tn/stage_manager/models"
	"github.com/alphadev-tn/stage_manager/repository"
	"github.com/alphadev-tn/stage_manager/utils"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserHandler struct {
	crudHandler[models.User]
}

func NewUserHandler(repo *repository.UserRepository) *UserHandler {
	return &UserHandler{crudHandler[models.User]{
		repo: repo,
		cfg:  crudConfig{display: "User", plural: "users", param: "userId"},
		idOf: func(e *models.User) interface{} { return e.UserID },
	}}
}

type CreateUserRequest struct {
	Username  string  `json:"username" validate:"required,min=3"`
	Password  string  `json:"password" validate:"required,min=6"`
	Firstname string  `json:"firstname" validate:"required"`
	Lastname  string  `json:"lastname" validate:"required"`
	Email     *string `json:"email" validate:"omitempty,email"`
	UserType  *uint   `json:"user_type"`
}

// Create stores the password as a bcrypt hash, never the plaintext.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Cannot parse JSON", err)
	}
	if err := validate.Struct(req); err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password", err)
	}

	user := models.User{
		Username:   req.Username,
		Password:   string(hashedPassword),
		Firstname:  req.Firstname,
		Lastname:   req.Lastname,
		Email:      req.Email,
		UserTypeID: req.UserType,
	}
	if err := h.repo.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.JsonError(c, fiber.StatusBadRequest, "Username already exists", err)
		}
		return utils.JsonError(c, fiber.StatusBadRequest, "Contact your administrator", err)
	}

	return utils.JsonCreated(c, fmt.Sprintf("New user with id %d created", user.UserID), user)
}

// Update behaves like the generic sparse patch except that a supplied
// password is hashed before it reaches the store.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id := c.Params(h.cfg.param)
	fields := map[string]interface{}{}
	if err := c.BodyParser(&fields); err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Cannot parse JSON", err)
	}

	if raw, ok := fields["password"]; ok {
		password, _ := raw.(string)
		if password == "" {
			delete(fields, "password")
		} else {
			hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return utils.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password", err)
			}
			fields["password"] = string(hashed)
		}
	}

	rows, user, err := h.repo.Update(id, fields)
	if err != nil {
		return utils.JsonError(c, fiber.StatusBadRequest, "Contact your administrator", err)
	}
	if rows == 0 {
		return utils.JsonError(c, fiber.StatusNotFound,
			fmt.Sprintf("User with id %s not found or no changes made", id), nil)
	}
	return utils.JsonOK(c, fmt.Sprintf("User with id %s updated", id), user)
}
