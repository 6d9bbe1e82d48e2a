package repository

import (
	"github.com/alphadev-tn/stage_manager/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	*CRUD[models.User]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		CRUD: New[models.User](db, "user_id", "UserType"),
		db:   db,
	}
}

// FindByUsername is the login lookup; usernames are unique.
func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("UserType").Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
