package repository

import (
	"time"

	"github.com/alphadev-tn/stage_manager/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RefreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(token *models.RefreshToken) error {
	return r.db.Create(token).Error
}

// FindValid returns the stored record only when it is unrevoked and unexpired.
func (r *RefreshTokenRepository) FindValid(token string) (*models.RefreshToken, error) {
	var stored models.RefreshToken
	err := r.db.
		Where("token = ? AND revoked = ? AND expires_at > ?", token, false, time.Now()).
		First(&stored).Error
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *RefreshTokenRepository) Revoke(id uuid.UUID) error {
	return r.db.Model(&models.RefreshToken{}).Where("id = ?", id).Update("revoked", true).Error
}

// PurgeDead removes revoked and expired rows; the cron reaper calls this.
func (r *RefreshTokenRepository) PurgeDead() (int64, error) {
	result := r.db.
		Where("revoked = ? OR expires_at <= ?", true, time.Now()).
		Delete(&models.RefreshToken{})
	return result.RowsAffected, result.Error
}
