package repository

import (
	"github.com/alphadev-tn/stage_manager/models"
	"gorm.io/gorm"
)

type EtudiantRepository struct {
	*CRUD[models.Etudiant]
	db *gorm.DB
}

func NewEtudiantRepository(db *gorm.DB) *EtudiantRepository {
	return &EtudiantRepository{
		CRUD: New[models.Etudiant](db, "cin", "Classe"),
		db:   db,
	}
}

// OfClasse lists the etudiants enrolled in one classe.
func (r *EtudiantRepository) OfClasse(classeID uint) ([]models.Etudiant, error) {
	var etudiants []models.Etudiant
	err := r.db.Where("classe_id = ?", classeID).Find(&etudiants).Error
	if err != nil {
		return nil, err
	}
	return etudiants, nil
}
