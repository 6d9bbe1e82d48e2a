package repository

import (
	"github.com/alphadev-tn/stage_manager/models"
	"gorm.io/gorm"
)

type StageRepository struct {
	*CRUD[models.Stage]
	db *gorm.DB
}

func NewStageRepository(db *gorm.DB) *StageRepository {
	return &StageRepository{
		CRUD: New[models.Stage](db, "stage_id", "NiveauFormation", "Classe", "Encadrant", "Project"),
		db:   db,
	}
}

// attachEtudiants fills Stage.Etudiants for the given stages with two
// queries total: one over the enrollment join for every stage id at once,
// one (via Preload) for the referenced etudiants. Rosters come back
// deduplicated per stage.
func (r *StageRepository) attachEtudiants(stages []*models.Stage) error {
	if len(stages) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(stages))
	for _, s := range stages {
		ids = append(ids, s.StageID)
	}

	var links []models.EtudiantStage
	err := r.db.Preload("Etudiant").Where("stage_id IN ?", ids).Order("cin").Find(&links).Error
	if err != nil {
		return err
	}

	byStage := make(map[uint][]models.Etudiant, len(stages))
	seen := make(map[uint]map[string]bool, len(stages))
	for _, link := range links {
		if link.Etudiant == nil {
			continue
		}
		if seen[link.StageID] == nil {
			seen[link.StageID] = make(map[string]bool)
		}
		if seen[link.StageID][link.Cin] {
			continue
		}
		seen[link.StageID][link.Cin] = true
		byStage[link.StageID] = append(byStage[link.StageID], *link.Etudiant)
	}

	for _, s := range stages {
		s.Etudiants = byStage[s.StageID]
		if s.Etudiants == nil {
			s.Etudiants = []models.Etudiant{}
		}
	}
	return nil
}

// ListWithEtudiants returns every stage with its associations and roster.
func (r *StageRepository) ListWithEtudiants() ([]models.Stage, error) {
	stages, err := r.ListAll()
	if err != nil {
		return nil, err
	}
	refs := make([]*models.Stage, len(stages))
	for i := range stages {
		refs[i] = &stages[i]
	}
	if err := r.attachEtudiants(refs); err != nil {
		return nil, err
	}
	return stages, nil
}

func (r *StageRepository) GetWithEtudiants(id interface{}) (*models.Stage, error) {
	stage, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.attachEtudiants([]*models.Stage{stage}); err != nil {
		return nil, err
	}
	return stage, nil
}

func dedupeCins(cins []string) []string {
	seen := make(map[string]bool, len(cins))
	out := make([]string, 0, len(cins))
	for _, cin := range cins {
		if cin == "" || seen[cin] {
			continue
		}
		seen[cin] = true
		out = append(out, cin)
	}
	return out
}

// CreateWithRoster inserts the stage and one enrollment row per distinct cin
// inside one transaction; a failing enrollment rolls the stage back too.
func (r *StageRepository) CreateWithRoster(stage *models.Stage, cins []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(stage).Error; err != nil {
			return err
		}
		for _, cin := range dedupeCins(cins) {
			link := models.EtudiantStage{StageID: stage.StageID, Cin: cin}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateWithRoster patches the stage fields and, when cins is non-nil,
// replaces the whole roster, all inside one transaction. The identifier is
// stripped from fields before writing.
func (r *StageRepository) UpdateWithRoster(id interface{}, fields map[string]interface{}, cins []string) (int64, error) {
	delete(fields, "stage_id")
	delete(fields, "etudiants")
	delete(fields, "created_at")
	delete(fields, "updated_at")

	var rows int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var stage models.Stage
		if err := tx.First(&stage, "stage_id = ?", id).Error; err != nil {
			return err
		}

		if cins != nil {
			if err := tx.Where("stage_id = ?", stage.StageID).Delete(&models.EtudiantStage{}).Error; err != nil {
				return err
			}
			for _, cin := range dedupeCins(cins) {
				link := models.EtudiantStage{StageID: stage.StageID, Cin: cin}
				if err := tx.Create(&link).Error; err != nil {
					return err
				}
			}
			rows = 1
		}

		if len(fields) > 0 {
			result := tx.Model(&models.Stage{}).Where("stage_id = ?", stage.StageID).Updates(fields)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected > 0 {
				rows = result.RowsAffected
			}
		}
		return nil
	})
	return rows, err
}

// RosterOf returns the enrollment rows of one stage with etudiants loaded.
func (r *StageRepository) RosterOf(stageID interface{}) ([]models.EtudiantStage, error) {
	var links []models.EtudiantStage
	err := r.db.Preload("Etudiant").Where("stage_id = ?", stageID).Order("etudiant_stage_id").Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}
