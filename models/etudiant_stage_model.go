package models

import "time"

// EtudiantStage links an etudiant to a stage, optionally carrying a grade.
// Rows cascade away with either parent.
type EtudiantStage struct {
	EtudiantStageID uint     `gorm:"primaryKey;autoIncrement" json:"etudiant_stage_id"`
	StageID         uint     `gorm:"not null;index" json:"stage_id"`
	Cin             string   `gorm:"size:20;not null;index" json:"cin"`
	Note            *float64 `json:"note"`
	Remarque        *string  `gorm:"size:255" json:"remarque"`

	Stage    *Stage    `gorm:"foreignKey:StageID" json:"Stage,omitempty"`
	Etudiant *Etudiant `gorm:"foreignKey:Cin;references:Cin" json:"Etudiant,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (EtudiantStage) TableName() string { return "etudiant_stages" }
