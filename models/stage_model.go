package models

import "time"

type Stage struct {
	StageID    uint       `gorm:"primaryKey;autoIncrement" json:"stage_id"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
	Status     *string    `gorm:"size:50" json:"status"`
	Evaluation *string    `gorm:"type:text" json:"evaluation"`

	ClasseID          *uint            `json:"classe_id"`
	Classe            *Classe          `gorm:"foreignKey:ClasseID" json:"Classe,omitempty"`
	NiveauFormationID *uint            `json:"niveau_formation_id"`
	NiveauFormation   *NiveauFormation `gorm:"foreignKey:NiveauFormationID" json:"NiveauFormation,omitempty"`
	ProjectID         *uint            `json:"project_id"`
	Project           *Project         `gorm:"foreignKey:ProjectID" json:"Project,omitempty"`
	EncadrantID       *uint            `json:"encadrant_id"`
	Encadrant         *Encadrant       `gorm:"foreignKey:EncadrantID" json:"Encadrant,omitempty"`

	EtudiantStages []EtudiantStage `gorm:"foreignKey:StageID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	// Filled by the repository from the enrollment join, not a mapped column.
	// An empty roster still serializes as an empty list.
	Etudiants []Etudiant `gorm:"-" json:"Etudiants"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Stage) TableName() string { return "stages" }
