package models

import "time"

type AnneeUniversitaire struct {
	AnneeUniversitaireID uint   `gorm:"primaryKey;autoIncrement" json:"annee_universitaire_id"`
	Annee                string `gorm:"column:annee_universitaire;size:9;not null" json:"annee_universitaire"`

	Formations []Formation `gorm:"foreignKey:AnneeUniversitaireID" json:"Formations,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AnneeUniversitaire) TableName() string { return "annee_universitaires" }
