package models

import "time"

type Formation struct {
	FormationID     uint    `gorm:"primaryKey;autoIncrement" json:"formation_id"`
	CodeFormation   string  `gorm:"size:50;not null" json:"code_formation"`
	LibFormationAra *string `gorm:"size:255" json:"lib_formation_ara"`
	LibFormationFr  string  `gorm:"size:255;not null" json:"lib_formation_fr"`

	DepartementID        *uint               `json:"departement_id"`
	Departement          *Departement        `gorm:"foreignKey:DepartementID" json:"Departement,omitempty"`
	AnneeUniversitaireID *uint               `json:"annee_universitaire_id"`
	AnneeUniversitaire   *AnneeUniversitaire `gorm:"foreignKey:AnneeUniversitaireID" json:"AnneeUniversitaire,omitempty"`

	NiveauFormations []NiveauFormation `gorm:"foreignKey:FormationID" json:"NiveauFormations,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Formation) TableName() string { return "formations" }
