package models

import "time"

type Parcours struct {
	ParcoursID     uint    `gorm:"primaryKey;autoIncrement" json:"parcours_id"`
	CodeParcours   string  `gorm:"size:50;not null" json:"code_parcours"`
	LibParcoursAra *string `gorm:"size:255" json:"lib_parcours_ara"`
	LibParcoursFr  string  `gorm:"size:255;not null" json:"lib_parcours_fr"`

	NiveauFormations []NiveauFormation `gorm:"foreignKey:ParcoursID" json:"NiveauFormations,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Parcours) TableName() string { return "parcours" }
