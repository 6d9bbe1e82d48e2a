package models

import "time"

type Classe struct {
	ClasseID     uint    `gorm:"primaryKey;autoIncrement" json:"classe_id"`
	CodeClasse   string  `gorm:"size:50;not null" json:"code_classe"`
	LibClasseAra *string `gorm:"size:255" json:"lib_classe_ara"`
	LibClasseFr  string  `gorm:"size:255;not null" json:"lib_classe_fr"`

	NiveauFormationID *uint            `json:"niveau_formation_id"`
	NiveauFormation   *NiveauFormation `gorm:"foreignKey:NiveauFormationID" json:"NiveauFormation,omitempty"`

	// Deleting a classe that still has etudiants is rejected.
	Etudiants []Etudiant `gorm:"foreignKey:ClasseID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"Etudiants,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Classe) TableName() string { return "classes" }
