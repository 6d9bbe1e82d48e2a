package models

import "time"

type NiveauFormation struct {
	NiveauFormationID     uint    `gorm:"primaryKey;autoIncrement" json:"niveau_formation_id"`
	CodeNiveauFormation   string  `gorm:"size:50;not null" json:"code_niveau_formation"`
	LibNiveauFormationAra *string `gorm:"size:255" json:"lib_niveau_formation_ara"`
	LibNiveauFormationFr  string  `gorm:"size:255;not null" json:"lib_niveau_formation_fr"`

	FormationID *uint      `json:"formation_id"`
	Formation   *Formation `gorm:"foreignKey:FormationID" json:"Formation,omitempty"`
	TypeStageID *uint      `json:"type_stage_id"`
	TypeStage   *TypeStage `gorm:"foreignKey:TypeStageID" json:"TypeStage,omitempty"`
	ParcoursID  *uint      `json:"parcours_id"`
	Parcours    *Parcours  `gorm:"foreignKey:ParcoursID" json:"Parcours,omitempty"`

	Classes []Classe `gorm:"foreignKey:NiveauFormationID" json:"Classes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (NiveauFormation) TableName() string { return "niveau_formations" }
