package models

import "time"

type Departement struct {
	DepartementID     uint    `gorm:"primaryKey;autoIncrement" json:"departement_id"`
	CodeDepartement   string  `gorm:"size:50;not null;unique" json:"code_departement"`
	LibDepartementAra *string `gorm:"size:255" json:"lib_departement_ara"`
	LibDepartementFr  string  `gorm:"size:255;not null" json:"lib_departement_fr"`

	Formations []Formation `gorm:"foreignKey:DepartementID" json:"Formations,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Departement) TableName() string { return "departements" }
