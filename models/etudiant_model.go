package models

import "time"

// Etudiant is keyed by the national identity number (cin), never a surrogate id.
type Etudiant struct {
	Cin      string     `gorm:"primaryKey;size:20" json:"cin"`
	Name     string     `gorm:"size:100;not null" json:"name"`
	Email    string     `gorm:"size:100;not null" json:"email"`
	DteNaiss *time.Time `json:"dte_naiss"`
	PhoneNbr *string    `gorm:"size:20" json:"phone_nbr"`

	ClasseID *uint   `json:"classe_id"`
	Classe   *Classe `gorm:"foreignKey:ClasseID" json:"Classe,omitempty"`

	EtudiantStages []EtudiantStage `gorm:"foreignKey:Cin;references:Cin;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Etudiant) TableName() string { return "etudiants" }
