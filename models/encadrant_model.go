package models

import "time"

type Encadrant struct {
	EncadrantID uint    `gorm:"primaryKey;autoIncrement" json:"encadrant_id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Department  string  `gorm:"size:100;not null" json:"department"`
	ContactInfo *string `gorm:"size:100" json:"contact_info"`
	Email       *string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Encadrant) TableName() string { return "encadrants" }
