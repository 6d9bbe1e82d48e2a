package models

import "time"

type Organisme struct {
	OrganismeID  uint    `gorm:"primaryKey;autoIncrement" json:"organisme_id"`
	LibOrganisme string  `gorm:"size:255;not null" json:"lib_organisme"`
	Tel          string  `gorm:"size:30;not null" json:"tel"`
	Fax          *string `gorm:"size:30" json:"fax"`
	Adresse      *string `gorm:"size:255" json:"adresse"`
	Email        string  `gorm:"size:100;not null" json:"email"`
	SiteWeb      *string `gorm:"size:255" json:"site_web"`
	Geoloc       *string `gorm:"size:100" json:"geoloc"`

	Projects []Project `gorm:"foreignKey:OrganismeID" json:"Projects,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Organisme) TableName() string { return "organismes" }
