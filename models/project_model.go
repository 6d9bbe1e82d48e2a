package models

import "time"

type Project struct {
	ProjectID   uint    `gorm:"primaryKey;autoIncrement" json:"project_id"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Description *string `gorm:"type:text" json:"description"`
	Status      *string `gorm:"size:50" json:"status"`

	OrganismeID *uint      `json:"organisme_id"`
	Organisme   *Organisme `gorm:"foreignKey:OrganismeID" json:"Organisme,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Project) TableName() string { return "projects" }
