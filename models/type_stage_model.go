package models

import "time"

type TypeStage struct {
	TypeStageID     uint    `gorm:"primaryKey;autoIncrement" json:"type_stage_id"`
	LibTypeStageAra *string `gorm:"size:255" json:"lib_type_stage_ara"`
	LibTypeStageFr  string  `gorm:"size:255;not null" json:"lib_type_stage_fr"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TypeStage) TableName() string { return "type_stages" }
