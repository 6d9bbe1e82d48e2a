package models

import "time"

type UserType struct {
	UserTypeID  uint   `gorm:"primaryKey;autoIncrement" json:"user_type_id"`
	LibUserType string `gorm:"size:100;not null" json:"lib_user_type"`

	Users []User `gorm:"foreignKey:UserTypeID" json:"Users,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserType) TableName() string { return "user_types" }
