package models

import "time"

type User struct {
	UserID    uint    `gorm:"primaryKey;autoIncrement" json:"user_id"`
	Username  string  `gorm:"size:50;not null;unique" json:"username"`
	Password  string  `gorm:"size:255;not null" json:"-"`
	Firstname string  `gorm:"size:50;not null" json:"firstname"`
	Lastname  string  `gorm:"size:50;not null" json:"lastname"`
	Email     *string `gorm:"size:50" json:"email"`

	UserTypeID *uint     `gorm:"column:user_type" json:"user_type"`
	UserType   *UserType `gorm:"foreignKey:UserTypeID;references:UserTypeID" json:"UserType,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
