package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	FirstName      string `gorm:"size:100;not null"`
	LastName       string `gorm:"size:100"`
	Email          string `gorm:"size:254;not null;uniqueIndex"`
	PasswordDigest string `gorm:"size:255;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
