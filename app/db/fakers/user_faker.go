package fakers

import (
	"log"

	"github.com/go-faker/faker/v4"
	"github.com/quintory/storefront/app/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func UserFaker(db *gorm.DB) *models.User {
	digest, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash demo password:", err)
	}

	return &models.User{
		FirstName:      faker.FirstName(),
		LastName:       faker.LastName(),
		Email:          faker.Email(),
		PasswordDigest: string(digest),
	}
}
