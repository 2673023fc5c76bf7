package fakers

import (
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/quintory/storefront/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func ProductFaker(db *gorm.DB, category *models.Category) *models.Product {
	title := faker.Word() + " " + faker.Word()

	return &models.Product{
		CategoryID:  category.ID,
		Title:       title,
		Slug:        uniqueSlug(title),
		Description: faker.Sentence(),
		Price:       decimal.NewFromFloat(float64(rand.Intn(9000)+100) / 100).Round(2),
		Stock:       rand.Intn(50),
		Available:   true,
	}
}
