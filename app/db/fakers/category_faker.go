package fakers

import (
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/quintory/storefront/app/models"
	"gorm.io/gorm"
)

func CategoryFaker(db *gorm.DB, name string) *models.Category {
	return &models.Category{
		Name: name,
		Slug: slug.Make(name),
	}
}

// used to keep generated slugs unique across runs
func uniqueSlug(base string) string {
	return slug.Make(base + "-" + uuid.NewString()[:6])
}
