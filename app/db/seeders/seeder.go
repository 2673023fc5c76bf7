package seeders

import (
	"github.com/quintory/storefront/app/db/fakers"
	"github.com/quintory/storefront/app/models"
	"gorm.io/gorm"
)

var categoryNames = []string{"Books", "Clothing", "Electronics", "Home", "Toys"}

const productsPerCategory = 6

// DBSeed fills the catalog with demo data so the storefront renders
// something out of the box. Re-running is safe: categories are matched
// by slug and only missing products are added.
func DBSeed(db *gorm.DB) error {
	user := fakers.UserFaker(db)
	if err := db.FirstOrCreate(user, models.User{Email: user.Email}).Error; err != nil {
		return err
	}

	for _, name := range categoryNames {
		category := fakers.CategoryFaker(db, name)
		if err := db.FirstOrCreate(category, models.Category{Slug: category.Slug}).Error; err != nil {
			return err
		}

		var count int64
		if err := db.Model(&models.Product{}).Where("category_id = ?", category.ID).Count(&count).Error; err != nil {
			return err
		}

		for i := int(count); i < productsPerCategory; i++ {
			product := fakers.ProductFaker(db, category)
			if err := db.Create(product).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
