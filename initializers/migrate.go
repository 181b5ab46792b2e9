package initializers

import (
	"socialnet/models"
)

// Categories are managed outside the app, so a fresh database gets a
// starter set.
var defaultCategories = []string{"General", "News", "Sports", "Music", "Travel"}

func Migrate() error {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Category{},
		&models.Tag{},
		&models.Post{},
		&models.Comment{},
	)
	if err != nil {
		return err
	}
	return seedCategories()
}

func seedCategories() error {
	var count int64
	if err := DB.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, name := range defaultCategories {
		if err := DB.Create(&models.Category{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
