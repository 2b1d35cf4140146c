package models

import "gorm.io/gorm"

// AutoMigrate creates or updates the five content tables plus dish tags.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Dish{},
		&DishTag{},
		&Event{},
		&Side{},
		&Category{},
		&WeeklyMenu{},
	)
}
