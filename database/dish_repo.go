package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/nmercier/bistro-site-backend/models"
)

type DishRepo struct {
	db *gorm.DB
}

func NewDishRepo(db *gorm.DB) *DishRepo {
	return &DishRepo{db}
}

// FindAllByPosition returns the active dishes ordered by slot position.
func (r *DishRepo) FindAllByPosition() ([]models.Dish, error) {
	var dishes []models.Dish
	err := r.db.Preload("Tags").Order("position asc").Find(&dishes).Error
	return dishes, err
}

// FindByID returns a dish by its ID, or nil when no such row exists.
func (r *DishRepo) FindByID(id uint) (*models.Dish, error) {
	var dish models.Dish
	err := r.db.Preload("Tags").First(&dish, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

// Create inserts a new dish along with its tag rows.
func (r *DishRepo) Create(dish *models.Dish) error {
	return r.db.Create(dish).Error
}

// Update saves an existing dish. Asset reference fields are written as-is, so
// clearing them persists NULLs.
func (r *DishRepo) Update(dish *models.Dish) error {
	return r.db.Save(dish).Error
}

// Delete removes a dish row; its tag rows go with it via the FK cascade.
func (r *DishRepo) Delete(id uint) error {
	return r.db.Delete(&models.Dish{}, id).Error
}
