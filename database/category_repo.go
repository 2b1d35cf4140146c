package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/nmercier/bistro-site-backend/models"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db}
}

// FindAllByName returns all categories ordered by name ascending.
func (r *CategoryRepo) FindAllByName() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name asc").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepo) FindByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepo) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *CategoryRepo) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

func (r *CategoryRepo) Delete(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}
