package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/nmercier/bistro-site-backend/models"
)

type MenuRepo struct {
	db *gorm.DB
}

func NewMenuRepo(db *gorm.DB) *MenuRepo {
	return &MenuRepo{db}
}

// FindAll returns every stored menu row. Normally zero or one, but the upload
// path sweeps all of them so a bad state never survives the next upload.
func (r *MenuRepo) FindAll() ([]models.WeeklyMenu, error) {
	var menus []models.WeeklyMenu
	err := r.db.Find(&menus).Error
	return menus, err
}

// FindCurrent returns the most recently created menu, or nil when none exists.
func (r *MenuRepo) FindCurrent() (*models.WeeklyMenu, error) {
	var menu models.WeeklyMenu
	err := r.db.Order("created_at desc").First(&menu).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepo) Create(menu *models.WeeklyMenu) error {
	return r.db.Create(menu).Error
}

func (r *MenuRepo) Delete(id uint) error {
	return r.db.Delete(&models.WeeklyMenu{}, id).Error
}
