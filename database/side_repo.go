package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/nmercier/bistro-site-backend/models"
)

type SideRepo struct {
	db *gorm.DB
}

func NewSideRepo(db *gorm.DB) *SideRepo {
	return &SideRepo{db}
}

// FindAllByCategory returns all sides grouped by category in a stable order.
func (r *SideRepo) FindAllByCategory() ([]models.Side, error) {
	var sides []models.Side
	err := r.db.Order("category asc, id asc").Find(&sides).Error
	return sides, err
}

func (r *SideRepo) FindByID(id uint) (*models.Side, error) {
	var side models.Side
	err := r.db.First(&side, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &side, nil
}

func (r *SideRepo) Create(side *models.Side) error {
	return r.db.Create(side).Error
}

func (r *SideRepo) Update(side *models.Side) error {
	return r.db.Save(side).Error
}

func (r *SideRepo) Delete(id uint) error {
	return r.db.Delete(&models.Side{}, id).Error
}
