package database

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/nmercier/bistro-site-backend/models"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) *EventRepo {
	return &EventRepo{db}
}

// FindAll returns all events ordered by date ascending.
func (r *EventRepo) FindAll() ([]models.Event, error) {
	var events []models.Event
	err := r.db.Order("date asc").Find(&events).Error
	return events, err
}

// FindUpcoming returns events on or after the given date, ascending.
func (r *EventRepo) FindUpcoming(from time.Time) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Where("date >= ?", from).Order("date asc").Find(&events).Error
	return events, err
}

func (r *EventRepo) FindByID(id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepo) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *EventRepo) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

func (r *EventRepo) Delete(id uint) error {
	return r.db.Delete(&models.Event{}, id).Error
}
