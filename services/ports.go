package services

import (
	"context"
	"time"

	"github.com/nmercier/bistro-site-backend/models"
	"github.com/nmercier/bistro-site-backend/storage"
)

// Consumed interfaces. The database package provides the repositories and
// storage.S3Store provides the asset store; tests substitute in-memory fakes.

type DishRepository interface {
	FindAllByPosition() ([]models.Dish, error)
	FindByID(id uint) (*models.Dish, error)
	Create(dish *models.Dish) error
	Update(dish *models.Dish) error
	Delete(id uint) error
}

type EventRepository interface {
	FindAll() ([]models.Event, error)
	FindUpcoming(from time.Time) ([]models.Event, error)
	FindByID(id uint) (*models.Event, error)
	Create(event *models.Event) error
	Update(event *models.Event) error
	Delete(id uint) error
}

type MenuRepository interface {
	FindAll() ([]models.WeeklyMenu, error)
	FindCurrent() (*models.WeeklyMenu, error)
	Create(menu *models.WeeklyMenu) error
	Delete(id uint) error
}

type SideRepository interface {
	FindAllByCategory() ([]models.Side, error)
	FindByID(id uint) (*models.Side, error)
	Create(side *models.Side) error
	Update(side *models.Side) error
	Delete(id uint) error
}

type CategoryRepository interface {
	FindAllByName() ([]models.Category, error)
	FindByID(id uint) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(id uint) error
}

// AssetStore uploads binary payloads to durable URLs and deletes them again.
// Delete must treat an already-missing asset as success.
type AssetStore interface {
	Upload(ctx context.Context, folder string, obj storage.Object) (storage.Asset, error)
	Delete(ctx context.Context, fileURL string) error
}
