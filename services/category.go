package services

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nmercier/bistro-site-backend/errs"
	"github.com/nmercier/bistro-site-backend/models"
)

// CategoryService manages the selectable tag values for dishes. Deleting a
// category never touches existing dish tags; tags are copied strings.
type CategoryService struct {
	repo   CategoryRepository
	logger zerolog.Logger
}

func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{
		repo:   repo,
		logger: log.With().Str("service", "category").Logger(),
	}
}

func (s *CategoryService) List() ([]models.Category, error) {
	categories, err := s.repo.FindAllByName()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "categories", err)
	}
	return categories, nil
}

func (s *CategoryService) Create(name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewMissingRequiredFieldError("name")
	}

	category := models.Category{Name: name}
	if err := s.repo.Create(&category); err != nil {
		return nil, errs.NewDatabaseError("create", "category", err)
	}
	return &category, nil
}

func (s *CategoryService) Update(id uint, name string) (*models.Category, error) {
	category, err := s.repo.FindByID(id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "category", err)
	}
	if category == nil {
		return nil, errs.NewNotFound("category")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewMissingRequiredFieldError("name")
	}

	category.Name = name
	if err := s.repo.Update(category); err != nil {
		return nil, errs.NewDatabaseError("update", "category", err)
	}
	return category, nil
}

func (s *CategoryService) Delete(id uint) error {
	category, err := s.repo.FindByID(id)
	if err != nil {
		return errs.NewDatabaseError("find", "category", err)
	}
	if category == nil {
		return errs.NewNotFound("category")
	}
	if err := s.repo.Delete(id); err != nil {
		return errs.NewDatabaseError("delete", "category", err)
	}
	return nil
}
