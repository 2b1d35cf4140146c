package services

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nmercier/bistro-site-backend/errs"
	"github.com/nmercier/bistro-site-backend/models"
)

// SideFields carries the editable fields of a side dish.
type SideFields struct {
	Description string
	Category    string
}

// SideService is plain CRUD over side dishes; no asset lifecycle.
type SideService struct {
	repo   SideRepository
	logger zerolog.Logger
}

func NewSideService(repo SideRepository) *SideService {
	return &SideService{
		repo:   repo,
		logger: log.With().Str("service", "side").Logger(),
	}
}

func (s *SideService) List() ([]models.Side, error) {
	sides, err := s.repo.FindAllByCategory()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "sides", err)
	}
	return sides, nil
}

func (s *SideService) Create(fields SideFields) (*models.Side, error) {
	if err := validateSideFields(fields); err != nil {
		return nil, err
	}

	side := models.Side{
		Description: strings.TrimSpace(fields.Description),
		Category:    fields.Category,
	}
	if err := s.repo.Create(&side); err != nil {
		return nil, errs.NewDatabaseError("create", "side", err)
	}
	return &side, nil
}

func (s *SideService) Update(id uint, fields SideFields) (*models.Side, error) {
	side, err := s.repo.FindByID(id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "side", err)
	}
	if side == nil {
		return nil, errs.NewNotFound("side")
	}
	if err := validateSideFields(fields); err != nil {
		return nil, err
	}

	side.Description = strings.TrimSpace(fields.Description)
	side.Category = fields.Category
	if err := s.repo.Update(side); err != nil {
		return nil, errs.NewDatabaseError("update", "side", err)
	}
	return side, nil
}

func (s *SideService) Delete(id uint) error {
	side, err := s.repo.FindByID(id)
	if err != nil {
		return errs.NewDatabaseError("find", "side", err)
	}
	if side == nil {
		return errs.NewNotFound("side")
	}
	if err := s.repo.Delete(id); err != nil {
		return errs.NewDatabaseError("delete", "side", err)
	}
	return nil
}

func validateSideFields(fields SideFields) error {
	if strings.TrimSpace(fields.Description) == "" {
		return errs.NewMissingRequiredFieldError("description")
	}
	if strings.TrimSpace(fields.Category) == "" {
		return errs.NewMissingRequiredFieldError("category")
	}
	if !models.ValidSideCategory(fields.Category) {
		return errs.NewInvalidFieldError("category", "must be one of salades, soupes, buns, croques")
	}
	return nil
}
