package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nmercier/bistro-site-backend/errs"
	"github.com/nmercier/bistro-site-backend/models"
	"github.com/nmercier/bistro-site-backend/storage"
)

const (
	menuAssetFolder = "menus"
	menuContentType = "application/pdf"
)

// MenuService keeps the weekly menu a single-slot value: every successful
// upload removes all prior rows and assets before inserting the new one.
type MenuService struct {
	repo   MenuRepository
	store  AssetStore
	logger zerolog.Logger
}

func NewMenuService(repo MenuRepository, store AssetStore) *MenuService {
	return &MenuService{
		repo:   repo,
		store:  store,
		logger: log.With().Str("service", "menu").Logger(),
	}
}

// Upload validates the file is a PDF before any side effect, sweeps every
// existing menu row (and asset), then stores the new file and inserts its row.
func (s *MenuService) Upload(ctx context.Context, file storage.Object) (*models.WeeklyMenu, error) {
	if len(file.Data) == 0 {
		return nil, errs.NewMissingRequiredFieldError("file")
	}
	if file.ContentType != menuContentType {
		return nil, errs.NewUnsupportedMediaTypeError(file.ContentType, []string{menuContentType})
	}

	existing, err := s.repo.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "menus", err)
	}
	for i := range existing {
		if existing[i].FileURL != "" {
			if err := s.store.Delete(ctx, existing[i].FileURL); err != nil {
				return nil, err
			}
		}
		if err := s.repo.Delete(existing[i].ID); err != nil {
			return nil, errs.NewDatabaseError("delete", "menu", err)
		}
	}

	asset, err := s.store.Upload(ctx, menuAssetFolder, file)
	if err != nil {
		return nil, err
	}

	menu := models.WeeklyMenu{
		FileURL:  asset.URL,
		FileName: asset.Name,
		FileType: asset.ContentType,
	}
	if err := s.repo.Create(&menu); err != nil {
		return nil, errs.NewDatabaseError("create", "menu", err)
	}

	s.logger.Info().Str("url", menu.FileURL).Msg("weekly menu replaced")
	return &menu, nil
}

// GetCurrent returns the current menu, or nil when none has been uploaded.
// No menu is an empty state, not an error.
func (s *MenuService) GetCurrent() (*models.WeeklyMenu, error) {
	menu, err := s.repo.FindCurrent()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "menu", err)
	}
	return menu, nil
}
