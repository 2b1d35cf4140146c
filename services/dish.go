package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nmercier/bistro-site-backend/errs"
	"github.com/nmercier/bistro-site-backend/models"
	"github.com/nmercier/bistro-site-backend/storage"
)

// S3 key prefix for dish images.
const dishAssetFolder = "plats"

// DishFields is one dish slot of an admin submission.
type DishFields struct {
	Name        string
	Description string
	Tags        []string
	Image       *storage.Object
}

// DishSubmission replaces the whole active set on every submit. Primary fills
// slot 1 and is required; Secondary fills slot 2 and only counts when both its
// name and description are present.
type DishSubmission struct {
	Primary   DishFields
	Secondary *DishFields
}

// DishService owns the dish-of-the-day slots: at most two dishes, positions
// forming a contiguous prefix starting at 1, each dish owning at most one
// remote image asset.
type DishService struct {
	repo   DishRepository
	store  AssetStore
	logger zerolog.Logger
}

func NewDishService(repo DishRepository, store AssetStore) *DishService {
	return &DishService{
		repo:   repo,
		store:  store,
		logger: log.With().Str("service", "dish").Logger(),
	}
}

// ListActive returns the 0-2 active dishes in position order. An empty result
// is valid and renders as "no dish defined".
func (s *DishService) ListActive() ([]models.Dish, error) {
	dishes, err := s.repo.FindAllByPosition()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "dishes", err)
	}
	return dishes, nil
}

// ReplaceAll discards the current active set (rows and their remote assets)
// and creates the submitted dishes at positions 1 and 2. It is a full replace,
// not a merge: fields not resubmitted are gone. Validation happens before any
// side effect; a failed asset delete aborts before the owning row is touched.
func (s *DishService) ReplaceAll(ctx context.Context, sub DishSubmission) ([]models.Dish, error) {
	if strings.TrimSpace(sub.Primary.Name) == "" {
		return nil, errs.NewMissingRequiredFieldError("nom")
	}
	if strings.TrimSpace(sub.Primary.Description) == "" {
		return nil, errs.NewMissingRequiredFieldError("description")
	}

	existing, err := s.repo.FindAllByPosition()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "dishes", err)
	}
	for i := range existing {
		if err := s.discard(ctx, &existing[i]); err != nil {
			return nil, err
		}
	}

	slots := []DishFields{sub.Primary}
	if s.secondaryComplete(sub.Secondary) {
		slots = append(slots, *sub.Secondary)
	}

	created := make([]models.Dish, 0, len(slots))
	for i, fields := range slots {
		dish := models.Dish{
			Name:        strings.TrimSpace(fields.Name),
			Description: strings.TrimSpace(fields.Description),
			Position:    i + 1,
			Tags:        dishTags(fields.Tags),
		}
		if fields.Image != nil {
			asset, err := s.store.Upload(ctx, dishAssetFolder, *fields.Image)
			if err != nil {
				return nil, err
			}
			dish.FileURL = &asset.URL
			dish.FileName = &asset.Name
			dish.FileType = &asset.ContentType
		}
		if err := s.repo.Create(&dish); err != nil {
			return nil, errs.NewDatabaseError("create", "dish", err)
		}
		created = append(created, dish)
	}

	s.logger.Info().Int("count", len(created)).Msg("active dish set replaced")
	return created, nil
}

// RemoveImage deletes a dish's remote asset and clears its reference fields.
// A dish without an image is a no-op success.
func (s *DishService) RemoveImage(ctx context.Context, id uint) (*models.Dish, error) {
	dish, err := s.repo.FindByID(id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "dish", err)
	}
	if dish == nil {
		return nil, errs.NewNotFound("dish")
	}
	if !dish.HasAsset() {
		return dish, nil
	}

	if err := s.store.Delete(ctx, *dish.FileURL); err != nil {
		return nil, err
	}
	dish.ClearAsset()
	if err := s.repo.Update(dish); err != nil {
		return nil, errs.NewDatabaseError("update", "dish", err)
	}
	return dish, nil
}

// Delete removes a dish and its asset, then compacts the remaining slot so
// positions never leave a gap: deleting slot 1 promotes slot 2.
func (s *DishService) Delete(ctx context.Context, id uint) error {
	dish, err := s.repo.FindByID(id)
	if err != nil {
		return errs.NewDatabaseError("find", "dish", err)
	}
	if dish == nil {
		return errs.NewNotFound("dish")
	}

	if err := s.discard(ctx, dish); err != nil {
		return err
	}

	remaining, err := s.repo.FindAllByPosition()
	if err != nil {
		return errs.NewDatabaseError("find", "dishes", err)
	}
	for i := range remaining {
		if remaining[i].Position != i+1 {
			remaining[i].Position = i + 1
			if err := s.repo.Update(&remaining[i]); err != nil {
				return errs.NewDatabaseError("update", "dish", err)
			}
		}
	}
	return nil
}

// discard deletes the dish's remote asset before its row. A failed store
// delete aborts the discard so the asset reference is never silently lost.
func (s *DishService) discard(ctx context.Context, dish *models.Dish) error {
	if dish.HasAsset() {
		if err := s.store.Delete(ctx, *dish.FileURL); err != nil {
			return err
		}
	}
	if err := s.repo.Delete(dish.ID); err != nil {
		return errs.NewDatabaseError("delete", "dish", err)
	}
	return nil
}

func (s *DishService) secondaryComplete(fields *DishFields) bool {
	return fields != nil &&
		strings.TrimSpace(fields.Name) != "" &&
		strings.TrimSpace(fields.Description) != ""
}

// dishTags builds tag rows from submitted labels, dropping blanks and duplicates.
func dishTags(values []string) []models.DishTag {
	seen := make(map[string]bool, len(values))
	var tags []models.DishTag
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		tags = append(tags, models.DishTag{Value: v})
	}
	return tags
}
