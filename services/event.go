package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nmercier/bistro-site-backend/errs"
	"github.com/nmercier/bistro-site-backend/models"
	"github.com/nmercier/bistro-site-backend/storage"
)

const eventAssetFolder = "events"

// EventFields carries the editable fields of an event. Dates in the past are
// accepted; the upcoming filter handles them at read time.
type EventFields struct {
	Title       string
	Date        time.Time
	Time        string
	Description string
}

// EventService manages events and their optional image asset lifecycle.
type EventService struct {
	repo   EventRepository
	store  AssetStore
	logger zerolog.Logger
	now    func() time.Time
}

func NewEventService(repo EventRepository, store AssetStore) *EventService {
	return &EventService{
		repo:   repo,
		store:  store,
		logger: log.With().Str("service", "event").Logger(),
		now:    time.Now,
	}
}

func (s *EventService) Create(ctx context.Context, fields EventFields, image *storage.Object) (*models.Event, error) {
	if err := validateEventFields(fields); err != nil {
		return nil, err
	}

	event := models.Event{
		Title:       strings.TrimSpace(fields.Title),
		Date:        fields.Date,
		Time:        strings.TrimSpace(fields.Time),
		Description: strings.TrimSpace(fields.Description),
	}
	if image != nil {
		asset, err := s.store.Upload(ctx, eventAssetFolder, *image)
		if err != nil {
			return nil, err
		}
		event.FileURL = &asset.URL
		event.FileName = &asset.Name
		event.FileType = &asset.ContentType
	}

	if err := s.repo.Create(&event); err != nil {
		return nil, errs.NewDatabaseError("create", "event", err)
	}
	return &event, nil
}

// Update replaces the event's fields. When removeImage is set the stored asset
// is deleted and any newly supplied image is ignored; otherwise a new image
// replaces (and deletes) the old one, and no image leaves the asset untouched.
func (s *EventService) Update(ctx context.Context, id uint, fields EventFields, image *storage.Object, removeImage bool) (*models.Event, error) {
	event, err := s.repo.FindByID(id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "event", err)
	}
	if event == nil {
		return nil, errs.NewNotFound("event")
	}
	if err := validateEventFields(fields); err != nil {
		return nil, err
	}

	switch {
	case removeImage:
		if event.HasAsset() {
			if err := s.store.Delete(ctx, *event.FileURL); err != nil {
				return nil, err
			}
		}
		event.ClearAsset()
	case image != nil:
		if event.HasAsset() {
			if err := s.store.Delete(ctx, *event.FileURL); err != nil {
				return nil, err
			}
		}
		asset, err := s.store.Upload(ctx, eventAssetFolder, *image)
		if err != nil {
			return nil, err
		}
		event.FileURL = &asset.URL
		event.FileName = &asset.Name
		event.FileType = &asset.ContentType
	}

	event.Title = strings.TrimSpace(fields.Title)
	event.Date = fields.Date
	event.Time = strings.TrimSpace(fields.Time)
	event.Description = strings.TrimSpace(fields.Description)

	if err := s.repo.Update(event); err != nil {
		return nil, errs.NewDatabaseError("update", "event", err)
	}
	return event, nil
}

// Delete removes the event and its asset so the store does not accumulate
// orphans.
func (s *EventService) Delete(ctx context.Context, id uint) error {
	event, err := s.repo.FindByID(id)
	if err != nil {
		return errs.NewDatabaseError("find", "event", err)
	}
	if event == nil {
		return errs.NewNotFound("event")
	}

	if event.HasAsset() {
		if err := s.store.Delete(ctx, *event.FileURL); err != nil {
			return err
		}
	}
	if err := s.repo.Delete(id); err != nil {
		return errs.NewDatabaseError("delete", "event", err)
	}
	return nil
}

// List returns events ascending by date. With upcomingOnly, events dated
// before today (caller's clock, day granularity) are excluded.
func (s *EventService) List(upcomingOnly bool) ([]models.Event, error) {
	var (
		events []models.Event
		err    error
	)
	if upcomingOnly {
		now := s.now()
		from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		events, err = s.repo.FindUpcoming(from)
	} else {
		events, err = s.repo.FindAll()
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "events", err)
	}
	return events, nil
}

func validateEventFields(fields EventFields) error {
	if strings.TrimSpace(fields.Title) == "" {
		return errs.NewMissingRequiredFieldError("titre")
	}
	if fields.Date.IsZero() {
		return errs.NewMissingRequiredFieldError("date")
	}
	if strings.TrimSpace(fields.Time) == "" {
		return errs.NewMissingRequiredFieldError("heure")
	}
	if strings.TrimSpace(fields.Description) == "" {
		return errs.NewMissingRequiredFieldError("description")
	}
	return nil
}
