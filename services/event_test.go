package services

import (
	"context"
	"testing"
	"time"

	"github.com/nmercier/bistro-site-backend/errs"
	"github.com/nmercier/bistro-site-backend/storage"
)

func newEventServiceForTest(now time.Time) (*EventService, *mockEventRepo, *mockStore) {
	repo := newMockEventRepo()
	store := newMockStore()
	svc := NewEventService(repo, store)
	svc.now = func() time.Time { return now }
	return svc, repo, store
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validEventFields(date time.Time) EventFields {
	return EventFields{
		Title:       "Soirée jazz",
		Date:        date,
		Time:        "19h30",
		Description: "Concert live",
	}
}

func TestCreateEvent(t *testing.T) {
	today := day(2026, time.March, 10)
	svc, repo, store := newEventServiceForTest(today)

	event, err := svc.Create(context.Background(), validEventFields(day(2026, time.March, 20)),
		&storage.Object{Data: []byte("img"), Filename: "affiche.png", ContentType: "image/png"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if event.ID == 0 {
		t.Error("event not persisted")
	}
	if !event.HasAsset() {
		t.Error("image not attached")
	}
	if len(store.uploads) != 1 {
		t.Errorf("uploads = %d, want 1", len(store.uploads))
	}

	stored, _ := repo.FindByID(event.ID)
	if stored == nil {
		t.Fatal("event missing from repo")
	}
}

func TestCreateEventValidation(t *testing.T) {
	svc, _, store := newEventServiceForTest(day(2026, time.March, 10))
	date := day(2026, time.March, 20)

	tests := []struct {
		name   string
		fields EventFields
		field  string
	}{
		{"missing title", EventFields{Date: date, Time: "19h", Description: "d"}, "titre"},
		{"missing date", EventFields{Title: "t", Time: "19h", Description: "d"}, "date"},
		{"missing time", EventFields{Title: "t", Date: date, Description: "d"}, "heure"},
		{"missing description", EventFields{Title: "t", Date: date, Time: "19h"}, "description"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.fields,
				&storage.Object{Data: []byte("img"), Filename: "a.png", ContentType: "image/png"})
			if !errs.IsMissingRequiredFieldError(err) {
				t.Fatalf("expected missing-field error, got %v", err)
			}
		})
	}

	// Validation failures must not reach the store.
	if len(store.uploads) != 0 {
		t.Errorf("uploads on failed validation: %d", len(store.uploads))
	}
}

func TestListUpcomingFiltersPastEvents(t *testing.T) {
	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)
	svc, _, _ := newEventServiceForTest(now)

	past, _ := svc.Create(context.Background(), validEventFields(day(2026, time.March, 1)), nil)
	today, _ := svc.Create(context.Background(), validEventFields(day(2026, time.March, 10)), nil)
	future, _ := svc.Create(context.Background(), validEventFields(day(2026, time.April, 2)), nil)

	upcoming, err := svc.List(true)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(upcoming) != 2 {
		t.Fatalf("upcoming = %d, want 2", len(upcoming))
	}
	// Today's midnight-dated event survives the afternoon clock.
	if upcoming[0].ID != today.ID || upcoming[1].ID != future.ID {
		t.Errorf("unexpected upcoming order: %+v", upcoming)
	}

	all, err := svc.List(false)
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("all = %d, want 3", len(all))
	}
	if all[0].ID != past.ID {
		t.Errorf("all events not sorted by date: %+v", all)
	}
}

func TestUpdateEventReplacesImage(t *testing.T) {
	svc, repo, store := newEventServiceForTest(day(2026, time.March, 10))
	event, _ := svc.Create(context.Background(), validEventFields(day(2026, time.March, 20)),
		&storage.Object{Data: []byte("old"), Filename: "old.png", ContentType: "image/png"})
	oldURL := *event.FileURL

	updated, err := svc.Update(context.Background(), event.ID, validEventFields(day(2026, time.March, 21)),
		&storage.Object{Data: []byte("new"), Filename: "new.png", ContentType: "image/png"}, false)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if *updated.FileURL == oldURL {
		t.Error("image URL unchanged after replacement")
	}
	if len(store.deleted) != 1 || store.deleted[0] != oldURL {
		t.Errorf("old asset not deleted: %v", store.deleted)
	}

	stored, _ := repo.FindByID(event.ID)
	if stored.Date != day(2026, time.March, 21) {
		t.Errorf("date not updated: %v", stored.Date)
	}
}

func TestUpdateEventRemoveImageWinsOverNewImage(t *testing.T) {
	svc, _, store := newEventServiceForTest(day(2026, time.March, 10))
	event, _ := svc.Create(context.Background(), validEventFields(day(2026, time.March, 20)),
		&storage.Object{Data: []byte("old"), Filename: "old.png", ContentType: "image/png"})
	uploadsBefore := len(store.uploads)

	updated, err := svc.Update(context.Background(), event.ID, validEventFields(day(2026, time.March, 20)),
		&storage.Object{Data: []byte("new"), Filename: "new.png", ContentType: "image/png"}, true)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.HasAsset() {
		t.Error("asset not removed")
	}
	if len(store.uploads) != uploadsBefore {
		t.Error("new image uploaded despite removal flag")
	}
}

func TestUpdateEventKeepsImageWhenUntouched(t *testing.T) {
	svc, _, store := newEventServiceForTest(day(2026, time.March, 10))
	event, _ := svc.Create(context.Background(), validEventFields(day(2026, time.March, 20)),
		&storage.Object{Data: []byte("old"), Filename: "old.png", ContentType: "image/png"})

	updated, err := svc.Update(context.Background(), event.ID, validEventFields(day(2026, time.March, 22)), nil, false)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.HasAsset() || *updated.FileURL != *event.FileURL {
		t.Error("asset changed on field-only update")
	}
	if len(store.deleted) != 0 {
		t.Errorf("asset deleted on field-only update: %v", store.deleted)
	}
}

func TestUpdateEventNotFound(t *testing.T) {
	svc, _, _ := newEventServiceForTest(day(2026, time.March, 10))
	_, err := svc.Update(context.Background(), 99, validEventFields(day(2026, time.March, 20)), nil, false)
	if !errs.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestDeleteEventRemovesAsset(t *testing.T) {
	svc, repo, store := newEventServiceForTest(day(2026, time.March, 10))
	event, _ := svc.Create(context.Background(), validEventFields(day(2026, time.March, 20)),
		&storage.Object{Data: []byte("img"), Filename: "a.png", ContentType: "image/png"})

	if err := svc.Delete(context.Background(), event.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if stored, _ := repo.FindByID(event.ID); stored != nil {
		t.Error("event row survived delete")
	}
	if len(store.deleted) != 1 {
		t.Errorf("asset not deleted: %v", store.deleted)
	}
}

func TestDeleteEventNotFound(t *testing.T) {
	svc, _, _ := newEventServiceForTest(day(2026, time.March, 10))
	if err := svc.Delete(context.Background(), 13); !errs.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
