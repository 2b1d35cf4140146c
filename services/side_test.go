package services

import (
	"testing"

	"github.com/nmercier/bistro-site-backend/errs"
)

func newSideServiceForTest() (*SideService, *mockSideRepo) {
	repo := newMockSideRepo()
	return NewSideService(repo), repo
}

func TestCreateSide(t *testing.T) {
	svc, repo := newSideServiceForTest()

	side, err := svc.Create(SideFields{Description: "Salade César", Category: "salades"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if side.ID == 0 {
		t.Error("side not persisted")
	}

	stored, _ := repo.FindByID(side.ID)
	if stored == nil || stored.Category != "salades" {
		t.Errorf("stored side = %+v", stored)
	}
}

func TestCreateSideValidation(t *testing.T) {
	svc, _ := newSideServiceForTest()

	tests := []struct {
		name    string
		fields  SideFields
		wantErr func(error) bool
	}{
		{"missing description", SideFields{Category: "soupes"}, errs.IsMissingRequiredFieldError},
		{"missing category", SideFields{Description: "Velouté"}, errs.IsMissingRequiredFieldError},
		{"unknown category", SideFields{Description: "Velouté", Category: "desserts"}, errs.IsInvalidFieldError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(tc.fields); !tc.wantErr(err) {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestUpdateSide(t *testing.T) {
	svc, _ := newSideServiceForTest()
	side, _ := svc.Create(SideFields{Description: "Soupe du jour", Category: "soupes"})

	updated, err := svc.Update(side.ID, SideFields{Description: "Soupe à l'oignon", Category: "soupes"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Description != "Soupe à l'oignon" {
		t.Errorf("description = %q", updated.Description)
	}

	if _, err := svc.Update(99, SideFields{Description: "x", Category: "buns"}); !errs.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestDeleteSide(t *testing.T) {
	svc, repo := newSideServiceForTest()
	side, _ := svc.Create(SideFields{Description: "Croque monsieur", Category: "croques"})

	if err := svc.Delete(side.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if stored, _ := repo.FindByID(side.ID); stored != nil {
		t.Error("side survived delete")
	}

	if err := svc.Delete(side.ID); !errs.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestListSidesGroupedByCategory(t *testing.T) {
	svc, _ := newSideServiceForTest()
	_, _ = svc.Create(SideFields{Description: "Velouté", Category: "soupes"})
	_, _ = svc.Create(SideFields{Description: "César", Category: "salades"})
	_, _ = svc.Create(SideFields{Description: "Chèvre chaud", Category: "salades"})

	sides, err := svc.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(sides) != 3 {
		t.Fatalf("sides = %d, want 3", len(sides))
	}
	if sides[0].Category != "salades" || sides[2].Category != "soupes" {
		t.Errorf("sides not grouped by category: %+v", sides)
	}
}
