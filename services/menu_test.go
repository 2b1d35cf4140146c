package services

import (
	"context"
	"testing"

	"github.com/nmercier/bistro-site-backend/errs"
	"github.com/nmercier/bistro-site-backend/storage"
)

func newMenuServiceForTest() (*MenuService, *mockMenuRepo, *mockStore) {
	repo := newMockMenuRepo()
	store := newMockStore()
	return NewMenuService(repo, store), repo, store
}

func pdfObject(name string) storage.Object {
	return storage.Object{Data: []byte("%PDF-1.4"), Filename: name, ContentType: "application/pdf"}
}

func TestUploadMenuReplacesPrevious(t *testing.T) {
	svc, repo, store := newMenuServiceForTest()

	first, err := svc.Upload(context.Background(), pdfObject("semaine-1.pdf"))
	if err != nil {
		t.Fatalf("first Upload: %v", err)
	}
	second, err := svc.Upload(context.Background(), pdfObject("semaine-2.pdf"))
	if err != nil {
		t.Fatalf("second Upload: %v", err)
	}

	all, _ := repo.FindAll()
	if len(all) != 1 {
		t.Fatalf("menu rows = %d, want 1", len(all))
	}
	if all[0].ID != second.ID {
		t.Errorf("surviving row = %d, want %d", all[0].ID, second.ID)
	}
	if len(store.deleted) != 1 || store.deleted[0] != first.FileURL {
		t.Errorf("previous asset not deleted: %v", store.deleted)
	}
}

func TestUploadMenuRejectsNonPDF(t *testing.T) {
	svc, repo, store := newMenuServiceForTest()
	if _, err := svc.Upload(context.Background(), pdfObject("semaine.pdf")); err != nil {
		t.Fatalf("seed Upload: %v", err)
	}
	uploadsBefore := len(store.uploads)

	_, err := svc.Upload(context.Background(), storage.Object{
		Data:        []byte("not a pdf"),
		Filename:    "menu.docx",
		ContentType: "application/msword",
	})
	if !errs.IsUnsupportedMediaTypeError(err) {
		t.Fatalf("expected unsupported media type, got %v", err)
	}

	// Rejection happens before any side effect: existing menu intact.
	all, _ := repo.FindAll()
	if len(all) != 1 {
		t.Errorf("existing menu swept on rejected upload: %d rows", len(all))
	}
	if len(store.uploads) != uploadsBefore {
		t.Error("rejected file reached the store")
	}
}

func TestUploadMenuRejectsEmptyFile(t *testing.T) {
	svc, _, _ := newMenuServiceForTest()
	_, err := svc.Upload(context.Background(), storage.Object{ContentType: "application/pdf"})
	if !errs.IsMissingRequiredFieldError(err) {
		t.Fatalf("expected missing-field error, got %v", err)
	}
}

func TestGetCurrentMenu(t *testing.T) {
	svc, _, _ := newMenuServiceForTest()

	menu, err := svc.GetCurrent()
	if err != nil {
		t.Fatalf("GetCurrent: %v", err)
	}
	if menu != nil {
		t.Fatalf("expected no menu, got %+v", menu)
	}

	uploaded, _ := svc.Upload(context.Background(), pdfObject("semaine.pdf"))
	menu, err = svc.GetCurrent()
	if err != nil {
		t.Fatalf("GetCurrent after upload: %v", err)
	}
	if menu == nil || menu.ID != uploaded.ID {
		t.Errorf("GetCurrent = %+v, want menu %d", menu, uploaded.ID)
	}
}
