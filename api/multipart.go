package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nmercier/bistro-site-backend/errs"
	"github.com/nmercier/bistro-site-backend/storage"
)

// maxUploadSize bounds multipart submissions (images and menu PDFs).
const maxUploadSize = 10 << 20 // 10MB

// formFile reads the named file part, or returns nil when the part is absent.
func formFile(r *http.Request, field string) (*storage.Object, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewMalformedPayloadError("multipart", err)
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		return nil, errs.NewMaxBodySizeExceededError(maxUploadSize)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errs.NewMalformedPayloadError("multipart", err)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return &storage.Object{
		Data:        data,
		Filename:    header.Filename,
		ContentType: contentType,
	}, nil
}

// formTags parses a tags field submitted as a JSON array of strings.
func formTags(r *http.Request, field string) ([]string, error) {
	raw := strings.TrimSpace(r.FormValue(field))
	if raw == "" {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, errs.NewInvalidFieldError(field, "must be a JSON array of strings")
	}
	return tags, nil
}

// pathID parses a numeric URL parameter into an entity identity.
func pathID(r *http.Request, param string) (uint, error) {
	raw := chi.URLParam(r, param)
	if raw == "" {
		return 0, errs.NewBadRequestError("missing " + param)
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid " + param)
	}
	return uint(id), nil
}
