package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nmercier/bistro-site-backend/errs"
	"github.com/nmercier/bistro-site-backend/services"
)

type menuHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   *services.MenuService
}

func newMenuHandler(service *services.MenuService) menuHandler {
	logger := log.With().Str("handlerName", "menuHandler").Logger()
	return menuHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

// getCurrentMenu serves the latest uploaded menu. No upload yet is a 404.
func (h menuHandler) getCurrentMenu() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		menu, err := h.service.GetCurrent()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if menu == nil {
			h.responder.WriteError(w, errs.NewNotFound("menu"))
			return
		}
		h.responder.WriteJSON(w, menu)
	}
}

// uploadMenu replaces the weekly menu with the submitted PDF.
func (h menuHandler) uploadMenu() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart", err))
			return
		}

		file, err := formFile(r, "file")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if file == nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}

		menu, err := h.service.Upload(r.Context(), *file)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("url", menu.FileURL).Msg("weekly menu uploaded")
		h.responder.WriteJSON(w, menuUploadResponse{
			Success: true,
			ID:      menu.ID,
			URL:     menu.FileURL,
		})
	}
}
