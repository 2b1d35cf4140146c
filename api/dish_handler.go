package api

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nmercier/bistro-site-backend/errs"
	"github.com/nmercier/bistro-site-backend/services"
)

type dishHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   *services.DishService
}

func newDishHandler(service *services.DishService) dishHandler {
	logger := log.With().Str("handlerName", "dishHandler").Logger()
	return dishHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

// listDishes returns the active dish set in position order.
func (h dishHandler) listDishes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dishes, err := h.service.ListActive()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, toDishResponses(dishes))
	}
}

// replaceDishes handles the multipart admin submission. Slot 1 comes from
// nom/description/tags/file, slot 2 from nom2/description2/tags2/file2.
func (h dishHandler) replaceDishes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart", err))
			return
		}

		primary, err := h.dishFields(r, "nom", "description", "tags", "file")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		submission := services.DishSubmission{Primary: primary}

		secondary, err := h.dishFields(r, "nom2", "description2", "tags2", "file2")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if secondary.Name != "" || secondary.Description != "" || secondary.Image != nil || len(secondary.Tags) > 0 {
			submission.Secondary = &secondary
		}

		dishes, err := h.service.ReplaceAll(r.Context(), submission)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().
			Int("count", len(dishes)).
			Str("admin", ctxAdminSubject(r.Context())).
			Msg("dish set replaced")
		h.responder.WriteJSON(w, toDishResponses(dishes))
	}
}

// removeDishImage clears a dish's image without touching its other fields.
func (h dishHandler) removeDishImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "dishID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		dish, err := h.service.RemoveImage(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, toDishResponse(*dish))
	}
}

func (h dishHandler) deleteDish() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "dishID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.service.Delete(r.Context(), id); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, map[string]any{"success": true})
	}
}

func (h dishHandler) dishFields(r *http.Request, nameField, descField, tagsField, fileField string) (services.DishFields, error) {
	tags, err := formTags(r, tagsField)
	if err != nil {
		return services.DishFields{}, err
	}
	image, err := formFile(r, fileField)
	if err != nil {
		return services.DishFields{}, err
	}
	return services.DishFields{
		Name:        strings.TrimSpace(r.FormValue(nameField)),
		Description: strings.TrimSpace(r.FormValue(descField)),
		Tags:        tags,
		Image:       image,
	}, nil
}
