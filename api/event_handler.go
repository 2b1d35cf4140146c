package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nmercier/bistro-site-backend/errs"
	"github.com/nmercier/bistro-site-backend/services"
)

const eventDateLayout = "2006-01-02"

type eventHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   *services.EventService
}

func newEventHandler(service *services.EventService) eventHandler {
	logger := log.With().Str("handlerName", "eventHandler").Logger()
	return eventHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

// listUpcomingEvents returns events dated today or later, soonest first.
func (h eventHandler) listUpcomingEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := h.service.List(true)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, events)
	}
}

// listAllEvents returns every event including past ones, for the admin page.
func (h eventHandler) listAllEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := h.service.List(false)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, events)
	}
}

func (h eventHandler) createEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart", err))
			return
		}

		fields, err := h.eventFields(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		image, err := formFile(r, "file")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		event, err := h.service.Create(r.Context(), fields, image)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().
			Uint("eventID", event.ID).
			Str("admin", ctxAdminSubject(r.Context())).
			Msg("event created")
		h.responder.WriteJSON(w, event)
	}
}

func (h eventHandler) updateEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "eventID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart", err))
			return
		}

		fields, err := h.eventFields(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		image, err := formFile(r, "file")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		removeImage := r.FormValue("removeImage") == "true"

		event, err := h.service.Update(r.Context(), id, fields, image, removeImage)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, event)
	}
}

func (h eventHandler) deleteEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "eventID")
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

func (h eventHandler) eventFields(r *http.Request) (services.EventFields, error) {
	fields := services.EventFields{
		Title:       strings.TrimSpace(r.FormValue("titre")),
		Time:        strings.TrimSpace(r.FormValue("heure")),
		Description: strings.TrimSpace(r.FormValue("description")),
	}

	rawDate := strings.TrimSpace(r.FormValue("date"))
	if rawDate != "" {
		date, err := time.Parse(eventDateLayout, rawDate)
		if err != nil {
			return services.EventFields{}, errs.NewInvalidFieldError("date", "must be formatted as YYYY-MM-DD")
		}
		fields.Date = date
	}

	return fields, nil
}
