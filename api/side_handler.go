package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nmercier/bistro-site-backend/errs"
	"github.com/nmercier/bistro-site-backend/services"
)

type sideHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   *services.SideService
}

func newSideHandler(service *services.SideService) sideHandler {
	logger := log.With().Str("handlerName", "sideHandler").Logger()
	return sideHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

type sideRequest struct {
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (h sideHandler) listSides() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sides, err := h.service.List()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, sides)
	}
}

func (h sideHandler) createSide() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sideRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("JSON", err))
			return
		}

		side, err := h.service.Create(services.SideFields{
			Description: req.Description,
			Category:    req.Category,
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, side)
	}
}

func (h sideHandler) updateSide() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "sideID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req sideRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("JSON", err))
			return
		}

		side, err := h.service.Update(id, services.SideFields{
			Description: req.Description,
			Category:    req.Category,
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, side)
	}
}

func (h sideHandler) deleteSide() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "sideID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.service.Delete(id); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, map[string]any{"success": true})
	}
}
