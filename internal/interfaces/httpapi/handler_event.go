package httpapi

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/joehodgson0/teamhub/internal/usecase"
)

type createEventRequest struct {
	TeamID    string `json:"teamId" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=match tournament training social"`
	Friendly  bool   `json:"friendly"`
	Name      string `json:"name" validate:"required,max=160"`
	Opponent  string `json:"opponent" validate:"max=160"`
	Location  string `json:"location" validate:"required,max=200"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
	HomeAway  string `json:"homeAway" validate:"omitempty,oneof=home away"`
}

type setAvailabilityRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
	Status   string `json:"status" validate:"required,oneof=available unavailable pending"`
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateEvent")
	defer span.End()

	caller, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createEventRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: startTime must be RFC 3339: %v", usecase.ErrInvalidInput, err))
		return
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: endTime must be RFC 3339: %v", usecase.ErrInvalidInput, err))
		return
	}

	e, err := h.eventService.Create(ctx, caller, usecase.CreateEventInput{
		TeamID:    req.TeamID,
		Type:      req.Type,
		Friendly:  req.Friendly,
		Name:      req.Name,
		Opponent:  req.Opponent,
		Location:  req.Location,
		StartTime: startTime,
		EndTime:   endTime,
		HomeAway:  req.HomeAway,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create event failed", "user_id", caller.ID, "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, eventToDTO(e))
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEvents")
	defer span.End()

	caller, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	window := r.URL.Query().Get("window")
	events, err := h.eventService.ListVisible(ctx, caller, window)
	if err != nil {
		h.logger.WarnContext(ctx, "list events failed", "user_id", caller.ID, "window", window, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]eventDTO, 0, len(events))
	for _, e := range events {
		items = append(items, eventToDTO(e))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetAvailability")
	defer span.End()

	caller, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	eventID := r.PathValue("eventID")

	var req setAvailabilityRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	e, err := h.eventService.SetAvailability(ctx, caller, eventID, req.PlayerID, req.Status)
	if err != nil {
		h.logger.WarnContext(ctx, "set availability failed", "user_id", caller.ID, "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventToDTO(e))
}
