package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/joehodgson0/teamhub/internal/domain/result"
	"github.com/joehodgson0/teamhub/internal/usecase"
)

type submitResultRequest struct {
	FixtureID     string                 `json:"fixtureId"`
	TeamID        string                 `json:"teamId" validate:"required"`
	HomeTeamGoals int                    `json:"homeTeamGoals" validate:"min=0"`
	AwayTeamGoals int                    `json:"awayTeamGoals" validate:"min=0"`
	PlayerStats   map[string]statLineDTO `json:"playerStats"`
}

func (h *Handler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitResult")
	defer span.End()

	caller, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	eventID := strings.TrimSpace(r.PathValue("eventID"))

	var req submitResultRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	if strings.TrimSpace(req.FixtureID) == "" {
		req.FixtureID = eventID
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if strings.TrimSpace(req.FixtureID) != eventID {
		writeError(ctx, w, fmt.Errorf("%w: fixture id mismatch between path and payload", usecase.ErrInvalidInput))
		return
	}

	stats := make(map[string]result.StatLine, len(req.PlayerStats))
	for playerID, line := range req.PlayerStats {
		stats[playerID] = result.StatLine{Goals: line.Goals, Assists: line.Assists}
	}

	res, err := h.resultService.Submit(ctx, caller, usecase.SubmitResultInput{
		FixtureID:     req.FixtureID,
		TeamID:        req.TeamID,
		HomeTeamGoals: req.HomeTeamGoals,
		AwayTeamGoals: req.AwayTeamGoals,
		PlayerStats:   stats,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit result failed", "user_id", caller.ID, "fixture_id", req.FixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resultToDTO(res))
}

func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListResults")
	defer span.End()

	caller, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	results, err := h.resultService.ListVisible(ctx, caller)
	if err != nil {
		h.logger.WarnContext(ctx, "list results failed", "user_id", caller.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]resultDTO, 0, len(results))
	for _, res := range results {
		items = append(items, resultToDTO(res))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) RecomputeClubRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecomputeClubRecords")
	defer span.End()

	clubID := r.PathValue("clubID")

	maxWorkers := 0
	if raw := r.URL.Query().Get("max_workers"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(ctx, w, fmt.Errorf("%w: max_workers must be a non-negative integer", usecase.ErrInvalidInput))
			return
		}
		maxWorkers = parsed
	}

	summary, err := h.resultService.RecomputeClub(ctx, clubID, maxWorkers)
	if err != nil {
		h.logger.ErrorContext(ctx, "recompute club records failed", "club_id", clubID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summary)
}
