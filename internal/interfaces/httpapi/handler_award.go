package httpapi

import (
	"fmt"
	"net/http"

	"github.com/joehodgson0/teamhub/internal/usecase"
)

func (h *Handler) ListTeamAwards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamAwards")
	defer span.End()

	caller, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	teamID := r.PathValue("teamID")
	awards, err := h.awardService.ListByTeam(ctx, caller, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list awards failed", "user_id", caller.ID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]awardDTO, 0, len(awards))
	for _, a := range awards {
		items = append(items, awardToDTO(a))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
