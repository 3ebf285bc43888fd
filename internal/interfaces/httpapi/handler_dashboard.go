package httpapi

import (
	"fmt"
	"net/http"

	"github.com/joehodgson0/teamhub/internal/usecase"
)

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	caller, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	dashboard, err := h.dashboardService.Load(ctx, caller)
	if err != nil {
		h.logger.ErrorContext(ctx, "load dashboard failed", "user_id", caller.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardToDTO(dashboard))
}
