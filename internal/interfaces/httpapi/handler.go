package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/joehodgson0/teamhub/internal/platform/logging"
	"github.com/joehodgson0/teamhub/internal/usecase"
)

type Handler struct {
	authService      *usecase.AuthService
	clubService      *usecase.ClubService
	teamService      *usecase.TeamService
	playerService    *usecase.PlayerService
	eventService     *usecase.EventService
	resultService    *usecase.ResultService
	postService      *usecase.PostService
	awardService     *usecase.AwardService
	dashboardService *usecase.DashboardService
	sessions         *SessionManager
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	authService *usecase.AuthService,
	clubService *usecase.ClubService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	eventService *usecase.EventService,
	resultService *usecase.ResultService,
	postService *usecase.PostService,
	awardService *usecase.AwardService,
	dashboardService *usecase.DashboardService,
	sessions *SessionManager,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		authService:      authService,
		clubService:      clubService,
		teamService:      teamService,
		playerService:    playerService,
		eventService:     eventService,
		resultService:    resultService,
		postService:      postService,
		awardService:     awardService,
		dashboardService: dashboardService,
		sessions:         sessions,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
