package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/joehodgson0/teamhub/internal/usecase"
)

type createPostRequest struct {
	Type    string `json:"type" validate:"required,oneof=kit_request player_request announcement event"`
	Scope   string `json:"scope" validate:"required,oneof=club team"`
	TeamID  string `json:"teamId"`
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"max=4000"`
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePost")
	defer span.End()

	caller, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createPostRequest
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

	p, err := h.postService.Create(ctx, caller, usecase.CreatePostInput{
		Type:    req.Type,
		Scope:   req.Scope,
		TeamID:  req.TeamID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create post failed", "user_id", caller.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, postToDTO(p))
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPosts")
	defer span.End()

	caller, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	posts, err := h.postService.ListVisible(ctx, caller)
	if err != nil {
		h.logger.WarnContext(ctx, "list posts failed", "user_id", caller.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]postDTO, 0, len(posts))
	for _, p := range posts {
		items = append(items, postToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
