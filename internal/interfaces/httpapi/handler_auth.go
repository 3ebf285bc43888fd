package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/joehodgson0/teamhub/internal/usecase"
)

type registerRequest struct {
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8"`
	Roles    []string `json:"roles" validate:"required,min=1,dive,oneof=coach parent"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Register")
	defer span.End()

	var req registerRequest
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

	u, err := h.authService.Register(ctx, usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Roles:    req.Roles,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "register failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	if err := h.sessions.SignIn(w, r, u.ID); err != nil {
		h.logger.ErrorContext(ctx, "sign in after register failed", "user_id", u.ID, "error", err)
		writeInternalError(ctx, w)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, userToDTO(u))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req loginRequest
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

	u, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "login failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	if err := h.sessions.SignIn(w, r, u.ID); err != nil {
		h.logger.ErrorContext(ctx, "sign in failed", "user_id", u.ID, "error", err)
		writeInternalError(ctx, w)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userToDTO(u))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Logout")
	defer span.End()

	if err := h.sessions.SignOut(w, r); err != nil {
		h.logger.ErrorContext(ctx, "sign out failed", "error", err)
		writeInternalError(ctx, w)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "signed out"})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Me")
	defer span.End()

	caller, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userToDTO(caller))
}
