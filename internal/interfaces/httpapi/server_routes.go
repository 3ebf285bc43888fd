package httpapi

import (
	"net/http"

	"github.com/joehodgson0/teamhub/internal/usecase"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerAuthRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/auth/register", handler.Register)
	mux.HandleFunc("POST /v1/auth/login", handler.Login)
	mux.HandleFunc("POST /v1/auth/logout", handler.Logout)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, sessions *SessionManager, auth *usecase.AuthService) {
	authed := func(fn http.HandlerFunc) http.Handler {
		return RequireSession(sessions, auth, fn)
	}

	mux.Handle("GET /v1/me", authed(handler.Me))

	mux.Handle("POST /v1/clubs", authed(handler.CreateClub))
	mux.Handle("POST /v1/clubs/join", authed(handler.JoinClub))
	mux.Handle("GET /v1/clubs/me", authed(handler.GetMyClub))

	mux.Handle("POST /v1/teams", authed(handler.CreateTeam))
	mux.Handle("POST /v1/teams/join", authed(handler.JoinTeam))
	mux.Handle("GET /v1/teams", authed(handler.ListTeams))
	mux.Handle("GET /v1/teams/{teamID}/awards", authed(handler.ListTeamAwards))

	mux.Handle("POST /v1/players", authed(handler.CreatePlayer))
	mux.Handle("GET /v1/players", authed(handler.ListMyPlayers))
	mux.Handle("POST /v1/players/{playerID}/join-team", authed(handler.JoinPlayerToTeam))

	mux.Handle("POST /v1/events", authed(handler.CreateEvent))
	mux.Handle("GET /v1/events", authed(handler.ListEvents))
	mux.Handle("PUT /v1/events/{eventID}/availability", authed(handler.SetAvailability))

	mux.Handle("POST /v1/events/{eventID}/result", authed(handler.SubmitResult))
	mux.Handle("GET /v1/results", authed(handler.ListResults))

	mux.Handle("POST /v1/posts", authed(handler.CreatePost))
	mux.Handle("GET /v1/posts", authed(handler.ListPosts))

	mux.Handle("GET /v1/dashboard", authed(handler.GetDashboard))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/clubs/{clubID}/recompute-records", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RecomputeClubRecords)))
}
