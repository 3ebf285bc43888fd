package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/joehodgson0/teamhub/internal/usecase"
)

const (
	sessionName      = "teamhub-session"
	sessionUserIDKey = "user_id"
)

// SessionManager issues and clears the signed session cookie. Only the user
// ID lives in the cookie; the account record is re-fetched on every request
// so role and membership changes apply immediately.
type SessionManager struct {
	store *sessions.CookieStore
}

func NewSessionManager(secret []byte, secure bool) *SessionManager {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &SessionManager{store: store}
}

func (m *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, userID string) error {
	sess, _ := m.store.Get(r, sessionName)
	sess.Values[sessionUserIDKey] = userID
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (m *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, sessionName)
	sess.Options.MaxAge = -1
	delete(sess.Values, sessionUserIDKey)
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (m *SessionManager) userID(r *http.Request) (string, bool) {
	sess, err := m.store.Get(r, sessionName)
	if err != nil {
		return "", false
	}
	id, ok := sess.Values[sessionUserIDKey].(string)
	return id, ok && id != ""
}

// RequireSession authenticates the request from the session cookie and puts
// the loaded account into the request context.
func RequireSession(manager *SessionManager, auth *usecase.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.RequireSession")
		defer span.End()

		userID, ok := manager.userID(r)
		if !ok {
			writeError(ctx, w, fmt.Errorf("%w: no active session", usecase.ErrUnauthorized))
			return
		}

		u, err := auth.GetUser(ctx, userID)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(withPrincipal(ctx, u)))
	})
}
