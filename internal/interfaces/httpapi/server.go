package httpapi

import (
	"net/http"

	"github.com/joehodgson0/teamhub/internal/platform/logging"
	"github.com/joehodgson0/teamhub/internal/usecase"
)

func NewRouter(
	handler *Handler,
	sessions *SessionManager,
	auth *usecase.AuthService,
	logger *logging.Logger,
	corsAllowedOrigins []string,
	internalJobToken string,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerAuthRoutes(mux, handler)
	registerAuthorizedRoutes(mux, handler, sessions, auth)
	registerInternalJobRoutes(mux, handler, internalJobToken)

	return RequestID(RequestTracing(RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, mux)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
