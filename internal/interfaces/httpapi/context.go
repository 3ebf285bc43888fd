package httpapi

import (
	"context"

	"github.com/joehodgson0/teamhub/internal/domain/user"
)

type contextKey string

const (
	principalContextKey contextKey = "auth_principal"
	requestIDContextKey contextKey = "request_id"
)

func withPrincipal(ctx context.Context, u user.User) context.Context {
	return context.WithValue(ctx, principalContextKey, u)
}

func principalFromContext(ctx context.Context) (user.User, bool) {
	u, ok := ctx.Value(principalContextKey).(user.User)
	return u, ok
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, id)
}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}
