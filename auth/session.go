package auth

import (
	"context"

	"party-lab/domain"
)

type sessionContextKey struct{}

// WithSession stores the authenticated session in ctx.
func WithSession(ctx context.Context, session domain.Session) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// SessionFromContext returns the session stored in ctx, if any.
func SessionFromContext(ctx context.Context) (domain.Session, bool) {
	if ctx == nil {
		return domain.Session{}, false
	}
	session, ok := ctx.Value(sessionContextKey{}).(domain.Session)
	return session, ok
}
