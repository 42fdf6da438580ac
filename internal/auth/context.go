package auth

import "context"

type ctxKey struct{}

// User is the authenticated caller
type User struct {
	ID    string
	Email string
	Role  string
}

// WithUser returns a context carrying the authenticated user
func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// UserFromContext returns the authenticated user, if any
func UserFromContext(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(ctxKey{}).(User)
	return u, ok && u.ID != ""
}

// UserID returns the authenticated user's id, or "" for anonymous requests
func UserID(ctx context.Context) string {
	u, _ := UserFromContext(ctx)
	return u.ID
}
