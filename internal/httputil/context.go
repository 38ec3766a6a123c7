package httputil

import (
	"context"
	"net/http"
)

type userIDKey struct{}

// WithUserID returns a copy of r carrying the authenticated user's ID
func WithUserID(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userIDKey{}, userID))
}

// GetUserID returns the authenticated user's ID, or "" when auth is disabled
func GetUserID(r *http.Request) string {
	return UserIDFromContext(r.Context())
}

// UserIDFromContext is GetUserID for code that only holds a context
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey{}).(string)
	return userID
}
