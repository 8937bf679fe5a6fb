package middleware

import (
	"context"
	"net/http"
	"strconv"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ParticipantIDKey is the context key for the authenticated participant ID
	ParticipantIDKey ContextKey = "participant_id"
)

// TestParticipantMiddleware allows setting the acting participant via the
// X-Participant-ID header (DEV ONLY). This makes it easy to exercise the API
// as different participants without real auth.
// TODO: replace with JWT validation once accounts ship
func TestParticipantMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idStr := r.Header.Get("X-Participant-ID")
		if idStr != "" {
			if id, err := strconv.ParseInt(idStr, 10, 64); err == nil && id > 0 {
				ctx := context.WithValue(r.Context(), ParticipantIDKey, id)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}
		// Default to participant 1 if no header provided
		ctx := context.WithValue(r.Context(), ParticipantIDKey, int64(1))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetParticipantID extracts the acting participant ID from the request context
func GetParticipantID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ParticipantIDKey).(int64)
	return id, ok
}
