package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// PersonIDKey is the context key for the acting person's id
	PersonIDKey ContextKey = "person_id"

	// PersonIDHeader names the request header carrying the acting person's id
	PersonIDHeader = "X-Person-ID"
)

// ActingPerson resolves the person making the request from the X-Person-ID
// header. The header is optional: handlers that need a default payer fall
// back to the primary person when no actor is set.
func ActingPerson(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(PersonIDHeader)
		if id != "" {
			if _, err := uuid.Parse(id); err == nil {
				ctx := context.WithValue(r.Context(), PersonIDKey, id)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// GetPersonID extracts the acting person's id from the request context
func GetPersonID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(PersonIDKey).(string)
	return id, ok
}
