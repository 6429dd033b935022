/**
 * @description
 * This file contains custom middleware for the HTTP router. Middlewares are
 * used to process requests before they reach the final handler, perfect for
 * tasks like request identification, logging, or adding context to a request.
 */

package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RequestIDContextKey is a custom type for the context key to avoid collisions.
type RequestIDContextKey string

const requestIDKey RequestIDContextKey = "requestID"

// RequestID assigns every request a unique identifier, honoring one supplied
// by the caller, and echoes it back in the X-Request-ID response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID retrieves the request identifier from the context.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}
