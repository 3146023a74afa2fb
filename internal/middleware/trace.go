package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const TraceIDHeader = "X-Trace-ID"

type traceKey struct{}

// TraceID propagates the caller's X-Trace-ID or assigns a new one, and
// echoes it on the response.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		w.Header().Set(TraceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), traceKey{}, traceID)))
	})
}

func TraceIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(traceKey{}).(string)
	return id
}
