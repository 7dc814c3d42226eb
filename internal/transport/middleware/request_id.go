package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/lunarbyte/flashdeck-backend/pkg/ctxutil"
)

const requestIDHeader = "X-Request-Id"

// RequestID assigns a correlation ID to every request. An incoming
// X-Request-Id header is reused, otherwise a fresh UUID is generated. The ID
// is stored in the context and echoed back in the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		w.Header().Set(requestIDHeader, id)
		r = r.WithContext(ctxutil.WithRequestID(r.Context(), id))
		next.ServeHTTP(w, r)
	})
}
