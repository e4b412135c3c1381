package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/helixml/catalog/internal/log"
)

// CorrelationHeader carries the correlation id on requests and responses.
const CorrelationHeader = "X-Correlation-ID"

// Correlation attaches a correlation id to the request context so that log
// records written while handling the request carry it. The id comes from the
// X-Correlation-ID header, then chi's request id, then a fresh UUID.
func Correlation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(CorrelationHeader)
		if id == "" {
			id = middleware.GetReqID(r.Context())
		}
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(CorrelationHeader, id)
		next.ServeHTTP(w, r.WithContext(log.WithCorrelationID(r.Context(), id)))
	})
}
