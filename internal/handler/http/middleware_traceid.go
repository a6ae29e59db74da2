package http

import (
	"net/http"

	"github.com/MKhiriev/go-forum/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a child logger with a trace_id field to the request
// context. The id is taken from X-Trace-ID or generated, and echoed back in
// the response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = utils.NewTraceID()
		}

		r = r.WithContext(h.logger.ContextWithTraceID(r.Context(), traceID))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
