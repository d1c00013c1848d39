package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/munch-accounts/internal/utils"
)

const (
	traceIDHeader = "X-Trace-ID"

	// longer inbound ids are replaced rather than logged
	maxTraceIDLength = 128
)

var traceIDs = utils.NewIDGenerator()

// withTraceID attaches a child logger carrying trace_id to the request
// context and echoes the id in the response. An inbound X-Trace-ID is reused.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLength {
			traceID = traceIDs.NewID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
