package middlewarex

import (
	"net/http"
	"unicode"

	"github.com/rs/xid"

	"travel_console/pkg/contextx"
)

const (
	HeaderNameTraceID = "X-Trace-Id"

	traceIDMaxLen = 64
)

// TraceID keeps the caller's trace id when it looks sane and issues a new
// one otherwise. The id is echoed back in the response headers.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(HeaderNameTraceID)

		if !validTraceID(traceID) {
			traceID = xid.New().String()
		}

		ctx := contextx.WithTraceID(r.Context(), contextx.TraceID(traceID))

		w.Header().Set(HeaderNameTraceID, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func validTraceID(traceID string) bool {
	if traceID == "" || len(traceID) > traceIDMaxLen {
		return false
	}

	for _, r := range traceID {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return false
		}
	}

	return true
}
