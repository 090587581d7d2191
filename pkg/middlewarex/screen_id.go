package middlewarex

import (
	"log/slog"
	"net/http"

	"travel_console/pkg/contextx"
	"travel_console/pkg/logx"
)

// HeaderNameScreenID names the console screen a request comes from.
const HeaderNameScreenID = "X-Lookup-Context"

func ScreenID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		screenID := r.Header.Get(HeaderNameScreenID)
		if screenID == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := contextx.WithScreenID(r.Context(), contextx.ScreenID(screenID))
		ctx = contextx.WithLogger(ctx, logger(ctx).With(slog.String(logx.FieldScreenID, screenID)))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
