package middlewarex_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"travel_console/pkg/contextx"
	"travel_console/pkg/logx"
	"travel_console/pkg/middlewarex"
)

func TestTraceID(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		traceID string
		kept    bool
	}{
		{name: "Generated", traceID: ""},
		{name: "Forwarded", traceID: "trace-1", kept: true},
		{name: "Too long", traceID: strings.Repeat("a", 65)},
		{name: "With spaces", traceID: "trace 1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var seen contextx.TraceID

			h := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				seen, _ = contextx.TraceIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tc.traceID != "" {
				req.Header.Set("X-Trace-Id", tc.traceID)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			rq.NotEmpty(seen)
			rq.Equal(seen.String(), rec.Header().Get("X-Trace-Id"))

			if tc.kept {
				rq.Equal(tc.traceID, seen.String())
			} else {
				rq.NotEqual(tc.traceID, seen.String())
			}
		})
	}
}

func TestScreenID(t *testing.T) {
	rq := require.New(t)

	var (
		screenID contextx.ScreenID
		err      error
	)

	h := middlewarex.ScreenID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		screenID, err = contextx.ScreenIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set(middlewarex.HeaderNameScreenID, "hotel-form-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	rq.NoError(err)
	rq.Equal(contextx.ScreenID("hotel-form-1"), screenID)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	rq.ErrorIs(err, contextx.ErrNoValue)
}

func TestRecovery(t *testing.T) {
	rq := require.New(t)

	h := middlewarex.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	rq.Equal(http.StatusInternalServerError, rec.Code)
	rq.Contains(rec.Body.String(), `"code":"InternalServerError"`)
}

func TestResponseLogging(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		status   int
		body     string
		maxLen   int
		level    string
		contains []string
	}{
		{
			name:     "Masked",
			status:   http.StatusCreated,
			body:     `{"token":"secret"}`,
			maxLen:   1024,
			level:    "INFO",
			contains: []string{`[MASKED]`},
		},
		{
			name:     "Masked before truncation",
			status:   http.StatusOK,
			body:     `{"token":"secret-value-longer-than-the-limit"}`,
			maxLen:   16,
			level:    "INFO",
			contains: []string{`[truncated`},
		},
		{
			name:     "Client error",
			status:   http.StatusBadRequest,
			body:     `{"code":"ValidationError"}`,
			maxLen:   1024,
			level:    "WARN",
			contains: []string{`ValidationError`},
		},
		{
			name:     "Server error",
			status:   http.StatusBadGateway,
			body:     `{"code":"DataServiceUnavailable"}`,
			maxLen:   1024,
			level:    "ERROR",
			contains: []string{`DataServiceUnavailable`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var logs bytes.Buffer

			h := middlewarex.ResponseLogging(logx.NewSensitiveDataMasker(), tc.maxLen)(
				http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(tc.status)
					w.Write([]byte(tc.body)) //nolint:errcheck
				}),
			)

			ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&logs, nil)))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody).WithContext(ctx))

			rq.Equal(tc.status, rec.Code)
			rq.Equal(tc.body, rec.Body.String())

			rq.Contains(logs.String(), `"level":"`+tc.level+`"`)
			rq.NotContains(logs.String(), "secret")

			for _, s := range tc.contains {
				rq.Contains(logs.String(), s)
			}
		})
	}
}

func TestRequestLogging(t *testing.T) {
	rq := require.New(t)

	var (
		logs bytes.Buffer
		body string
	)

	h := middlewarex.RequestLogging(logx.NewSensitiveDataMasker(), 4096)(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			b, _ := io.ReadAll(r.Body) //nolint:errcheck
			body = string(b)
		}),
	)

	ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&logs, nil)))

	req := httptest.NewRequest(http.MethodPut, "/v1/hotels/42/price-sections",
		strings.NewReader(`{"password":"hunter2","sections":[]}`)).WithContext(ctx)
	h.ServeHTTP(httptest.NewRecorder(), req)

	rq.Equal(`{"password":"hunter2","sections":[]}`, body)
	rq.Contains(logs.String(), `[MASKED]`)
	rq.Contains(logs.String(), `sections`)
	rq.NotContains(logs.String(), "hunter2")
}
