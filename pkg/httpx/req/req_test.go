package req_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"travel_console/pkg/errcodes"
	"travel_console/pkg/httpx/req"
)

type testPayload struct {
	DateFrom string `json:"date_from" validate:"required,datetime=2006-01-02"`
	DateTo   string `json:"date_to"   validate:"required,datetime=2006-01-02"`
}

func TestRead(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "Valid",
			body: `{"date_from":"2025-01-01","date_to":"2025-01-05"}`,
		},
		{
			name:    "Broken JSON",
			body:    `{"date_from":`,
			wantErr: true,
		},
		{
			name:    "Missing field",
			body:    `{"date_from":"2025-01-01"}`,
			wantErr: true,
		},
		{
			name:    "Wrong date format",
			body:    `{"date_from":"01.01.2025","date_to":"2025-01-05"}`,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))

			var dest testPayload

			err := req.Read(r, &dest)
			if !tc.wantErr {
				rq.NoError(err)
				rq.Equal("2025-01-01", dest.DateFrom)

				return
			}

			rq.Error(err)
			rq.True(failure.IsInvalidArgumentError(err))
			rq.Equal(errcodes.ValidationError, failure.Code(err))
		})
	}
}

func TestValidate(t *testing.T) {
	rq := require.New(t)

	rq.NoError(req.Validate(context.Background(), &testPayload{DateFrom: "2025-01-01", DateTo: "2025-01-02"}))

	err := req.Validate(context.Background(), &testPayload{})
	rq.True(failure.IsInvalidArgumentError(err))
}
