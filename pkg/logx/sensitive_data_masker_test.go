package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"travel_console/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Password",
			input:  []byte(`{"hello":"world","password":"abc123"}`),
			output: []byte(`{"hello":"world","password":"[MASKED]"}`),
		},
		{
			name:   "Token",
			input:  []byte(`{"token":"eyJhbGciOiJFUzI1NiIsInR5cC","hotel":7}`),
			output: []byte(`{"token":"[MASKED]","hotel":7}`),
		},
		{
			name:   "Authorization header",
			input:  []byte("GET /hotels/ HTTP/1.1\r\nAuthorization: Bearer secret-token\r\n\r\n"),
			output: []byte("GET /hotels/ HTTP/1.1\r\nAuthorization: Bearer [MASKED]\r\n\r\n"),
		},
		{
			name:   "Passenger contacts",
			input:  []byte(`{"passenger": {"passport_number": "X1234567", "phone": "+100200300", "email": "a@b.c"}, "seats": 2}`),
			output: []byte(`{"passenger": {"passport_number": "[MASKED]", "phone": "[MASKED]", "email": "[MASKED]"}, "seats": 2}`),
		},
		{
			name:   "Prices are kept",
			input:  []byte(`{"prices":[{"room_type":"room","price":100,"purchase_price":80}]}`),
			output: []byte(`{"prices":[{"room_type":"room","price":100,"purchase_price":80}]}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}
