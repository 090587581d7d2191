package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	err := newApp(strings.NewReader(stdin), &stdout, &stderr).Run(append([]string{"pricetool"}, args...))
	require.NoError(t, err)

	return stdout.String(), stderr.String()
}

func TestFlatten(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		input string
	}{
		{
			name:  "Object",
			input: `{"sections":[{"start_date":"2026-06-01","end_date":"2026-06-30","room_type":"double","price":100,"purchase_price":"80","bed_prices":[]}]}`,
		},
		{
			name:  "Array",
			input: `[{"start_date":"2026-06-01","end_date":"2026-06-30","room_type":"double","price":100,"purchase_price":"80"}]`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, stderr := run(t, tc.input, "flatten")

			rq.JSONEq(`{"records":[
				{"start_date":"2026-06-01","end_date":"2026-06-30","room_type":"room","price":100,"purchase_price":80,"profit":20},
				{"start_date":"2026-06-01","end_date":"2026-06-30","room_type":"double","price":100,"purchase_price":80,"profit":20}
			]}`, stdout)
			rq.Empty(stderr)
		})
	}
}

func TestFlattenWarning(t *testing.T) {
	rq := require.New(t)

	_, stderr := run(t, `[{"start_date":"2026-06-30","end_date":"2026-06-01","price":1}]`, "flatten")

	rq.Contains(stderr, "warning:")
}

func TestReconstructFromFile(t *testing.T) {
	rq := require.New(t)

	path := filepath.Join(t.TempDir(), "hotel.json")
	rq.NoError(os.WriteFile(path, []byte(`{"id":42,"name":"Sea View","prices":[
		{"id":1,"start_date":"2026-06-01","end_date":"2026-06-30","room_type":"room","price":"100.00","purchase_price":"80.00","profit":"20.00"},
		{"id":2,"start_date":"2026-06-01","end_date":"2026-06-30","room_type":"sharing","price":40,"purchase_price":30,"profit":10}
	]}`), 0o600))

	stdout, _ := run(t, "", "reconstruct", "--indent", path)

	rq.JSONEq(`{"sections":[
		{"id":1,"start_date":"2026-06-01","end_date":"2026-06-30","room_type":"room","price":100,"purchase_price":80,
		 "bed_prices":[{"id":2,"type":"sharing","price":40,"purchase_price":30}]}
	]}`, stdout)
}

func TestReconstructEmpty(t *testing.T) {
	rq := require.New(t)

	stdout, _ := run(t, `[]`, "reconstruct")

	rq.JSONEq(`{"sections":[{"start_date":null,"end_date":null,"room_type":"room","price":"","purchase_price":"","bed_prices":[]}]}`, stdout)
}
