package value_test

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"travel_console/internal/domain/value"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

func TestAmountUnmarshal(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		input string
		empty bool
		value float64
	}{
		{name: "Number", input: `100`, value: 100},
		{name: "Fraction", input: `99.95`, value: 99.95},
		{name: "Zero is present", input: `0`, value: 0},
		{name: "Numeric string", input: `"120.5"`, value: 120.5},
		{name: "Empty string", input: `""`, empty: true},
		{name: "Blank string", input: `"  "`, empty: true},
		{name: "Null", input: `null`, empty: true},
		{name: "Garbage string", input: `"abc"`, value: 0},
		{name: "Boolean", input: `true`, value: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var a value.Amount

			rq.NoError(json.Unmarshal([]byte(tc.input), &a))
			rq.Equal(tc.empty, a.IsEmpty())
			rq.InDelta(tc.value, a.Float64(), 1e-9)
		})
	}
}

func TestAmountMarshal(t *testing.T) {
	rq := require.New(t)

	b, err := json.Marshal(value.Amount{})
	rq.NoError(err)
	rq.Equal(`""`, string(b))

	b, err = json.Marshal(value.NewAmount(120.5))
	rq.NoError(err)
	rq.Equal(`120.5`, string(b))

	rq.Equal("", value.ParseAmount("").String())
	rq.Equal("80", value.ParseAmount("80").String())
}

func TestDate(t *testing.T) {
	rq := require.New(t)

	var d value.Date

	rq.NoError(json.Unmarshal([]byte(`null`), &d))
	rq.True(d.IsNull())

	b, err := json.Marshal(d)
	rq.NoError(err)
	rq.Equal(`null`, string(b))

	rq.NoError(json.Unmarshal([]byte(`"2025-01-05"`), &d))
	rq.Equal(value.Date("2025-01-05"), d)

	parsed, ok := d.Time()
	rq.True(ok)
	rq.Equal(5, parsed.Day())

	_, ok = value.Date("2025-01-05T10:00:00Z").Time()
	rq.True(ok)

	_, ok = value.Date("soon").Time()
	rq.False(ok)
}

func TestID(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		input  string
		id     value.ID
		output string
	}{
		{name: "Number", input: `42`, id: "42", output: `42`},
		{name: "Numeric string", input: `"42"`, id: "42", output: `42`},
		{name: "UUID", input: `"8f1c2d3e-aaaa"`, id: "8f1c2d3e-aaaa", output: `"8f1c2d3e-aaaa"`},
		{name: "Leading zero stays a string", input: `"007"`, id: "007", output: `"007"`},
		{name: "Null", input: `null`, id: "", output: `null`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var id value.ID

			rq.NoError(json.Unmarshal([]byte(tc.input), &id))
			rq.Equal(tc.id, id)

			b, err := json.Marshal(id)
			rq.NoError(err)
			rq.Equal(tc.output, string(b))
		})
	}
}

func TestRoomTypeOr(t *testing.T) {
	rq := require.New(t)

	rq.Equal(value.RoomTypeDouble, value.RoomType("").Or(value.RoomTypeDouble))
	rq.Equal(value.RoomTypeSharing, value.RoomTypeSharing.Or(value.RoomTypeDouble))
}

func TestNumberUnmarshal(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		input string
		value float64
	}{
		{name: "Number", input: `120`, value: 120},
		{name: "Decimal string", input: `"120.50"`, value: 120.5},
		{name: "Null", input: `null`, value: 0},
		{name: "Empty string", input: `""`, value: 0},
		{name: "Garbage", input: `"n/a"`, value: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var n value.Number

			rq.NoError(json.Unmarshal([]byte(tc.input), &n))
			rq.InDelta(tc.value, n.Float64(), 1e-9)
		})
	}

	b, err := json.Marshal(value.Number(20))
	rq.NoError(err)
	rq.Equal(`20`, string(b))
}
