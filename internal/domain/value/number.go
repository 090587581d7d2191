package value

import (
	"math"
	"strconv"
	"strings"
)

// Number is a numeric field of a persisted record. Decimal columns may be
// serialised as strings; anything unparseable reads as 0.
type Number float64

func (n Number) Float64() float64 {
	return float64(n)
}

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		f = 0
	}

	return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

func (n *Number) UnmarshalJSON(b []byte) error {
	text, ok := scalarText(b)
	if !ok {
		*n = 0
		return nil
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		f = 0
	}

	*n = Number(f)

	return nil
}
