package value

import (
	"math"
	"strconv"
	"strings"
)

// Amount is a money value as typed into the editor: either a number or
// empty. Non-numeric input counts as provided but is worth 0.
type Amount struct {
	value   float64
	present bool
}

func NewAmount(v float64) Amount {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}

	return Amount{value: v, present: true}
}

// ParseAmount never fails. Blank input yields an empty Amount.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Amount{present: true}
	}

	return NewAmount(v)
}

func (a Amount) IsEmpty() bool {
	return !a.present
}

// Float64 returns the numeric value; empty amounts are 0.
func (a Amount) Float64() float64 {
	return a.value
}

func (a Amount) String() string {
	if !a.present {
		return ""
	}

	return strconv.FormatFloat(a.value, 'f', -1, 64)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.present {
		return []byte(`""`), nil
	}

	return []byte(strconv.FormatFloat(a.value, 'f', -1, 64)), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	text, ok := scalarText(b)
	if !ok {
		*a = Amount{}
		return nil
	}

	*a = ParseAmount(text)

	return nil
}
