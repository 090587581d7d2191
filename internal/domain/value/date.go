package value

import (
	"strconv"
	"time"
)

const DateLayout = time.DateOnly

// Date is a calendar date kept verbatim as received. The empty Date is
// null.
type Date string

func (d Date) IsNull() bool {
	return d == ""
}

func (d Date) String() string {
	return string(d)
}

// Time parses the date; ok is false for null or unparseable dates.
func (d Date) Time() (time.Time, bool) {
	if d.IsNull() {
		return time.Time{}, false
	}

	s := string(d)
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsNull() {
		return jsonNull, nil
	}

	return []byte(strconv.Quote(string(d))), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	text, _ := scalarText(b)
	*d = Date(text)

	return nil
}
