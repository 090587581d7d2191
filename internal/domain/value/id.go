package value

import (
	"strconv"
)

// ID is an opaque record identifier issued by the data service. It may
// arrive as a JSON number or string.
type ID string

func (id ID) IsZero() bool {
	return id == ""
}

func (id ID) String() string {
	return string(id)
}

func (id ID) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return jsonNull, nil
	}

	if isIntegerLiteral(string(id)) {
		return []byte(id), nil
	}

	return []byte(strconv.Quote(string(id))), nil
}

func (id *ID) UnmarshalJSON(b []byte) error {
	text, _ := scalarText(b)
	*id = ID(text)

	return nil
}

func isIntegerLiteral(s string) bool {
	if s == "" || len(s) > 18 {
		return false
	}

	if s == "0" {
		return true
	}

	if s[0] < '1' || s[0] > '9' {
		return false
	}

	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
