package value

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var jsonNull = []byte("null") //nolint:gochecknoglobals

// scalarText returns the text of a JSON scalar: strings are unquoted,
// numbers and literals are returned verbatim. ok is false for null.
func scalarText(b []byte) (text string, ok bool) {
	b = bytes.TrimSpace(b)

	if len(b) == 0 || bytes.Equal(b, jsonNull) {
		return "", false
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return string(bytes.Trim(b, `"`)), true
		}

		return s, true
	}

	return string(b), true
}
