package middlewarex

import (
	"fmt"

	"travel_console/pkg/logx"
)

// maskAndTruncate masks the whole dump before cutting it, so a secret split
// by the cut is still masked. A non-positive maxLen keeps the dump whole.
func maskAndTruncate(masker logx.SensitiveDataMaskerInterface, dump []byte, maxLen int) string {
	dump = masker.Mask(dump)

	if maxLen <= 0 || len(dump) <= maxLen {
		return string(dump)
	}

	return string(fmt.Appendf(dump[:maxLen:maxLen], " [truncated %d bytes]", len(dump)-maxLen))
}
