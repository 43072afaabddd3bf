package archive

import (
	"fmt"

	"github.com/webmeld/snapdiff/errs"
)

// TimestampLen is the required length of a capture timestamp
// (YYYYMMDDHHMMSS).
const TimestampLen = 14

// Capture is one timestamped fingerprint observation.
type Capture struct {
	// Timestamp is a 14-digit YYYYMMDDHHMMSS string.
	Timestamp string
	// Hash is the serialized fingerprint, treated as an opaque string.
	Hash string
}

// parseDigits parses s as an unsigned decimal integer, rejecting any
// non-digit byte.
func parseDigits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}

	return n, true
}

// parseTimestamp splits ts into its date fields and the HHMMSS suffix.
//
// Validation covers the digit layout and impossible field values (month 13,
// hour 24, ...) but is deliberately not calendar-aware: February 31 passes.
func parseTimestamp(ts string) (year, month, day int, suffix string, err error) {
	if len(ts) != TimestampLen {
		return 0, 0, 0, "", fmt.Errorf("%w: %q: length %d, want %d", errs.ErrMalformedTimestamp, ts, len(ts), TimestampLen)
	}

	year, ok := parseDigits(ts[0:4])
	if !ok {
		return 0, 0, 0, "", fmt.Errorf("%w: %q: non-digit year", errs.ErrMalformedTimestamp, ts)
	}
	month, ok = parseDigits(ts[4:6])
	if !ok || month < 1 || month > 12 {
		return 0, 0, 0, "", fmt.Errorf("%w: %q: bad month", errs.ErrMalformedTimestamp, ts)
	}
	day, ok = parseDigits(ts[6:8])
	if !ok || day < 1 || day > 31 {
		return 0, 0, 0, "", fmt.Errorf("%w: %q: bad day", errs.ErrMalformedTimestamp, ts)
	}
	if hour, ok := parseDigits(ts[8:10]); !ok || hour > 23 {
		return 0, 0, 0, "", fmt.Errorf("%w: %q: bad hour", errs.ErrMalformedTimestamp, ts)
	}
	if minute, ok := parseDigits(ts[10:12]); !ok || minute > 59 {
		return 0, 0, 0, "", fmt.Errorf("%w: %q: bad minute", errs.ErrMalformedTimestamp, ts)
	}
	if second, ok := parseDigits(ts[12:14]); !ok || second > 59 {
		return 0, 0, 0, "", fmt.Errorf("%w: %q: bad second", errs.ErrMalformedTimestamp, ts)
	}

	return year, month, day, ts[8:], nil
}
