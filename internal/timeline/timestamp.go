package timeline

import (
	"strings"
	"time"
)

// Instant layouts tried in order after normalization. Layouts without a zone
// are interpreted as UTC by time.Parse.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp coerces the textual timestamps found in call and message
// records into a comparable instant. Complete ISO instants parse as-is; a
// space-separated naive date-time ("2024-01-10 14:30") is treated as UTC by
// swapping the space for a T and appending Z; a bare date parses as UTC
// midnight. The second return is false when the input is unusable - the
// caller excludes the record instead of failing the pipeline.
func ParseTimestamp(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	if !strings.ContainsRune(s, 'T') && strings.ContainsRune(s, ' ') {
		s = strings.Replace(s, " ", "T", 1)
		if !hasZone(s) {
			s += "Z"
		}
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// hasZone reports whether the time portion of an ISO-style string carries an
// explicit zone suffix (Z or a +hh:mm/-hh:mm offset).
func hasZone(s string) bool {
	if strings.HasSuffix(s, "Z") {
		return true
	}
	i := strings.IndexRune(s, 'T')
	if i < 0 {
		return false
	}
	return strings.ContainsAny(s[i+1:], "+-")
}
