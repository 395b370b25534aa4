package shared

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// MinInstant is what unparsable timestamps map to, so malformed items sort last.
var MinInstant = time.Time{}

// IsoLayout is how timestamps are written to cache documents.
const IsoLayout = "2006-01-02T15:04:05.000000Z07:00"

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseInstant parses ISO-8601 forms; values without an offset are taken as UTC.
func ParseInstant(val string) time.Time {
	val = strings.TrimSpace(val)
	if val == "" {
		return MinInstant
	}
	if t, err := time.Parse(time.RFC3339Nano, val); err == nil {
		return t.UTC()
	}
	// Space separator with an offset
	if t, err := time.Parse("2006-01-02 15:04:05.999999999Z07:00", val); err == nil {
		return t.UTC()
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, val, time.UTC); err == nil {
			return t
		}
	}
	return MinInstant
}

// InstantOf accepts strings as well as epoch seconds in any JSON numeric form.
func InstantOf(val any) time.Time {
	switch v := val.(type) {
	case string:
		return ParseInstant(v)
	case time.Time:
		return v.UTC()
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return MinInstant
		}
		return epochToInstant(f)
	case float64:
		return epochToInstant(v)
	case float32:
		return epochToInstant(float64(v))
	case int:
		return time.Unix(int64(v), 0).UTC()
	case int64:
		return time.Unix(v, 0).UTC()
	}
	return MinInstant
}

func epochToInstant(f float64) time.Time {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return MinInstant
	}
	sec, frac := math.Modf(f)
	return time.Unix(int64(sec), int64(frac*1e9)).UTC()
}

// EpochString renders epoch seconds the way reddit's created_utc is stored.
func EpochString(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}

func FormatInstant(t time.Time) string {
	return t.UTC().Format(IsoLayout)
}
