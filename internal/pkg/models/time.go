package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// dateLayout is accepted for day-granular query filters
const dateLayout = "2006-01-02"

// clientLayouts are the textual timestamp forms accepted from clients, tried in order.
// Forms without an offset are read as UTC.
var clientLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	dateLayout,
}

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// ParseTime parses an RFC3339 timestamp or a plain date (midnight UTC)
func ParseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(dateLayout, s)
}

// HoursAgo returns the instant the given number of hours before now
func HoursAgo(hours int) time.Time {
	return Now().Add(-time.Duration(hours) * time.Hour)
}

// ParseClientTime reads a timestamp supplied by a client: an ISO-8601 string with or
// without offset, or epoch milliseconds as a number or numeric string. It returns nil
// when raw is absent, null or unreadable.
func ParseClientTime(raw json.RawMessage) *time.Time {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var text string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil
		}
	} else {
		text = string(raw)
	}
	if text == "" {
		return nil
	}

	if ms, err := strconv.ParseFloat(text, 64); err == nil {
		if math.IsNaN(ms) || math.IsInf(ms, 0) {
			return nil
		}
		t := time.UnixMilli(int64(ms)).UTC()
		return &t
	}
	for _, layout := range clientLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return &t
		}
	}
	return nil
}
