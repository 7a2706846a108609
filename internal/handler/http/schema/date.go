package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"time"
)

var errInvalidDate = errors.New("invalid date")

// dateLayouts are tried in order for string dates. Layouts without a zone are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Date is a point in time decoded leniently from JSON: RFC 3339 strings,
// zone-less date-times, bare YYYY-MM-DD dates and numeric epoch milliseconds.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return errInvalidDate
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return errInvalidDate
		}
		t, err := ParseDate(s)
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	}

	var ms float64
	if err := json.Unmarshal(raw, &ms); err != nil || math.IsNaN(ms) || math.IsInf(ms, 0) {
		return errInvalidDate
	}
	// ECMAScript dates cover ±8.64e15 ms around the epoch.
	if math.Abs(ms) > 8.64e15 {
		return errInvalidDate
	}
	d.Time = time.UnixMilli(int64(ms)).UTC()
	return nil
}

// MarshalJSON writes the date as an RFC 3339 string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.UTC().Format(time.RFC3339Nano))
}

// ParseDate parses s with the accepted string layouts.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errInvalidDate
}
