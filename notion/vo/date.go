package vo

import (
	"fmt"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

const dateLayout = "2006-01-02"

// DateOrDateTime is either a calendar date or an RFC3339 datetime. The wire
// string is kept verbatim so offsets survive a round trip.
type DateOrDateTime struct {
	raw string
}

func NewDate(year int, month time.Month, day int) DateOrDateTime {
	return DateOrDateTime{raw: time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(dateLayout)}
}

func NewDateTime(t time.Time) DateOrDateTime {
	return DateOrDateTime{raw: t.Format(time.RFC3339)}
}

// ParseDateOrDateTime picks the datetime form if and only if s contains a T.
func ParseDateOrDateTime(s string) (DateOrDateTime, error) {
	if strings.Contains(s, "T") {
		if _, err := time.Parse(time.RFC3339, s); err != nil {
			return DateOrDateTime{}, fmt.Errorf("invalid datetime %q: %w", s, err)
		}
	} else if _, err := time.Parse(dateLayout, s); err != nil {
		return DateOrDateTime{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOrDateTime{raw: s}, nil
}

func (d DateOrDateTime) IsDateTime() bool {
	return strings.Contains(d.raw, "T")
}

func (d DateOrDateTime) IsZero() bool {
	return d.raw == ""
}

// Time parses the value. Dates resolve to midnight UTC.
func (d DateOrDateTime) Time() (time.Time, error) {
	if d.IsDateTime() {
		return time.Parse(time.RFC3339, d.raw)
	}
	return time.Parse(dateLayout, d.raw)
}

func (d DateOrDateTime) String() string {
	return d.raw
}

func (d DateOrDateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.raw)
}

func (d *DateOrDateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseDateOrDateTime(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// DateValue is a start and optional end. Zone information lives in the
// offsets, time_zone is never emitted.
type DateValue struct {
	Start DateOrDateTime  `json:"start"`
	End   *DateOrDateTime `json:"end,omitempty"`
}

// ParseTimestamp parses the RFC3339 timestamps of object envelopes.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
