package parsers

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/dude333/histquote"
	"github.com/pkg/errors"
)

// Layouts accepted for textual dates.
var dateLayouts = []string{
	histquote.DateLayout,
	"20060102",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02",
}

const (
	// Epochs at or above this magnitude are taken as milliseconds.
	epochMillis = 1e11
	// Largest epoch, in milliseconds, accepted as a date.
	maxEpochMillis = 8.2e15
)

// parseDate converts a date string into a calendar day (UTC midnight).
// The day is the one written in the string, whatever its offset.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncateDay(t), nil
		}
	}
	return time.Time{}, errors.Wrapf(histquote.ErrInvalidDate, "%q", s)
}

// parseEpoch converts a Unix timestamp, in seconds or milliseconds,
// into a calendar day (UTC midnight).
func parseEpoch(n json.Number) (time.Time, error) {
	f, err := n.Float64()
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return time.Time{}, errors.Wrapf(histquote.ErrInvalidDate, "%s", n)
	}
	if math.Abs(f) < epochMillis {
		return truncateDay(time.Unix(int64(f), 0).UTC()), nil
	}
	if math.Abs(f) > maxEpochMillis {
		return time.Time{}, errors.Wrapf(histquote.ErrInvalidDate, "%s out of range", n)
	}
	ms := int64(f)
	return truncateDay(time.Unix(ms/1000, (ms%1000)*int64(time.Millisecond)).UTC()), nil
}

// truncateDay keeps the calendar day of 't' in its own location.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
