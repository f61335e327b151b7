package repository

import (
    "regexp"
    "time"

    "github.com/iliyamo/hotel-reservation/internal/model"
)

// Clock supplies the reference date used as "today" everywhere in the
// core: validating that bookings do not start in the past, partitioning
// history from upcoming bookings and computing room status.  A single
// injected clock keeps all of these consistent and makes the ledger
// deterministic under test.
type Clock interface {
    Today() time.Time
}

// SystemClock derives the reference date from the live UTC clock,
// truncated to midnight.
type SystemClock struct{}

func (SystemClock) Today() time.Time {
    y, m, d := time.Now().UTC().Date()
    return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FixedClock always reports the same reference date.  It is used when
// REFERENCE_DATE is configured and throughout the tests.
type FixedClock struct {
    Date time.Time
}

func (c FixedClock) Today() time.Time { return c.Date }

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date.  The
// shape is checked before parsing so that e.g. "2025-4-5" is rejected
// rather than silently accepted.
func ParseDate(s string) (time.Time, error) {
    if !datePattern.MatchString(s) {
        return time.Time{}, ErrInvalidDate
    }
    t, err := time.Parse(model.DateLayout, s)
    if err != nil {
        return time.Time{}, ErrInvalidDate
    }
    return t, nil
}
