package timezone

import (
	"errors"
	"time"
)

// BusinessTimezone is the fixed reference zone for every scheduling rule.
// Counselors and students may connect from anywhere; the office runs on
// Philippine Time.
const BusinessTimezone = "Asia/Manila"

var ErrInvalidTimestamp = errors.New("invalid_timestamp")

func Location() *time.Location {
	loc, err := time.LoadLocation(BusinessTimezone)
	if err != nil {
		// Asia/Manila has no DST; UTC+8 is exact.
		return time.FixedZone("PHT", 8*60*60)
	}
	return loc
}

// ToBusiness converts a persisted UTC instant into business time.
func ToBusiness(t time.Time) (time.Time, error) {
	if t.IsZero() {
		return time.Time{}, ErrInvalidTimestamp
	}
	return t.In(Location()), nil
}

// ToUTC is the inverse of ToBusiness; the pair round-trips exactly.
func ToUTC(t time.Time) (time.Time, error) {
	if t.IsZero() {
		return time.Time{}, ErrInvalidTimestamp
	}
	return t.UTC(), nil
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Clock is the single side-effecting dependency of the scheduling engine.
// Production code uses SystemClock; tests freeze time with FixedClock.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return Now()
}

type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time {
	return c.T.In(Location())
}
