package schedule

import (
	"fmt"
	"time"

	"github.com/campusmind/guidance-scheduler/internal/timezone"
)

// Reason codes surfaced to callers. Handlers map these to HTTP statuses
// and user-facing copy; the engine never formats for a UI.
const (
	CodeInvalidTimestamp     = "invalid_timestamp"
	CodePastStartTime        = "past_start_time"
	CodeWeekendNotAllowed    = "weekend_not_allowed"
	CodeOutsideOfficeHours   = "outside_office_hours"
	CodeDurationExceeded     = "duration_exceeded"
	CodeConflict             = "conflict"
	CodeDuplicateAppointment = "duplicate_active_appointment"
)

// MaxAppointmentDuration caps a single counseling session. Blocks are
// uncapped.
const MaxAppointmentDuration = 60 * time.Minute

type Violation struct {
	Code    string
	Message string
}

// Rule checks one constraint on a proposed interval against a frozen now.
type Rule func(iv Interval, now time.Time) *Violation

func ValidTimestamps(iv Interval, now time.Time) *Violation {
	if iv.Start.IsZero() {
		return &Violation{CodeInvalidTimestamp, "Start time is missing or malformed."}
	}
	if iv.End != nil && !iv.End.After(iv.Start) {
		return &Violation{CodeInvalidTimestamp, "End time must be after start time."}
	}
	return nil
}

// NotPast is a zero-tolerance floor: the start must not be before now.
func NotPast(iv Interval, now time.Time) *Violation {
	if iv.Start.Before(now) {
		return &Violation{CodePastStartTime, "Start time is already in the past."}
	}
	return nil
}

func Weekday(iv Interval, now time.Time) *Violation {
	wd := iv.Start.In(timezone.Location()).Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return &Violation{CodeWeekendNotAllowed, "The office is closed on weekends."}
	}
	return nil
}

// OfficeHours requires a bounded interval to sit entirely inside the
// office window: start hour in [open, close), end no later than close.
// Full-day intervals span the window by definition and skip the check.
func OfficeHours(iv Interval, now time.Time) *Violation {
	if iv.FullDay() {
		return nil
	}

	loc := timezone.Location()
	start := iv.Start.In(loc)
	end := iv.End.In(loc)

	closed := time.Date(start.Year(), start.Month(), start.Day(), OfficeCloseHour, 0, 0, 0, loc)

	if start.Hour() < OfficeOpenHour || start.Hour() >= OfficeCloseHour || end.After(closed) {
		return &Violation{
			CodeOutsideOfficeHours,
			fmt.Sprintf("Office hours are %02d:00 to %02d:00.", OfficeOpenHour, OfficeCloseHour),
		}
	}
	return nil
}

func MaxDuration(cap time.Duration) Rule {
	return func(iv Interval, now time.Time) *Violation {
		if iv.FullDay() {
			return nil
		}
		if iv.End.Sub(iv.Start) > cap {
			return &Violation{
				CodeDurationExceeded,
				fmt.Sprintf("Sessions are limited to %d minutes.", int(cap.Minutes())),
			}
		}
		return nil
	}
}

// Rule sets, ordered so the cheap calendar checks come before anything
// that depends on the interval's shape.

func AppointmentRules() []Rule {
	return []Rule{
		ValidTimestamps,
		NotPast,
		Weekday,
		OfficeHours,
		MaxDuration(MaxAppointmentDuration),
	}
}

// LeaveDayRules apply to each generated day of a bulk block or month
// leave: weekdays only, never in the past.
func LeaveDayRules() []Rule {
	return []Rule{ValidTimestamps, NotPast, Weekday}
}

// ManualBlockRules apply to a block a counselor creates by hand. A manual
// full-day block may land on any day of the week; a partial block must fit
// office hours.
func ManualBlockRules() []Rule {
	return []Rule{ValidTimestamps, NotPast, OfficeHours}
}

// Run evaluates every rule and returns all violations found, in rule
// order, so callers can report the first or all of them.
func Run(iv Interval, now time.Time, rules []Rule) []Violation {
	var out []Violation
	for _, rule := range rules {
		if v := rule(iv, now); v != nil {
			out = append(out, *v)
		}
	}
	return out
}
