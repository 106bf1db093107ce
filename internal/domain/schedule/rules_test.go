package schedule

import (
	"reflect"
	"testing"
	"time"
)

// Monday March 3, 2025, 07:00 business time.
func frozenNow(t *testing.T) time.Time {
	t.Helper()
	return at(t, 2025, 3, 3, 7, 0)
}

func TestOfficeHoursRule(t *testing.T) {
	now := frozenNow(t)

	cases := []struct {
		name     string
		start    [2]int // hour, minute
		end      [2]int
		wantCode string
	}{
		{"inside", [2]int{9, 0}, [2]int{9, 30}, ""},
		{"opens at eight", [2]int{8, 0}, [2]int{8, 30}, ""},
		{"ends exactly at close", [2]int{16, 0}, [2]int{17, 0}, ""},
		{"starts before open", [2]int{7, 30}, [2]int{8, 30}, CodeOutsideOfficeHours},
		{"runs past close", [2]int{16, 45}, [2]int{17, 15}, CodeOutsideOfficeHours},
		{"starts at close", [2]int{17, 0}, [2]int{17, 30}, CodeOutsideOfficeHours},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			iv := bounded(1,
				at(t, 2025, 3, 10, tc.start[0], tc.start[1]),
				at(t, 2025, 3, 10, tc.end[0], tc.end[1]),
			)

			v := OfficeHours(iv, now)
			if tc.wantCode == "" {
				if v != nil {
					t.Fatalf("unexpected violation: %+v", v)
				}
				return
			}
			if v == nil || v.Code != tc.wantCode {
				t.Fatalf("expected %s, got %+v", tc.wantCode, v)
			}
		})
	}
}

func TestOfficeHoursSkipsFullDay(t *testing.T) {
	block := fullDay(1, at(t, 2025, 3, 10, 8, 0))
	if v := OfficeHours(block, frozenNow(t)); v != nil {
		t.Fatalf("full-day block must skip office-hours check, got %+v", v)
	}
}

func TestWeekdayRule(t *testing.T) {
	now := frozenNow(t)

	saturday := bounded(1, at(t, 2025, 3, 8, 9, 0), at(t, 2025, 3, 8, 9, 30))
	if v := Weekday(saturday, now); v == nil || v.Code != CodeWeekendNotAllowed {
		t.Fatalf("expected weekend violation, got %+v", v)
	}

	monday := bounded(1, at(t, 2025, 3, 10, 9, 0), at(t, 2025, 3, 10, 9, 30))
	if v := Weekday(monday, now); v != nil {
		t.Fatalf("unexpected violation: %+v", v)
	}
}

func TestNotPastIsZeroTolerance(t *testing.T) {
	now := frozenNow(t)

	past := bounded(1, now.Add(-time.Minute), now.Add(29*time.Minute))
	if v := NotPast(past, now); v == nil || v.Code != CodePastStartTime {
		t.Fatalf("expected past violation, got %+v", v)
	}

	// Starting exactly now is allowed; the floor has no margin.
	exact := bounded(1, now, now.Add(30*time.Minute))
	if v := NotPast(exact, now); v != nil {
		t.Fatalf("unexpected violation: %+v", v)
	}
}

func TestMaxDurationRule(t *testing.T) {
	now := frozenNow(t)
	rule := MaxDuration(MaxAppointmentDuration)

	ok := bounded(1, at(t, 2025, 3, 10, 9, 0), at(t, 2025, 3, 10, 10, 0))
	if v := rule(ok, now); v != nil {
		t.Fatalf("60 minutes is within the cap, got %+v", v)
	}

	long := bounded(1, at(t, 2025, 3, 10, 9, 0), at(t, 2025, 3, 10, 10, 1))
	if v := rule(long, now); v == nil || v.Code != CodeDurationExceeded {
		t.Fatalf("expected duration violation, got %+v", v)
	}
}

func TestValidTimestamps(t *testing.T) {
	now := frozenNow(t)

	var zero Interval
	if v := ValidTimestamps(zero, now); v == nil || v.Code != CodeInvalidTimestamp {
		t.Fatalf("expected invalid timestamp, got %+v", v)
	}

	backwards := bounded(1, at(t, 2025, 3, 10, 10, 0), at(t, 2025, 3, 10, 9, 0))
	if v := ValidTimestamps(backwards, now); v == nil || v.Code != CodeInvalidTimestamp {
		t.Fatalf("expected invalid timestamp for end<=start, got %+v", v)
	}
}

func TestRunCollectsAllViolations(t *testing.T) {
	now := frozenNow(t)

	// Saturday, in the past, outside office hours, too long.
	iv := bounded(1, at(t, 2025, 3, 1, 6, 0), at(t, 2025, 3, 1, 18, 0))

	violations := Run(iv, now, AppointmentRules())
	if len(violations) < 3 {
		t.Fatalf("expected every violated rule reported, got %+v", violations)
	}

	// Past and weekend come before the shape checks.
	if violations[0].Code != CodePastStartTime {
		t.Fatalf("expected past violation first, got %+v", violations[0])
	}

	// Idempotent: same input, same violations.
	again := Run(iv, now, AppointmentRules())
	if !reflect.DeepEqual(violations, again) {
		t.Fatalf("Run is not idempotent: %+v vs %+v", violations, again)
	}
}
