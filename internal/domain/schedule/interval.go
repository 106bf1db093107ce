package schedule

import (
	"time"

	"github.com/campusmind/guidance-scheduler/internal/models"
	"github.com/campusmind/guidance-scheduler/internal/timezone"
)

// Office hours in business time. A full-day block spans exactly this
// window on its calendar day.
const (
	OfficeOpenHour  = 8
	OfficeCloseHour = 17
)

type Kind string

const (
	KindAppointment Kind = "appointment"
	KindBlock       Kind = "block"
)

// Interval is the atomic bookable/blockable unit. Appointments and blocks
// both collapse into this shape for conflict checks.
type Interval struct {
	ID      uint
	OwnerID uint
	Kind    Kind

	// SubjectID is set for appointments only (the student).
	SubjectID uint

	Start time.Time

	// End is nil for a full-day block.
	End *time.Time
}

func (iv Interval) FullDay() bool {
	return iv.End == nil
}

// Bounds returns the effective [start, end) window in business time.
// A full-day interval spans the fixed office hours of its calendar day.
func (iv Interval) Bounds() (time.Time, time.Time) {
	loc := timezone.Location()
	start := iv.Start.In(loc)
	if iv.End != nil {
		return start, iv.End.In(loc)
	}
	open := time.Date(start.Year(), start.Month(), start.Day(), OfficeOpenHour, 0, 0, 0, loc)
	closed := time.Date(start.Year(), start.Month(), start.Day(), OfficeCloseHour, 0, 0, 0, loc)
	return open, closed
}

func SameBusinessDay(a, b Interval) bool {
	loc := timezone.Location()
	as := a.Start.In(loc)
	bs := b.Start.In(loc)
	return as.Year() == bs.Year() && as.Month() == bs.Month() && as.Day() == bs.Day()
}

// Overlaps is the single conflict predicate for the whole engine. Bounded
// intervals overlap per the half-open rule (back-to-back intervals sharing
// an endpoint do not conflict); a full-day interval conflicts with anything
// on the same business day regardless of time of day.
func Overlaps(a, b Interval) bool {
	if a.FullDay() || b.FullDay() {
		return SameBusinessDay(a, b)
	}

	aStart, aEnd := a.Bounds()
	bStart, bEnd := b.Bounds()

	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FromAppointment collapses a stored appointment into the comparable shape.
func FromAppointment(ap *models.Appointment) Interval {
	end := ap.EndTime
	return Interval{
		ID:        ap.ID,
		OwnerID:   ap.CounselorID,
		Kind:      KindAppointment,
		SubjectID: ap.StudentID,
		Start:     ap.StartTime,
		End:       &end,
	}
}

// FromBlock collapses a stored block; a nil EndTime survives as a full-day
// interval.
func FromBlock(b *models.Block) Interval {
	return Interval{
		ID:      b.ID,
		OwnerID: b.CounselorID,
		Kind:    KindBlock,
		Start:   b.StartTime,
		End:     b.EndTime,
	}
}
