package schedule

import (
	"context"
	"time"

	domain "github.com/campusmind/guidance-scheduler/internal/domain/schedule"
	"github.com/campusmind/guidance-scheduler/internal/timezone"
)

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute returns the free slots of a counselor's business day: office
// hours walked in fixed steps, minus anything the conflict predicate
// says is taken.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	counselorID uint,
	date time.Time,
	slotMinutes int,
) ([]TimeSlot, error) {

	if slotMinutes <= 0 {
		slotMinutes = DefaultSessionMinutes
	}

	loc := timezone.Location()
	local := date.In(loc)

	dayOpen := time.Date(local.Year(), local.Month(), local.Day(), domain.OfficeOpenHour, 0, 0, 0, loc)
	dayClose := time.Date(local.Year(), local.Month(), local.Day(), domain.OfficeCloseHour, 0, 0, 0, loc)

	// Weekends have no bookable slots at all.
	if wd := dayOpen.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return []TimeSlot{}, nil
	}

	dayStart, dayEnd := businessDayRange(dayOpen)
	existing, err := uc.repo.ListIntervals(ctx, counselorID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	slotDuration := time.Duration(slotMinutes) * time.Minute
	slots := []TimeSlot{}

	for cur := dayOpen; !cur.Add(slotDuration).After(dayClose); cur = cur.Add(slotDuration) {
		slotEnd := cur.Add(slotDuration)

		candidate := domain.Interval{
			OwnerID: counselorID,
			Kind:    domain.KindAppointment,
			Start:   cur,
			End:     &slotEnd,
		}

		conflict := false
		for _, iv := range existing {
			if domain.Overlaps(candidate, iv) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, TimeSlot{
				Start: cur.Format("15:04"),
				End:   slotEnd.Format("15:04"),
			})
		}
	}

	return slots, nil
}
