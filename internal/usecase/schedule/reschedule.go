package schedule

import (
	"context"
	"time"

	"github.com/campusmind/guidance-scheduler/internal/audit"
	domain "github.com/campusmind/guidance-scheduler/internal/domain/schedule"
	"github.com/campusmind/guidance-scheduler/internal/httperr"
	"github.com/campusmind/guidance-scheduler/internal/lock"
	"github.com/campusmind/guidance-scheduler/internal/models"
	"github.com/campusmind/guidance-scheduler/internal/timezone"
)

type RescheduleAppointmentInput struct {
	CounselorID   uint
	AppointmentID uint

	Date        string
	Time        string
	DurationMin int
}

// RescheduleAppointment moves an appointment to new bounds. The new
// bounds run through the full resolver with the appointment itself
// excluded from the conflict scan, so it cannot collide with its own
// current slot.
type RescheduleAppointment struct {
	repo     domain.Repository
	resolver *domain.Resolver
	locker   *lock.OwnerLocker
	audit    *audit.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	resolver *domain.Resolver,
	locker *lock.OwnerLocker,
	auditor *audit.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:     repo,
		resolver: resolver,
		locker:   locker,
		audit:    auditor,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForCounselor(ctx, in.AppointmentID, in.CounselorID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	durationMin := in.DurationMin
	if durationMin <= 0 {
		durationMin = DefaultSessionMinutes
	}
	end := start.Add(time.Duration(durationMin) * time.Minute)

	proposed := domain.Interval{
		ID:        ap.ID,
		OwnerID:   in.CounselorID,
		Kind:      domain.KindAppointment,
		SubjectID: ap.StudentID,
		Start:     start,
		End:       &end,
	}

	err = uc.locker.WithOwnerLock(ctx, in.CounselorID, func() error {
		dayStart, dayEnd := businessDayRange(start)

		existing, err := uc.repo.ListIntervals(ctx, in.CounselorID, dayStart, dayEnd)
		if err != nil {
			return err
		}

		decision := uc.resolver.ResolveWith(proposed, existing, domain.ResolveOptions{
			Rules:     domain.AppointmentRules(),
			ExcludeID: ap.ID,
		})
		if !decision.Accepted {
			return httperr.ErrBusinessMsg(decision.Code, decision.Message)
		}

		if err := domain.ApplyReschedule(ap, start, end); err != nil {
			return err
		}

		return uc.repo.UpdateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CounselorID: in.CounselorID,
		Action:      "appointment_rescheduled",
		Entity:      "appointment",
		EntityID:    &ap.ID,
	})

	return ap, nil
}
