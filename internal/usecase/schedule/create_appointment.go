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

// DefaultSessionMinutes is what a counseling session runs when the
// request does not say otherwise. The hard cap lives in the rules.
const DefaultSessionMinutes = 30

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CounselorID uint
	StudentID   uint

	Date        string // "2006-01-02" in business time
	Time        string // "15:04" in business time
	DurationMin int
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	resolver *domain.Resolver
	locker   *lock.OwnerLocker
	audit    *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	resolver *domain.Resolver,
	locker *lock.OwnerLocker,
	auditor *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		resolver: resolver,
		locker:   locker,
		audit:    auditor,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if _, err := uc.repo.GetStudentByID(ctx, in.StudentID); err != nil {
		return nil, httperr.ErrBusiness("student_not_found")
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
		OwnerID:   in.CounselorID,
		Kind:      domain.KindAppointment,
		SubjectID: in.StudentID,
		Start:     start,
		End:       &end,
	}

	var ap *models.Appointment

	err = uc.locker.WithOwnerLock(ctx, in.CounselorID, func() error {
		dayStart, dayEnd := businessDayRange(start)

		existing, err := uc.repo.ListIntervals(ctx, in.CounselorID, dayStart, dayEnd)
		if err != nil {
			return err
		}

		decision := uc.resolver.Resolve(proposed, existing)
		if !decision.Accepted {
			return httperr.ErrBusinessMsg(decision.Code, decision.Message)
		}

		ap = &models.Appointment{
			CounselorID: in.CounselorID,
			StudentID:   in.StudentID,
			StartTime:   start,
			EndTime:     end,
			Status:      string(domain.InitialStatus()),
			Notes:       in.Notes,
		}

		return uc.repo.CreateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CounselorID: in.CounselorID,
		Action:      "appointment_created",
		Entity:      "appointment",
		EntityID:    &ap.ID,
	})

	return ap, nil
}

// businessDayRange brackets a business calendar day at midnight, wide
// enough to catch every interval the resolver might conflict with.
func businessDayRange(t time.Time) (time.Time, time.Time) {
	loc := timezone.Location()
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.Add(24 * time.Hour)
}
