package schedule

import (
	"context"

	"github.com/campusmind/guidance-scheduler/internal/audit"
	domain "github.com/campusmind/guidance-scheduler/internal/domain/schedule"
	"github.com/campusmind/guidance-scheduler/internal/httperr"
	"github.com/campusmind/guidance-scheduler/internal/models"
	"github.com/campusmind/guidance-scheduler/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	clock timezone.Clock
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	clock timezone.Clock,
	auditor *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		clock: clock,
		audit: auditor,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	counselorID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForCounselor(ctx, appointmentID, counselorID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Cancel(ap, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CounselorID: counselorID,
		Action:      "appointment_cancelled",
		Entity:      "appointment",
		EntityID:    &ap.ID,
	})

	return ap, nil
}
