package schedule

import (
	"context"

	"github.com/campusmind/guidance-scheduler/internal/audit"
	domain "github.com/campusmind/guidance-scheduler/internal/domain/schedule"
	"github.com/campusmind/guidance-scheduler/internal/httperr"
	"github.com/campusmind/guidance-scheduler/internal/models"
)

// RequestReschedule parks an appointment in reschedule_pending until a
// new slot is agreed. The appointment keeps blocking its original day.
type RequestReschedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRequestReschedule(
	repo domain.Repository,
	auditor *audit.Dispatcher,
) *RequestReschedule {
	return &RequestReschedule{
		repo:  repo,
		audit: auditor,
	}
}

func (uc *RequestReschedule) Execute(
	ctx context.Context,
	counselorID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForCounselor(ctx, appointmentID, counselorID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.MarkReschedulePending(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CounselorID: counselorID,
		Action:      "appointment_reschedule_requested",
		Entity:      "appointment",
		EntityID:    &ap.ID,
	})

	return ap, nil
}
