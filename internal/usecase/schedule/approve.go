package schedule

import (
	"context"

	"github.com/campusmind/guidance-scheduler/internal/audit"
	domain "github.com/campusmind/guidance-scheduler/internal/domain/schedule"
	"github.com/campusmind/guidance-scheduler/internal/httperr"
	"github.com/campusmind/guidance-scheduler/internal/models"
)

type ApproveAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewApproveAppointment(
	repo domain.Repository,
	auditor *audit.Dispatcher,
) *ApproveAppointment {
	return &ApproveAppointment{
		repo:  repo,
		audit: auditor,
	}
}

func (uc *ApproveAppointment) Execute(
	ctx context.Context,
	counselorID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForCounselor(ctx, appointmentID, counselorID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Approve(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CounselorID: counselorID,
		Action:      "appointment_approved",
		Entity:      "appointment",
		EntityID:    &ap.ID,
	})

	return ap, nil
}
