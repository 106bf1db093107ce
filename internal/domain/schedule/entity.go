package schedule

import (
	"time"

	"github.com/campusmind/guidance-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Approve(ap *models.Appointment) error {
	if err := CanApprove(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusScheduled)
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// MarkReschedulePending parks an appointment while a new slot is agreed.
// The appointment keeps blocking its day until ApplyReschedule resolves it.
func MarkReschedulePending(ap *models.Appointment) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusReschedulePending)
	return nil
}

// ApplyReschedule moves an appointment to new bounds. Callers must have
// re-run the resolver against the new bounds first, excluding this
// appointment from the scan.
func ApplyReschedule(ap *models.Appointment, start, end time.Time) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	ap.StartTime = start
	ap.EndTime = end
	ap.Status = string(StatusScheduled)
	return nil
}

// Expire marks a past-dated appointment that never took place.
func Expire(ap *models.Appointment) {
	ap.Status = string(StatusExpired)
}
