package schedule

import "github.com/campusmind/guidance-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending           Status = "pending"
	StatusScheduled         Status = "scheduled"
	StatusOngoing           Status = "ongoing"
	StatusReschedulePending Status = "reschedule_pending"
	StatusCancelled         Status = "cancelled"
	StatusExpired           Status = "expired"
)

// Active reports whether the appointment still holds its slot for
// conflict purposes. A reschedule that has not been resolved keeps
// blocking the student's day until it is.
func (s Status) Active() bool {
	switch s {
	case StatusPending, StatusScheduled, StatusOngoing, StatusReschedulePending:
		return true
	}
	return false
}

// ActiveStatuses is the SQL-friendly form of Status.Active.
func ActiveStatuses() []string {
	return []string{
		string(StatusPending),
		string(StatusScheduled),
		string(StatusOngoing),
		string(StatusReschedulePending),
	}
}

// ===============================
// Validations
// ===============================

func CanApprove(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	switch current {
	case StatusPending, StatusScheduled, StatusReschedulePending:
		return nil
	}
	return httperr.ErrBusiness("invalid_state")
}

func CanReschedule(current Status) error {
	switch current {
	case StatusPending, StatusScheduled, StatusReschedulePending:
		return nil
	}
	return httperr.ErrBusiness("invalid_state")
}

func InitialStatus() Status {
	return StatusPending
}
