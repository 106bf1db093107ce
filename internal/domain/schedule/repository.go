package schedule

import (
	"context"
	"time"

	"github.com/campusmind/guidance-scheduler/internal/models"
)

type Repository interface {
	// -------- Counselor / Student --------
	GetCounselorByID(
		ctx context.Context,
		id uint,
	) (*models.Counselor, error)

	GetStudentByID(
		ctx context.Context,
		id uint,
	) (*models.Student, error)

	// -------- Conflict-relevant intervals --------

	// ListIntervals returns every conflict-relevant interval for the
	// owner whose start falls in [start, end): active appointments plus
	// all blocks, ordered by start ascending. The resolver depends on
	// that ordering for deterministic conflict reporting.
	ListIntervals(
		ctx context.Context,
		ownerID uint,
		start time.Time,
		end time.Time,
	) ([]Interval, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentForCounselor(
		ctx context.Context,
		appointmentID uint,
		counselorID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForPeriod(
		ctx context.Context,
		counselorID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ExpirePastAppointments(
		ctx context.Context,
		counselorID uint,
		now time.Time,
	) error

	// -------- Block --------
	CreateBlock(
		ctx context.Context,
		b *models.Block,
	) error

	ListBlocks(
		ctx context.Context,
		counselorID uint,
	) ([]models.Block, error)

	ListBlocksByTag(
		ctx context.Context,
		counselorID uint,
		tag string,
	) ([]models.Block, error)

	DeleteBlock(
		ctx context.Context,
		blockID uint,
		counselorID uint,
	) error
}
