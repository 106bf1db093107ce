package schedule

import (
	"context"
	"time"

	domain "github.com/campusmind/guidance-scheduler/internal/domain/schedule"
	"github.com/campusmind/guidance-scheduler/internal/dto"
	"github.com/campusmind/guidance-scheduler/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewListAppointmentsByDate(
	repo domain.Repository,
	clock timezone.Clock,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo:  repo,
		clock: clock,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	counselorID uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	// Lazy sweep: anything active whose end already passed flips to
	// expired before the day is listed.
	if err := uc.repo.ExpirePastAppointments(ctx, counselorID, uc.clock.Now()); err != nil {
		return nil, err
	}

	start, end := businessDayRange(date)

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		counselorID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			Status:      ap.Status,
			StudentName: ap.Student.Name,
			Notes:       ap.Notes,
		})
	}

	return out, nil
}
