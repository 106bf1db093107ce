package schedule

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	domain "github.com/campusmind/guidance-scheduler/internal/domain/schedule"
	"github.com/campusmind/guidance-scheduler/internal/httperr"
	"github.com/campusmind/guidance-scheduler/internal/models"
	"github.com/campusmind/guidance-scheduler/internal/timezone"
)

// fakeStore is an in-memory domain.Repository for usecase tests. It
// mirrors the real repository's contract: ListIntervals returns active
// appointments plus all blocks ordered by start.
type fakeStore struct {
	nextID uint

	counselors   map[uint]*models.Counselor
	students     map[uint]*models.Student
	appointments []models.Appointment
	blocks       []models.Block

	failDeleteIDs map[uint]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		counselors: map[uint]*models.Counselor{
			1: {ID: 1, Name: "Ms. Reyes"},
		},
		students: map[uint]*models.Student{
			42: {ID: 42, Name: "Juan dela Cruz"},
			43: {ID: 43, Name: "Maria Santos"},
		},
		failDeleteIDs: map[uint]bool{},
	}
}

func (s *fakeStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) GetCounselorByID(ctx context.Context, id uint) (*models.Counselor, error) {
	c, ok := s.counselors[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return c, nil
}

func (s *fakeStore) GetStudentByID(ctx context.Context, id uint) (*models.Student, error) {
	st, ok := s.students[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return st, nil
}

func (s *fakeStore) ListIntervals(ctx context.Context, ownerID uint, start, end time.Time) ([]domain.Interval, error) {
	var out []domain.Interval

	var apps []models.Appointment
	for _, ap := range s.appointments {
		if ap.CounselorID != ownerID || !domain.Status(ap.Status).Active() {
			continue
		}
		if ap.StartTime.Before(start) || !ap.StartTime.Before(end) {
			continue
		}
		apps = append(apps, ap)
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].StartTime.Before(apps[j].StartTime) })
	for i := range apps {
		out = append(out, domain.FromAppointment(&apps[i]))
	}

	var blocks []models.Block
	for _, b := range s.blocks {
		if b.CounselorID != ownerID {
			continue
		}
		if b.StartTime.Before(start) || !b.StartTime.Before(end) {
			continue
		}
		blocks = append(blocks, b)
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].StartTime.Before(blocks[j].StartTime) })
	for i := range blocks {
		out = append(out, domain.FromBlock(&blocks[i]))
	}

	return out, nil
}

func (s *fakeStore) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	ap.ID = s.id()
	s.appointments = append(s.appointments, *ap)
	return nil
}

func (s *fakeStore) GetAppointmentForCounselor(ctx context.Context, appointmentID, counselorID uint) (*models.Appointment, error) {
	for i := range s.appointments {
		if s.appointments[i].ID == appointmentID && s.appointments[i].CounselorID == counselorID {
			ap := s.appointments[i]
			return &ap, nil
		}
	}
	return nil, errors.New("record not found")
}

func (s *fakeStore) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	for i := range s.appointments {
		if s.appointments[i].ID == ap.ID {
			s.appointments[i] = *ap
			return nil
		}
	}
	return errors.New("record not found")
}

func (s *fakeStore) ListAppointmentsForPeriod(ctx context.Context, counselorID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range s.appointments {
		if ap.CounselorID != counselorID {
			continue
		}
		if ap.StartTime.Before(start) || !ap.StartTime.Before(end) {
			continue
		}
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (s *fakeStore) ExpirePastAppointments(ctx context.Context, counselorID uint, now time.Time) error {
	for i := range s.appointments {
		ap := &s.appointments[i]
		if ap.CounselorID == counselorID && domain.Status(ap.Status).Active() && ap.EndTime.Before(now) {
			ap.Status = string(domain.StatusExpired)
		}
	}
	return nil
}

func (s *fakeStore) CreateBlock(ctx context.Context, b *models.Block) error {
	b.ID = s.id()
	s.blocks = append(s.blocks, *b)
	return nil
}

func (s *fakeStore) ListBlocks(ctx context.Context, counselorID uint) ([]models.Block, error) {
	var out []models.Block
	for _, b := range s.blocks {
		if b.CounselorID == counselorID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (s *fakeStore) ListBlocksByTag(ctx context.Context, counselorID uint, tag string) ([]models.Block, error) {
	var out []models.Block
	for _, b := range s.blocks {
		if b.CounselorID == counselorID && b.GroupTag == tag {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (s *fakeStore) DeleteBlock(ctx context.Context, blockID, counselorID uint) error {
	if s.failDeleteIDs[blockID] {
		return errors.New("storage unavailable")
	}
	for i := range s.blocks {
		if s.blocks[i].ID == blockID && s.blocks[i].CounselorID == counselorID {
			s.blocks = append(s.blocks[:i], s.blocks[i+1:]...)
			return nil
		}
	}
	return httperr.ErrBusiness("block_not_found")
}

var _ domain.Repository = (*fakeStore)(nil)

// Saturday March 1, 2025, 07:00 business time. Every weekday of the
// month is still in the future.
func frozenClock(t *testing.T) timezone.FixedClock {
	t.Helper()
	return timezone.FixedClock{
		T: time.Date(2025, 3, 1, 7, 0, 0, 0, timezone.Location()),
	}
}

func bizDate(t *testing.T, y int, m time.Month, d, hh, mm int) time.Time {
	t.Helper()
	return time.Date(y, m, d, hh, mm, 0, 0, timezone.Location())
}
