package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/campusmind/guidance-scheduler/internal/domain/schedule"
	"github.com/campusmind/guidance-scheduler/internal/httperr"
	"github.com/campusmind/guidance-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Counselor / Student
// --------------------------------------------------

func (r *ScheduleGormRepository) GetCounselorByID(
	ctx context.Context,
	id uint,
) (*models.Counselor, error) {

	var c models.Counselor
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ScheduleGormRepository) GetStudentByID(
	ctx context.Context,
	id uint,
) (*models.Student, error) {

	var s models.Student
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// --------------------------------------------------
// Conflict-relevant intervals
// --------------------------------------------------

func (r *ScheduleGormRepository) ListIntervals(
	ctx context.Context,
	ownerID uint,
	start time.Time,
	end time.Time,
) ([]domain.Interval, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"counselor_id = ? AND status IN ? AND start_time >= ? AND start_time < ?",
			ownerID, domain.ActiveStatuses(), start, end,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	var blocks []models.Block
	if err := r.db.WithContext(ctx).
		Where(
			"counselor_id = ? AND start_time >= ? AND start_time < ?",
			ownerID, start, end,
		).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Interval, 0, len(apps)+len(blocks))
	for i := range apps {
		out = append(out, domain.FromAppointment(&apps[i]))
	}
	for i := range blocks {
		out = append(out, domain.FromBlock(&blocks[i]))
	}

	return out, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *ScheduleGormRepository) GetAppointmentForCounselor(
	ctx context.Context,
	appointmentID uint,
	counselorID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND counselor_id = ?", appointmentID, counselorID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *ScheduleGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	counselorID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Student").
		Where(
			"counselor_id = ? AND start_time >= ? AND start_time < ?",
			counselorID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *ScheduleGormRepository) ExpirePastAppointments(
	ctx context.Context,
	counselorID uint,
	now time.Time,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"counselor_id = ? AND status IN ? AND end_time < ?",
			counselorID,
			[]string{string(domain.StatusPending), string(domain.StatusScheduled), string(domain.StatusReschedulePending)},
			now,
		).
		Update("status", string(domain.StatusExpired)).Error
}

// --------------------------------------------------
// Block
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateBlock(
	ctx context.Context,
	b *models.Block,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *ScheduleGormRepository) ListBlocks(
	ctx context.Context,
	counselorID uint,
) ([]models.Block, error) {

	var blocks []models.Block
	if err := r.db.WithContext(ctx).
		Where("counselor_id = ?", counselorID).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	return blocks, nil
}

func (r *ScheduleGormRepository) ListBlocksByTag(
	ctx context.Context,
	counselorID uint,
	tag string,
) ([]models.Block, error) {

	var blocks []models.Block
	if err := r.db.WithContext(ctx).
		Where("counselor_id = ? AND group_tag = ?", counselorID, tag).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	return blocks, nil
}

func (r *ScheduleGormRepository) DeleteBlock(
	ctx context.Context,
	blockID uint,
	counselorID uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND counselor_id = ?", blockID, counselorID).
		Delete(&models.Block{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("block_not_found")
	}

	return nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
