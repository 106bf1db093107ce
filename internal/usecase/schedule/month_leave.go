package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/campusmind/guidance-scheduler/internal/audit"
	domain "github.com/campusmind/guidance-scheduler/internal/domain/schedule"
	"github.com/campusmind/guidance-scheduler/internal/httperr"
	"github.com/campusmind/guidance-scheduler/internal/lock"
	"github.com/campusmind/guidance-scheduler/internal/timezone"
)

type MonthLeaveInput struct {
	CounselorID uint
	Year        int
	Month       int
	Reason      string
}

// MonthLeave blocks every weekday of a month in one batch. Days already
// under a full-day block are excluded up front rather than reported as
// failures; everything else runs through the same per-date path as
// BulkBlock.
type MonthLeave struct {
	repo   domain.Repository
	locker *lock.OwnerLocker
	bulk   *BulkBlock
	audit  *audit.Dispatcher
}

func NewMonthLeave(
	repo domain.Repository,
	resolver *domain.Resolver,
	locker *lock.OwnerLocker,
	auditor *audit.Dispatcher,
) *MonthLeave {
	return &MonthLeave{
		repo:   repo,
		locker: locker,
		bulk:   NewBulkBlock(repo, resolver, locker, auditor),
		audit:  auditor,
	}
}

func (uc *MonthLeave) Execute(
	ctx context.Context,
	in MonthLeaveInput,
) (*domain.BulkReport, error) {

	if in.Month < 1 || in.Month > 12 {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	loc := timezone.Location()
	first := time.Date(in.Year, time.Month(in.Month), 1, 0, 0, 0, 0, loc)
	next := first.AddDate(0, 1, 0)

	tag := uuid.NewString()
	report := &domain.BulkReport{}

	err := uc.locker.WithOwnerLock(ctx, in.CounselorID, func() error {
		fullyBlocked, err := uc.fullyBlockedDays(ctx, in.CounselorID, first, next)
		if err != nil {
			return err
		}

		for day := first; day.Before(next); day = day.AddDate(0, 0, 1) {
			wd := day.Weekday()
			if wd == time.Saturday || wd == time.Sunday {
				continue
			}

			key := day.Format("2006-01-02")
			if fullyBlocked[key] {
				continue
			}

			uc.bulk.blockOneDay(ctx, in.CounselorID, key, in.Reason, domain.GroupMonthLeave, tag, report)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CounselorID: in.CounselorID,
		Action:      "month_leave_created",
		Entity:      "block",
		Metadata: map[string]any{
			"tag":       tag,
			"year":      in.Year,
			"month":     in.Month,
			"succeeded": len(report.Succeeded),
			"failed":    len(report.Failed),
		},
	})

	return report, nil
}

func (uc *MonthLeave) fullyBlockedDays(
	ctx context.Context,
	counselorID uint,
	start time.Time,
	end time.Time,
) (map[string]bool, error) {

	existing, err := uc.repo.ListIntervals(ctx, counselorID, start, end)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location()
	days := map[string]bool{}
	for _, iv := range existing {
		if iv.Kind == domain.KindBlock && iv.FullDay() {
			days[iv.Start.In(loc).Format("2006-01-02")] = true
		}
	}
	return days, nil
}
