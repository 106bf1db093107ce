package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/campusmind/guidance-scheduler/internal/audit"
	domain "github.com/campusmind/guidance-scheduler/internal/domain/schedule"
	"github.com/campusmind/guidance-scheduler/internal/httperr"
	"github.com/campusmind/guidance-scheduler/internal/lock"
	"github.com/campusmind/guidance-scheduler/internal/models"
	"github.com/campusmind/guidance-scheduler/internal/timezone"
)

type BulkBlockInput struct {
	CounselorID uint
	Dates       []string // "2006-01-02" in business time
	Reason      string
}

// BulkBlock creates one full-day block per requested date. Each date is
// evaluated independently against a freshly listed existing set, is
// persisted immediately on acceptance, and a failure never aborts the
// rest of the batch. The whole batch shares one group tag so it can be
// listed and deleted as a unit later.
type BulkBlock struct {
	repo     domain.Repository
	resolver *domain.Resolver
	locker   *lock.OwnerLocker
	audit    *audit.Dispatcher
}

func NewBulkBlock(
	repo domain.Repository,
	resolver *domain.Resolver,
	locker *lock.OwnerLocker,
	auditor *audit.Dispatcher,
) *BulkBlock {
	return &BulkBlock{
		repo:     repo,
		resolver: resolver,
		locker:   locker,
		audit:    auditor,
	}
}

func (uc *BulkBlock) Execute(
	ctx context.Context,
	in BulkBlockInput,
) (*domain.BulkReport, error) {

	if len(in.Dates) == 0 {
		return nil, httperr.ErrBusiness("no_dates")
	}

	tag := uuid.NewString()
	report := &domain.BulkReport{}

	err := uc.locker.WithOwnerLock(ctx, in.CounselorID, func() error {
		for _, dateStr := range in.Dates {
			uc.blockOneDay(ctx, in.CounselorID, dateStr, in.Reason, domain.GroupBulk, tag, report)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CounselorID: in.CounselorID,
		Action:      "bulk_block_created",
		Entity:      "block",
		Metadata: map[string]any{
			"tag":       tag,
			"succeeded": len(report.Succeeded),
			"failed":    len(report.Failed),
		},
	})

	return report, nil
}

// blockOneDay is the shared per-date path for bulk blocks and month
// leave. It appends exactly one entry to the report per candidate.
func (uc *BulkBlock) blockOneDay(
	ctx context.Context,
	counselorID uint,
	dateStr string,
	reason string,
	kind domain.GroupKind,
	tag string,
	report *domain.BulkReport,
) {
	loc := timezone.Location()

	day, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		report.Failed = append(report.Failed, domain.BulkFailure{
			Date:    dateStr,
			Code:    domain.CodeInvalidTimestamp,
			Message: "Malformed date.",
		})
		return
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), domain.OfficeOpenHour, 0, 0, 0, loc)

	proposed := domain.Interval{
		OwnerID: counselorID,
		Kind:    domain.KindBlock,
		Start:   start,
	}

	// Refreshed per date; an earlier-in-batch accepted block is already
	// persisted and shows up for later dates.
	dayStart, dayEnd := businessDayRange(start)
	existing, err := uc.repo.ListIntervals(ctx, counselorID, dayStart, dayEnd)
	if err != nil {
		report.Failed = append(report.Failed, domain.BulkFailure{
			Date:    dateStr,
			Code:    "persist_error",
			Message: err.Error(),
		})
		return
	}

	decision := uc.resolver.ResolveWith(proposed, existing, domain.ResolveOptions{
		Rules: domain.LeaveDayRules(),
	})
	if !decision.Accepted {
		report.Failed = append(report.Failed, domain.BulkFailure{
			Date:    dateStr,
			Code:    decision.Code,
			Message: decision.Message,
		})
		return
	}

	block := &models.Block{
		CounselorID: counselorID,
		StartTime:   start,
		Reason:      reason,
		GroupKind:   string(kind),
		GroupTag:    tag,
	}

	if err := uc.repo.CreateBlock(ctx, block); err != nil {
		report.Failed = append(report.Failed, domain.BulkFailure{
			Date:    dateStr,
			Code:    "persist_error",
			Message: err.Error(),
		})
		return
	}

	report.Succeeded = append(report.Succeeded, *block)
}
