package schedule

import (
	"context"
	"time"

	"github.com/campusmind/guidance-scheduler/internal/audit"
	domain "github.com/campusmind/guidance-scheduler/internal/domain/schedule"
	"github.com/campusmind/guidance-scheduler/internal/httperr"
	"github.com/campusmind/guidance-scheduler/internal/lock"
	"github.com/campusmind/guidance-scheduler/internal/models"
	"github.com/campusmind/guidance-scheduler/internal/timezone"
)

type CreateBlockInput struct {
	CounselorID uint

	Date string // "2006-01-02" in business time

	// StartTime/EndTime ("15:04") bound a partial block. Both empty
	// means the whole business day.
	StartTime string
	EndTime   string

	Reason string
}

type CreateBlock struct {
	repo     domain.Repository
	resolver *domain.Resolver
	locker   *lock.OwnerLocker
	audit    *audit.Dispatcher
}

func NewCreateBlock(
	repo domain.Repository,
	resolver *domain.Resolver,
	locker *lock.OwnerLocker,
	auditor *audit.Dispatcher,
) *CreateBlock {
	return &CreateBlock{
		repo:     repo,
		resolver: resolver,
		locker:   locker,
		audit:    auditor,
	}
}

func (uc *CreateBlock) Execute(
	ctx context.Context,
	in CreateBlockInput,
) (*models.Block, error) {

	loc := timezone.Location()

	day, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	var start time.Time
	var end *time.Time

	if in.StartTime == "" && in.EndTime == "" {
		// Full-day blocks anchor at office open; the nil end carries the
		// whole-day meaning.
		start = time.Date(day.Year(), day.Month(), day.Day(), domain.OfficeOpenHour, 0, 0, 0, loc)
	} else {
		start, err = time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.StartTime, loc)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}
		e, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.EndTime, loc)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}
		end = &e
	}

	proposed := domain.Interval{
		OwnerID: in.CounselorID,
		Kind:    domain.KindBlock,
		Start:   start,
		End:     end,
	}

	var block *models.Block

	err = uc.locker.WithOwnerLock(ctx, in.CounselorID, func() error {
		dayStart, dayEnd := businessDayRange(start)

		existing, err := uc.repo.ListIntervals(ctx, in.CounselorID, dayStart, dayEnd)
		if err != nil {
			return err
		}

		decision := uc.resolver.ResolveWith(proposed, existing, domain.ResolveOptions{
			Rules: domain.ManualBlockRules(),
		})
		if !decision.Accepted {
			return httperr.ErrBusinessMsg(decision.Code, decision.Message)
		}

		block = &models.Block{
			CounselorID: in.CounselorID,
			StartTime:   start,
			EndTime:     end,
			Reason:      in.Reason,
			GroupKind:   string(domain.GroupNone),
		}

		return uc.repo.CreateBlock(ctx, block)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CounselorID: in.CounselorID,
		Action:      "block_created",
		Entity:      "block",
		EntityID:    &block.ID,
	})

	return block, nil
}
