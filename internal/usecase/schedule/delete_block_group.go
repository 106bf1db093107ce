package schedule

import (
	"context"

	"github.com/campusmind/guidance-scheduler/internal/audit"
	domain "github.com/campusmind/guidance-scheduler/internal/domain/schedule"
	"github.com/campusmind/guidance-scheduler/internal/httperr"
)

// DeleteBlockGroup removes every block sharing a group tag. This is the
// only multi-record delete path; like the bulk creators it reports
// partial failure instead of aborting on the first bad member.
type DeleteBlockGroup struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBlockGroup(
	repo domain.Repository,
	auditor *audit.Dispatcher,
) *DeleteBlockGroup {
	return &DeleteBlockGroup{
		repo:  repo,
		audit: auditor,
	}
}

func (uc *DeleteBlockGroup) Execute(
	ctx context.Context,
	counselorID uint,
	tag string,
) (*domain.BulkReport, error) {

	blocks, err := uc.repo.ListBlocksByTag(ctx, counselorID, tag)
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, httperr.ErrBusiness("group_not_found")
	}

	report := &domain.BulkReport{}

	for _, b := range blocks {
		if err := uc.repo.DeleteBlock(ctx, b.ID, counselorID); err != nil {
			report.Failed = append(report.Failed, domain.BulkFailure{
				BlockID: b.ID,
				Code:    "persist_error",
				Message: err.Error(),
			})
			continue
		}
		report.Succeeded = append(report.Succeeded, b)
	}

	uc.audit.Dispatch(audit.Event{
		CounselorID: counselorID,
		Action:      "block_group_deleted",
		Entity:      "block",
		Metadata: map[string]any{
			"tag":       tag,
			"succeeded": len(report.Succeeded),
			"failed":    len(report.Failed),
		},
	})

	return report, nil
}

// DeleteBlock removes a single individual block.
type DeleteBlock struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBlock(
	repo domain.Repository,
	auditor *audit.Dispatcher,
) *DeleteBlock {
	return &DeleteBlock{
		repo:  repo,
		audit: auditor,
	}
}

func (uc *DeleteBlock) Execute(
	ctx context.Context,
	counselorID uint,
	blockID uint,
) error {

	if err := uc.repo.DeleteBlock(ctx, blockID, counselorID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		CounselorID: counselorID,
		Action:      "block_deleted",
		Entity:      "block",
		EntityID:    &blockID,
	})

	return nil
}
