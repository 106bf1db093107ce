package schedule

import (
	"context"

	domain "github.com/campusmind/guidance-scheduler/internal/domain/schedule"
	"github.com/campusmind/guidance-scheduler/internal/timezone"
)

type ListBlocks struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewListBlocks(
	repo domain.Repository,
	clock timezone.Clock,
) *ListBlocks {
	return &ListBlocks{
		repo:  repo,
		clock: clock,
	}
}

// Execute returns the counselor's blocks classified for display: month
// leaves and bulk batches as single logical units, loose blocks as
// individual, past blocks set aside.
func (uc *ListBlocks) Execute(
	ctx context.Context,
	counselorID uint,
) (*domain.GroupedBlocks, error) {

	blocks, err := uc.repo.ListBlocks(ctx, counselorID)
	if err != nil {
		return nil, err
	}

	grouped := domain.GroupBlocks(blocks, uc.clock.Now())
	return &grouped, nil
}
