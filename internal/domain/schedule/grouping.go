package schedule

import (
	"sort"
	"time"

	"github.com/campusmind/guidance-scheduler/internal/models"
	"github.com/campusmind/guidance-scheduler/internal/timezone"
)

// GroupKind is the explicit discriminator for how a block was created.
type GroupKind string

const (
	GroupNone       GroupKind = "none"
	GroupMonthLeave GroupKind = "month_leave"
	GroupBulk       GroupKind = "bulk"
)

// BlockGroup is a derived, non-persisted view of blocks created together,
// summarized as one logical unit with a date span.
type BlockGroup struct {
	Kind   GroupKind      `json:"kind"`
	Tag    string         `json:"tag"`
	Reason string         `json:"reason"`
	Year   int            `json:"year,omitempty"`
	Month  time.Month     `json:"month,omitempty"`
	Start  time.Time      `json:"start"`
	End    time.Time      `json:"end"`
	Blocks []models.Block `json:"blocks"`
}

type GroupedBlocks struct {
	MonthLeaves []BlockGroup   `json:"month_leaves"`
	BulkBlocks  []BlockGroup   `json:"bulk_blocks"`
	Individual  []models.Block `json:"individual"`
	Past        []models.Block `json:"past"`
}

// GroupBlocks classifies a flat block list for display and bulk deletion.
// The past partition uses the single now snapshot passed in, so one call
// is internally consistent. Month leaves bucket by calendar month, bulk
// blocks by batch tag; everything else is individual. Members and groups
// come back sorted by start ascending.
func GroupBlocks(blocks []models.Block, now time.Time) GroupedBlocks {
	sorted := make([]models.Block, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	loc := timezone.Location()

	var out GroupedBlocks
	monthIdx := map[string]int{}
	bulkIdx := map[string]int{}

	for _, b := range sorted {
		if b.StartTime.Before(now) {
			out.Past = append(out.Past, b)
			continue
		}

		switch GroupKind(b.GroupKind) {
		case GroupMonthLeave:
			start := b.StartTime.In(loc)
			key := start.Format("2006-01")
			i, ok := monthIdx[key]
			if !ok {
				out.MonthLeaves = append(out.MonthLeaves, BlockGroup{
					Kind:   GroupMonthLeave,
					Tag:    b.GroupTag,
					Reason: b.Reason,
					Year:   start.Year(),
					Month:  start.Month(),
					Start:  b.StartTime,
				})
				i = len(out.MonthLeaves) - 1
				monthIdx[key] = i
			}
			out.MonthLeaves[i].Blocks = append(out.MonthLeaves[i].Blocks, b)
			out.MonthLeaves[i].End = memberEnd(b)

		case GroupBulk:
			key := b.GroupTag
			i, ok := bulkIdx[key]
			if !ok {
				out.BulkBlocks = append(out.BulkBlocks, BlockGroup{
					Kind:   GroupBulk,
					Tag:    b.GroupTag,
					Reason: b.Reason,
					Start:  b.StartTime,
				})
				i = len(out.BulkBlocks) - 1
				bulkIdx[key] = i
			}
			out.BulkBlocks[i].Blocks = append(out.BulkBlocks[i].Blocks, b)
			out.BulkBlocks[i].End = memberEnd(b)

		default:
			out.Individual = append(out.Individual, b)
		}
	}

	sortGroups(out.MonthLeaves)
	sortGroups(out.BulkBlocks)

	return out
}

func memberEnd(b models.Block) time.Time {
	_, end := FromBlock(&b).Bounds()
	return end
}

func sortGroups(groups []BlockGroup) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Start.Before(groups[j].Start)
	})
}
