package schedule

import (
	"testing"
	"time"

	"github.com/campusmind/guidance-scheduler/internal/models"
)

func fullDayBlock(t *testing.T, id uint, y int, m time.Month, d int, kind GroupKind, tag, reason string) models.Block {
	t.Helper()
	return models.Block{
		ID:          id,
		CounselorID: 1,
		StartTime:   at(t, y, m, d, OfficeOpenHour, 0),
		Reason:      reason,
		GroupKind:   string(kind),
		GroupTag:    tag,
	}
}

func TestGroupBlocksBulkBatch(t *testing.T) {
	now := frozenNow(t)

	blocks := []models.Block{
		fullDayBlock(t, 2, 2025, 3, 11, GroupBulk, "tag-a", "training"),
		fullDayBlock(t, 1, 2025, 3, 10, GroupBulk, "tag-a", "training"),
	}

	out := GroupBlocks(blocks, now)

	if len(out.BulkBlocks) != 1 {
		t.Fatalf("expected one bulk group, got %d", len(out.BulkBlocks))
	}

	g := out.BulkBlocks[0]
	if g.Reason != "training" || len(g.Blocks) != 2 {
		t.Fatalf("unexpected group: %+v", g)
	}
	if g.Start.Day() != 10 {
		t.Fatalf("group span must start at the earliest member, got %v", g.Start)
	}
	if g.End.Day() != 11 {
		t.Fatalf("group span must end at the latest member, got %v", g.End)
	}
	if !g.Blocks[0].StartTime.Before(g.Blocks[1].StartTime) {
		t.Fatal("members must be sorted by start ascending")
	}
}

func TestGroupBlocksMonthLeaveByCalendarMonth(t *testing.T) {
	now := frozenNow(t)

	blocks := []models.Block{
		fullDayBlock(t, 1, 2025, 3, 10, GroupMonthLeave, "tag-m", "conference"),
		fullDayBlock(t, 2, 2025, 3, 11, GroupMonthLeave, "tag-m", "conference"),
		fullDayBlock(t, 3, 2025, 4, 1, GroupMonthLeave, "tag-n", "leave"),
	}

	out := GroupBlocks(blocks, now)

	if len(out.MonthLeaves) != 2 {
		t.Fatalf("expected two month-leave groups, got %d", len(out.MonthLeaves))
	}

	march := out.MonthLeaves[0]
	if march.Year != 2025 || march.Month != time.March || len(march.Blocks) != 2 {
		t.Fatalf("unexpected march group: %+v", march)
	}

	april := out.MonthLeaves[1]
	if april.Month != time.April || len(april.Blocks) != 1 {
		t.Fatalf("unexpected april group: %+v", april)
	}

	if !march.Start.Before(april.Start) {
		t.Fatal("groups must be sorted by start ascending")
	}
}

func TestGroupBlocksPastPartition(t *testing.T) {
	now := frozenNow(t)

	past := fullDayBlock(t, 1, 2025, 2, 28, GroupBulk, "tag-old", "old training")
	future := fullDayBlock(t, 2, 2025, 3, 10, GroupNone, "", "dentist")

	out := GroupBlocks([]models.Block{past, future}, now)

	if len(out.Past) != 1 || out.Past[0].ID != 1 {
		t.Fatalf("expected the past block set aside, got %+v", out.Past)
	}
	if len(out.BulkBlocks) != 0 {
		t.Fatal("past blocks must not form bulk groups")
	}
	if len(out.Individual) != 1 || out.Individual[0].ID != 2 {
		t.Fatalf("expected one individual block, got %+v", out.Individual)
	}
}

func TestGroupBlocksUntaggedAreIndividual(t *testing.T) {
	now := frozenNow(t)

	partialEnd := at(t, 2025, 3, 10, 15, 0)
	partial := models.Block{
		ID:          9,
		CounselorID: 1,
		StartTime:   at(t, 2025, 3, 10, 14, 0),
		EndTime:     &partialEnd,
		Reason:      "home visit",
		GroupKind:   string(GroupNone),
	}

	out := GroupBlocks([]models.Block{partial}, now)
	if len(out.Individual) != 1 || len(out.BulkBlocks) != 0 || len(out.MonthLeaves) != 0 {
		t.Fatalf("untagged block must stay individual, got %+v", out)
	}
}
