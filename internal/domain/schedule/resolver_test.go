package schedule

import (
	"testing"

	"github.com/campusmind/guidance-scheduler/internal/timezone"
)

func testResolver(t *testing.T) *Resolver {
	t.Helper()
	return NewResolver(timezone.FixedClock{T: frozenNow(t)})
}

func TestResolveAcceptsFreeSlot(t *testing.T) {
	r := testResolver(t)

	proposed := bounded(1, at(t, 2025, 3, 10, 9, 0), at(t, 2025, 3, 10, 9, 30))
	proposed.SubjectID = 42

	d := r.Resolve(proposed, nil)
	if !d.Accepted {
		t.Fatalf("expected accept, got %+v", d)
	}
}

func TestResolveRejectsWeekend(t *testing.T) {
	r := testResolver(t)

	proposed := bounded(1, at(t, 2025, 3, 8, 9, 0), at(t, 2025, 3, 8, 9, 30))
	proposed.SubjectID = 42

	d := r.Resolve(proposed, nil)
	if d.Accepted || d.Code != CodeWeekendNotAllowed {
		t.Fatalf("expected weekend rejection, got %+v", d)
	}
}

func TestResolveRejectsFullDayBlockConflict(t *testing.T) {
	r := testResolver(t)

	block := fullDay(1, at(t, 2025, 3, 10, 8, 0))
	block.ID = 7

	proposed := bounded(1, at(t, 2025, 3, 10, 14, 0), at(t, 2025, 3, 10, 14, 30))
	proposed.SubjectID = 42

	d := r.Resolve(proposed, []Interval{block})
	if d.Accepted || d.Code != CodeConflict {
		t.Fatalf("expected conflict, got %+v", d)
	}
	if d.ConflictID != 7 {
		t.Fatalf("expected conflicting interval identity 7, got %d", d.ConflictID)
	}
}

func TestResolveValidationBeforeConflict(t *testing.T) {
	r := testResolver(t)

	// Existing interval overlaps, but the proposal is also in the past;
	// the cheaper validation reason wins.
	existing := bounded(1, at(t, 2025, 3, 1, 9, 0), at(t, 2025, 3, 1, 10, 0))
	existing.ID = 3

	proposed := bounded(1, at(t, 2025, 3, 1, 9, 0), at(t, 2025, 3, 1, 9, 30))
	proposed.SubjectID = 42

	d := r.Resolve(proposed, []Interval{existing})
	if d.Accepted || d.Code != CodePastStartTime {
		t.Fatalf("expected past-date rejection before conflict, got %+v", d)
	}
}

func TestResolveFirstOverlapWins(t *testing.T) {
	r := testResolver(t)

	first := Interval{ID: 10, OwnerID: 1, Kind: KindBlock,
		Start: at(t, 2025, 3, 10, 9, 0)}
	firstEnd := at(t, 2025, 3, 10, 10, 0)
	first.End = &firstEnd

	second := Interval{ID: 11, OwnerID: 1, Kind: KindBlock,
		Start: at(t, 2025, 3, 10, 9, 30)}
	secondEnd := at(t, 2025, 3, 10, 10, 30)
	second.End = &secondEnd

	proposed := bounded(1, at(t, 2025, 3, 10, 9, 15), at(t, 2025, 3, 10, 9, 45))
	proposed.SubjectID = 42

	d := r.Resolve(proposed, []Interval{first, second})
	if d.ConflictID != 10 {
		t.Fatalf("expected first-in-order conflict, got %+v", d)
	}
}

func TestResolveIgnoresOtherOwners(t *testing.T) {
	r := testResolver(t)

	other := fullDay(2, at(t, 2025, 3, 10, 8, 0))

	proposed := bounded(1, at(t, 2025, 3, 10, 9, 0), at(t, 2025, 3, 10, 9, 30))
	proposed.SubjectID = 42

	if d := r.Resolve(proposed, []Interval{other}); !d.Accepted {
		t.Fatalf("another counselor's block must not conflict, got %+v", d)
	}
}

func TestResolveDuplicateStudentSameDay(t *testing.T) {
	r := testResolver(t)

	existing := bounded(1, at(t, 2025, 3, 10, 10, 0), at(t, 2025, 3, 10, 10, 30))
	existing.ID = 5
	existing.SubjectID = 42

	// No raw overlap, same student, same business day.
	proposed := bounded(1, at(t, 2025, 3, 10, 14, 0), at(t, 2025, 3, 10, 14, 30))
	proposed.SubjectID = 42

	d := r.Resolve(proposed, []Interval{existing})
	if d.Accepted || d.Code != CodeDuplicateAppointment {
		t.Fatalf("expected duplicate-appointment rejection, got %+v", d)
	}
	if d.ConflictID != 5 {
		t.Fatalf("expected blocking appointment identity, got %+v", d)
	}

	// A different student in a free slot is fine.
	proposed.SubjectID = 43
	if d := r.Resolve(proposed, []Interval{existing}); !d.Accepted {
		t.Fatalf("different student must not trip the duplicate rule, got %+v", d)
	}
}

func TestResolveHalfOpenBoundary(t *testing.T) {
	r := testResolver(t)

	existing := bounded(1, at(t, 2025, 3, 10, 9, 0), at(t, 2025, 3, 10, 10, 0))
	existing.ID = 5
	existing.SubjectID = 41

	proposed := bounded(1, at(t, 2025, 3, 10, 10, 0), at(t, 2025, 3, 10, 10, 30))
	proposed.SubjectID = 42

	if d := r.Resolve(proposed, []Interval{existing}); !d.Accepted {
		t.Fatalf("back-to-back intervals must not conflict, got %+v", d)
	}
}

func TestResolveExcludesSelfOnReschedule(t *testing.T) {
	r := testResolver(t)

	current := bounded(1, at(t, 2025, 3, 10, 9, 0), at(t, 2025, 3, 10, 9, 30))
	current.ID = 5
	current.SubjectID = 42

	// Shifted 15 minutes, still overlapping its own old slot.
	moved := bounded(1, at(t, 2025, 3, 10, 9, 15), at(t, 2025, 3, 10, 9, 45))
	moved.ID = 5
	moved.SubjectID = 42

	d := r.ResolveWith(moved, []Interval{current}, ResolveOptions{
		Rules:     AppointmentRules(),
		ExcludeID: 5,
	})
	if !d.Accepted {
		t.Fatalf("reschedule must not conflict with its own slot, got %+v", d)
	}
}

func TestResolveManualFullDayBlockOnWeekend(t *testing.T) {
	r := testResolver(t)

	// A counselor may block a Saturday by hand even though nothing can
	// be booked there.
	block := fullDay(1, at(t, 2025, 3, 8, 8, 0))

	d := r.ResolveWith(block, nil, ResolveOptions{Rules: ManualBlockRules()})
	if !d.Accepted {
		t.Fatalf("manual full-day weekend block must be allowed, got %+v", d)
	}
}

func TestResolvePartialBlockOutsideOfficeHours(t *testing.T) {
	r := testResolver(t)

	end := at(t, 2025, 3, 10, 17, 15)
	block := Interval{OwnerID: 1, Kind: KindBlock,
		Start: at(t, 2025, 3, 10, 16, 45), End: &end}

	d := r.ResolveWith(block, nil, ResolveOptions{Rules: ManualBlockRules()})
	if d.Accepted || d.Code != CodeOutsideOfficeHours {
		t.Fatalf("expected office-hours rejection, got %+v", d)
	}
}

func TestDecisionDeterminism(t *testing.T) {
	r := testResolver(t)

	block := fullDay(1, at(t, 2025, 3, 10, 8, 0))
	block.ID = 7

	proposed := bounded(1, at(t, 2025, 3, 10, 14, 0), at(t, 2025, 3, 10, 14, 30))
	proposed.SubjectID = 42

	first := r.Resolve(proposed, []Interval{block})
	for i := 0; i < 3; i++ {
		if again := r.Resolve(proposed, []Interval{block}); again != first {
			t.Fatalf("resolver is not deterministic: %+v vs %+v", first, again)
		}
	}
}
