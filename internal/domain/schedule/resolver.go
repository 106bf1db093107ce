package schedule

import (
	"fmt"
	"time"
)

// Decision is the resolver's verdict on a proposed interval. Rejections
// carry a reason code from rules.go and, for conflicts, the identity of
// the interval already holding the slot.
type Decision struct {
	Accepted   bool
	Code       string
	Message    string
	ConflictID uint
}

func Accept() Decision {
	return Decision{Accepted: true}
}

func Reject(code, message string) Decision {
	return Decision{Code: code, Message: message}
}

// ResolveOptions tune one resolve call. ExcludeID removes the interval
// being rescheduled from the scan so it cannot conflict with itself.
type ResolveOptions struct {
	Rules     []Rule
	ExcludeID uint
}

type Resolver struct {
	clock interface{ Now() time.Time }
}

func NewResolver(clock interface{ Now() time.Time }) *Resolver {
	return &Resolver{clock: clock}
}

// Resolve validates the proposed interval, then scans the existing set
// for conflicts. Validation violations are reported before conflicts;
// among multiple overlapping intervals the first in iteration order wins,
// so callers must pass a stably ordered set.
//
// The existing set is expected to hold only conflict-relevant records:
// active appointments and blocks for the proposal's owner and day range.
func (r *Resolver) Resolve(proposed Interval, existing []Interval) Decision {
	return r.ResolveWith(proposed, existing, ResolveOptions{Rules: rulesFor(proposed)})
}

func (r *Resolver) ResolveWith(proposed Interval, existing []Interval, opts ResolveOptions) Decision {
	now := r.clock.Now()

	rules := opts.Rules
	if rules == nil {
		rules = rulesFor(proposed)
	}

	if violations := Run(proposed, now, rules); len(violations) > 0 {
		first := violations[0]
		return Reject(first.Code, first.Message)
	}

	// One active appointment per student per business day, regardless of
	// raw overlap. Checked before the general scan so the caller sees the
	// more specific reason.
	if proposed.Kind == KindAppointment {
		for _, ex := range existing {
			if opts.ExcludeID != 0 && ex.ID == opts.ExcludeID {
				continue
			}
			if ex.OwnerID != proposed.OwnerID || ex.Kind != KindAppointment {
				continue
			}
			if ex.SubjectID == proposed.SubjectID && SameBusinessDay(ex, proposed) {
				return Decision{
					Code:       CodeDuplicateAppointment,
					Message:    "The student already has an appointment with this counselor that day.",
					ConflictID: ex.ID,
				}
			}
		}
	}

	for _, ex := range existing {
		if opts.ExcludeID != 0 && ex.ID == opts.ExcludeID {
			continue
		}
		if ex.OwnerID != proposed.OwnerID {
			continue
		}
		if Overlaps(proposed, ex) {
			return Decision{
				Code:       CodeConflict,
				Message:    fmt.Sprintf("Conflicts with %s #%d.", ex.Kind, ex.ID),
				ConflictID: ex.ID,
			}
		}
	}

	return Accept()
}

func rulesFor(proposed Interval) []Rule {
	if proposed.Kind == KindAppointment {
		return AppointmentRules()
	}
	return ManualBlockRules()
}
