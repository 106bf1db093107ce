package schedule

import "github.com/campusmind/guidance-scheduler/internal/models"

// BulkReport aggregates per-item outcomes of a multi-date operation.
// Bulk block, month leave and group deletion all produce one; a failed
// item never aborts its siblings, so the report always accounts for
// every candidate.
type BulkReport struct {
	Succeeded []models.Block `json:"succeeded"`
	Failed    []BulkFailure  `json:"failed"`
}

type BulkFailure struct {
	// Date is the business-day key of the failed candidate
	// ("2006-01-02"); BlockID is set instead for deletion failures.
	Date    string `json:"date,omitempty"`
	BlockID uint   `json:"block_id,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (r *BulkReport) Total() int {
	return len(r.Succeeded) + len(r.Failed)
}

func (r *BulkReport) AllFailed() bool {
	return len(r.Succeeded) == 0 && len(r.Failed) > 0
}
