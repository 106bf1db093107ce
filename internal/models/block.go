package models

import "time"

// Block marks a counselor as unavailable. A nil EndTime means the whole
// business day is blocked, not just the window around StartTime.
type Block struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CounselorID uint      `gorm:"index" json:"counselor_id"`
	Counselor   Counselor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"counselor"`

	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`

	Reason string `gorm:"size:255" json:"reason"`

	// GroupKind and GroupTag tie together blocks created by one bulk
	// request so they can be listed and deleted as a unit.
	GroupKind string `gorm:"size:20;default:'none'" json:"group_kind"`
	GroupTag  string `gorm:"size:36;index" json:"group_tag"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
