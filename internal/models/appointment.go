package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CounselorID uint      `gorm:"index" json:"counselor_id"`
	Counselor   Counselor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"counselor"`

	StudentID uint    `gorm:"index" json:"student_id"`
	Student   Student `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"student"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
