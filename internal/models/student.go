package models

import "time"

type Student struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name          string `gorm:"size:100;not null" json:"name"`
	StudentNumber string `gorm:"size:20;uniqueIndex" json:"student_number"`
	Email         string `gorm:"size:100" json:"email"`
	Phone         string `gorm:"size:20" json:"phone"`
	YearLevel     string `gorm:"size:30" json:"year_level"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
