package dto

import "time"

type AppointmentListDTO struct {
	ID          uint      `json:"id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	StudentName string    `json:"student_name"`
	Notes       string    `json:"notes"`
}
