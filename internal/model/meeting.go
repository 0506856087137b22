package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/studentwell/supervision_scheduler/internal/schedule"
)

// Meeting представляет забронированную получасовую встречу. StartTime и
// EndTime — минуты от полуночи даты MeetingDate; у одного руководителя
// интервалы [StartTime, EndTime) на одну дату не пересекаются
type Meeting struct {
	ID           int64              `json:"id"`
	Reference    uuid.UUID          `json:"reference"`
	StudentID    int64              `json:"student_id"`
	SupervisorID int64              `json:"supervisor_id"`
	MeetingDate  time.Time          `json:"meeting_date"`
	StartTime    schedule.TimeOfDay `json:"start_time"`
	EndTime      schedule.TimeOfDay `json:"end_time"`
	Notes        string             `json:"notes"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// Interval возвращает интервал встречи внутри дня
func (m *Meeting) Interval() schedule.Interval {
	return schedule.Interval{Start: m.StartTime, End: m.EndTime}
}
