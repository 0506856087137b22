package model

import "time"

// Student представляет студента программы
type Student struct {
	User

	StudentID        int64      `json:"student_id"`
	UserID           int64      `json:"user_id"`
	SupervisorID     int64      `json:"supervisor_id"`
	WellbeingScore   int        `json:"wellbeing_score"` // 0-10
	LastStatusUpdate *time.Time `json:"last_status_update"`
}

// Границы шкалы самочувствия
const (
	WellbeingMin = 0
	WellbeingMax = 10
)
