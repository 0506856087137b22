package model

import "time"

// Supervisor представляет научного руководителя
type Supervisor struct {
	User

	SupervisorID             int64      `json:"supervisor_id"`
	UserID                   int64      `json:"user_id"`
	OfficeHours              string     `json:"office_hours"` // текстовый формат, парсится пакетом schedule
	LastOfficeHoursUpdate    *time.Time `json:"last_office_hours_update"`
	LastWellbeingCheck       *time.Time `json:"last_wellbeing_check"`
	MeetingsBookedThisMonth  int        `json:"meetings_booked_this_month"`
	WellbeingChecksThisMonth int        `json:"wellbeing_checks_this_month"`
}

// IsActiveThisMonth проверяет была ли активность в текущем месяце
func (s *Supervisor) IsActiveThisMonth() bool {
	return s.MeetingsBookedThisMonth > 0 || s.WellbeingChecksThisMonth > 0
}
