package schedule

import (
	"context"
	"time"
)

// DefaultHorizonDays is the rolling planning window.
const DefaultHorizonDays = 14

// PlanOptions tunes a planning run. The zero value gives the default
// 14-day weekdays-only horizon.
type PlanOptions struct {
	HorizonDays     int
	IncludeWeekends bool
}

// DayAvailability is one day's open slots. Days with no open slots are
// never emitted.
type DayAvailability struct {
	Date  time.Time
	Slots []Slot
}

// Planner walks the rolling horizon and reports every open slot for a
// supervisor, ascending by date and start time.
type Planner struct {
	supervisors SupervisorSource
	meetings    MeetingSource
	now         func() time.Time
}

// NewPlanner wires a planner to its data sources.
func NewPlanner(supervisors SupervisorSource, meetings MeetingSource) *Planner {
	return &Planner{
		supervisors: supervisors,
		meetings:    meetings,
		now:         time.Now,
	}
}

// Plan generates the open slots for each day of the horizon starting
// today. Weekend days are skipped unless opted in, slots already booked
// are removed, and on the current day slots whose start has passed are
// dropped. An unknown supervisor yields an empty plan, not an error.
func (p *Planner) Plan(ctx context.Context, supervisorID int64, opts PlanOptions) ([]DayAvailability, error) {
	sched, err := p.supervisors.ScheduleByID(ctx, supervisorID)
	if err != nil {
		return nil, err
	}
	if sched == nil {
		return nil, nil
	}

	spec := ParseSpec(sched.OfficeHours)
	if spec.IsEmpty() {
		return nil, nil
	}

	horizon := opts.HorizonDays
	if horizon <= 0 {
		horizon = DefaultHorizonDays
	}

	now := p.now()
	var days []DayAvailability
	for i := 0; i < horizon; i++ {
		date := midnight(now.AddDate(0, 0, i))
		if !opts.IncludeWeekends && isWeekend(date.Weekday()) {
			continue
		}

		// Skip the store round-trip when the weekday has no blocks.
		candidates := SlotsForDate(spec, date)
		if len(candidates) == 0 {
			continue
		}

		booked, err := p.meetings.BookedIntervals(ctx, supervisorID, date)
		if err != nil {
			return nil, err
		}

		slots := OpenSlots(candidates, booked, now)
		if len(slots) == 0 {
			continue
		}

		days = append(days, DayAvailability{Date: date, Slots: slots})
	}

	return days, nil
}

// OpenSlots filters candidate slots down to the ones still bookable:
// not overlapping a booked interval and, on the current day, not already
// started.
func OpenSlots(candidates []Slot, booked []Interval, now time.Time) []Slot {
	var open []Slot
	for _, slot := range candidates {
		if HasConflict(slot.Interval(), booked) {
			continue
		}
		if sameDate(slot.Start, now) && slot.Start.Before(now) {
			continue
		}
		open = append(open, slot)
	}
	return open
}

func isWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
