package schedule

import (
	"context"
	"time"
)

// Rejection reasons, reported verbatim to the end user.
const (
	ReasonNilMeeting   = "Meeting cannot be null."
	ReasonEndNotAfter  = "End time must be after start time."
	ReasonPastDate     = "Cannot schedule meetings in the past."
	ReasonNoSupervisor = "Supervisor not found."
	ReasonOutsideHours = "Meeting is outside office hours."
	ReasonOverlap      = "Meeting overlaps another scheduled meeting."
)

// SupervisorSchedule is the slice of supervisor state the engine needs:
// identity plus the raw office-hours text.
type SupervisorSchedule struct {
	SupervisorID int64
	OfficeHours  string
}

// SupervisorSource supplies supervisor schedules. A nil schedule with a
// nil error means the supervisor does not exist.
type SupervisorSource interface {
	ScheduleByID(ctx context.Context, supervisorID int64) (*SupervisorSchedule, error)
}

// MeetingSource supplies the booked intervals of a supervisor on one
// calendar date.
type MeetingSource interface {
	BookedIntervals(ctx context.Context, supervisorID int64, date time.Time) ([]Interval, error)
}

// Candidate is a meeting proposal under validation.
type Candidate struct {
	SupervisorID int64
	Date         time.Time
	Start        TimeOfDay
	End          TimeOfDay
}

// Verdict is the validator's outcome. Domain rejections are values, not
// errors: callers branch on OK and show Reason to the user.
type Verdict struct {
	OK     bool
	Reason string
}

func accept() Verdict         { return Verdict{OK: true} }
func reject(r string) Verdict { return Verdict{Reason: r} }

// Validator decides whether a candidate meeting may be booked. Its data
// dependencies are injected, so production repositories and in-memory
// test fakes implement the same interfaces.
type Validator struct {
	supervisors SupervisorSource
	meetings    MeetingSource
	now         func() time.Time
}

// NewValidator wires a validator to its data sources.
func NewValidator(supervisors SupervisorSource, meetings MeetingSource) *Validator {
	return &Validator{
		supervisors: supervisors,
		meetings:    meetings,
		now:         time.Now,
	}
}

// Validate runs the gates in order and short-circuits on the first
// failure. An error is returned only when a source fails; every domain
// rejection comes back as a Verdict. Validation is advisory: the store
// still enforces the slot uniqueness constraint at commit time.
func (v *Validator) Validate(ctx context.Context, c *Candidate) (Verdict, error) {
	if c == nil {
		return reject(ReasonNilMeeting), nil
	}

	if c.Start >= c.End {
		return reject(ReasonEndNotAfter), nil
	}

	if midnight(c.Date).Before(midnight(v.now())) {
		return reject(ReasonPastDate), nil
	}

	sched, err := v.supervisors.ScheduleByID(ctx, c.SupervisorID)
	if err != nil {
		return Verdict{}, err
	}
	if sched == nil {
		return reject(ReasonNoSupervisor), nil
	}

	spec := ParseSpec(sched.OfficeHours)
	if !spec.Contains(c.Date.Weekday(), c.Start, c.End) {
		return reject(ReasonOutsideHours), nil
	}

	booked, err := v.meetings.BookedIntervals(ctx, c.SupervisorID, c.Date)
	if err != nil {
		return Verdict{}, err
	}
	if HasConflict(Interval{Start: c.Start, End: c.End}, booked) {
		return reject(ReasonOverlap), nil
	}

	return accept(), nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
