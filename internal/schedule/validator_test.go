package schedule

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSupervisors struct {
	schedules map[int64]string
	err       error
}

func (f *fakeSupervisors) ScheduleByID(_ context.Context, id int64) (*SupervisorSchedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	hours, ok := f.schedules[id]
	if !ok {
		return nil, nil
	}
	return &SupervisorSchedule{SupervisorID: id, OfficeHours: hours}, nil
}

type fakeMeetings struct {
	booked map[string][]Interval
	err    error
}

func bookedKey(supervisorID int64, date time.Time) string {
	return fmt.Sprintf("%d/%s", supervisorID, date.Format("2006-01-02"))
}

func (f *fakeMeetings) BookedIntervals(_ context.Context, supervisorID int64, date time.Time) ([]Interval, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.booked[bookedKey(supervisorID, date)], nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestValidatorGates(t *testing.T) {
	// Monday 7 Sep 2026; the validator clock is pinned mid-morning.
	today := time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC)
	thursday := date(2026, time.September, 10)

	supervisors := &fakeSupervisors{schedules: map[int64]string{
		1: "Monday 09:00-11:00,Thursday 13:00-15:00",
	}}
	meetings := &fakeMeetings{booked: map[string][]Interval{
		bookedKey(1, thursday): {iv(13, 0, 13, 30)},
	}}

	newValidator := func() *Validator {
		v := NewValidator(supervisors, meetings)
		v.now = fixedClock(today)
		return v
	}

	t.Run("Nil Candidate", func(t *testing.T) {
		verdict, err := newValidator().Validate(context.Background(), nil)
		require.NoError(t, err)
		assert.False(t, verdict.OK)
		assert.Equal(t, ReasonNilMeeting, verdict.Reason)
	})

	t.Run("End Not After Start", func(t *testing.T) {
		verdict, err := newValidator().Validate(context.Background(), &Candidate{
			SupervisorID: 1,
			Date:         thursday,
			Start:        NewTimeOfDay(13, 30),
			End:          NewTimeOfDay(13, 0),
		})
		require.NoError(t, err)
		assert.Equal(t, ReasonEndNotAfter, verdict.Reason)
	})

	t.Run("Past Date", func(t *testing.T) {
		verdict, err := newValidator().Validate(context.Background(), &Candidate{
			SupervisorID: 1,
			Date:         date(2026, time.September, 4),
			Start:        NewTimeOfDay(13, 0),
			End:          NewTimeOfDay(13, 30),
		})
		require.NoError(t, err)
		assert.Equal(t, ReasonPastDate, verdict.Reason)
	})

	t.Run("Today Is Not Past", func(t *testing.T) {
		// Same calendar date as the clock passes the past-date gate even
		// though the clock is already past midnight.
		verdict, err := newValidator().Validate(context.Background(), &Candidate{
			SupervisorID: 1,
			Date:         date(2026, time.September, 7),
			Start:        NewTimeOfDay(10, 0),
			End:          NewTimeOfDay(10, 30),
		})
		require.NoError(t, err)
		assert.True(t, verdict.OK)
	})

	t.Run("Unknown Supervisor", func(t *testing.T) {
		verdict, err := newValidator().Validate(context.Background(), &Candidate{
			SupervisorID: 99,
			Date:         thursday,
			Start:        NewTimeOfDay(13, 0),
			End:          NewTimeOfDay(13, 30),
		})
		require.NoError(t, err)
		assert.Equal(t, ReasonNoSupervisor, verdict.Reason)
	})

	t.Run("Outside Office Hours", func(t *testing.T) {
		verdict, err := newValidator().Validate(context.Background(), &Candidate{
			SupervisorID: 1,
			Date:         thursday,
			Start:        NewTimeOfDay(16, 0),
			End:          NewTimeOfDay(16, 30),
		})
		require.NoError(t, err)
		assert.Equal(t, ReasonOutsideHours, verdict.Reason)
	})

	t.Run("Overrunning Block End Is Outside Hours", func(t *testing.T) {
		verdict, err := newValidator().Validate(context.Background(), &Candidate{
			SupervisorID: 1,
			Date:         thursday,
			Start:        NewTimeOfDay(14, 45),
			End:          NewTimeOfDay(15, 15),
		})
		require.NoError(t, err)
		assert.Equal(t, ReasonOutsideHours, verdict.Reason)
	})

	t.Run("Overlap With Booked Meeting", func(t *testing.T) {
		verdict, err := newValidator().Validate(context.Background(), &Candidate{
			SupervisorID: 1,
			Date:         thursday,
			Start:        NewTimeOfDay(13, 0),
			End:          NewTimeOfDay(13, 30),
		})
		require.NoError(t, err)
		assert.Equal(t, ReasonOverlap, verdict.Reason)
	})

	t.Run("Back To Back Accepted", func(t *testing.T) {
		verdict, err := newValidator().Validate(context.Background(), &Candidate{
			SupervisorID: 1,
			Date:         thursday,
			Start:        NewTimeOfDay(13, 30),
			End:          NewTimeOfDay(14, 0),
		})
		require.NoError(t, err)
		assert.True(t, verdict.OK)
		assert.Empty(t, verdict.Reason)
	})

	t.Run("Gate Order", func(t *testing.T) {
		// An inverted range on an unknown supervisor reports the range
		// failure: gates run in order and short-circuit.
		verdict, err := newValidator().Validate(context.Background(), &Candidate{
			SupervisorID: 99,
			Date:         date(2026, time.September, 4),
			Start:        NewTimeOfDay(13, 30),
			End:          NewTimeOfDay(13, 0),
		})
		require.NoError(t, err)
		assert.Equal(t, ReasonEndNotAfter, verdict.Reason)
	})
}

func TestValidatorSourceErrors(t *testing.T) {
	today := time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC)
	candidate := &Candidate{
		SupervisorID: 1,
		Date:         date(2026, time.September, 10),
		Start:        NewTimeOfDay(13, 0),
		End:          NewTimeOfDay(13, 30),
	}

	t.Run("Supervisor Source Failure", func(t *testing.T) {
		v := NewValidator(&fakeSupervisors{err: errors.New("db down")}, &fakeMeetings{})
		v.now = fixedClock(today)

		_, err := v.Validate(context.Background(), candidate)
		assert.Error(t, err)
	})

	t.Run("Meeting Source Failure", func(t *testing.T) {
		supervisors := &fakeSupervisors{schedules: map[int64]string{
			1: "Monday 09:00-11:00,Thursday 13:00-15:00",
		}}
		v := NewValidator(supervisors, &fakeMeetings{err: errors.New("db down")})
		v.now = fixedClock(today)

		_, err := v.Validate(context.Background(), candidate)
		assert.Error(t, err)
	})
}
