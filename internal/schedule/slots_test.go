package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSlotsForDate(t *testing.T) {
	spec := ParseSpec("Monday 09:00-11:00,Thursday 13:00-15:00")

	t.Run("Two Hour Block Yields Four Slots", func(t *testing.T) {
		monday := date(2026, time.September, 7)
		require.Equal(t, time.Monday, monday.Weekday())

		slots := SlotsForDate(spec, monday)
		require.Len(t, slots, 4)

		starts := []string{"09:00", "09:30", "10:00", "10:30"}
		for i, slot := range slots {
			assert.Equal(t, starts[i], slot.Start.Format("15:04"))
			assert.Equal(t, 30*time.Minute, slot.End.Sub(slot.Start))
			assert.Equal(t, monday.Day(), slot.Start.Day())
		}
	})

	t.Run("No Blocks On Weekday", func(t *testing.T) {
		tuesday := date(2026, time.September, 8)
		assert.Empty(t, SlotsForDate(spec, tuesday))
	})

	t.Run("Trailing Partial Slot Discarded", func(t *testing.T) {
		// 09:00-10:45 fits three full slots, the last 15 minutes are dropped.
		ragged := NewSpec(Block{time.Monday, NewTimeOfDay(9, 0), NewTimeOfDay(10, 45)})
		slots := SlotsForDate(ragged, date(2026, time.September, 7))
		require.Len(t, slots, 3)
		assert.Equal(t, "10:30", slots[2].End.Format("15:04"))
	})

	t.Run("Block Shorter Than Slot", func(t *testing.T) {
		tiny := NewSpec(Block{time.Monday, NewTimeOfDay(9, 0), NewTimeOfDay(9, 15)})
		assert.Empty(t, SlotsForDate(tiny, date(2026, time.September, 7)))
	})

	t.Run("Multiple Blocks Sorted By Start", func(t *testing.T) {
		multi := NewSpec(
			Block{time.Monday, NewTimeOfDay(14, 0), NewTimeOfDay(15, 0)},
			Block{time.Monday, NewTimeOfDay(9, 0), NewTimeOfDay(10, 0)},
		)
		slots := SlotsForDate(multi, date(2026, time.September, 7))
		require.Len(t, slots, 4)
		assert.Equal(t, "09:00", slots[0].Start.Format("15:04"))
		assert.Equal(t, "14:30", slots[3].Start.Format("15:04"))
	})

	t.Run("Empty Spec", func(t *testing.T) {
		assert.Empty(t, SlotsForDate(Spec{}, date(2026, time.September, 7)))
	})
}

func TestSlotInterval(t *testing.T) {
	monday := date(2026, time.September, 7)
	slot := Slot{
		Start: NewTimeOfDay(9, 0).At(monday),
		End:   NewTimeOfDay(9, 30).At(monday),
	}

	assert.Equal(t, Interval{NewTimeOfDay(9, 0), NewTimeOfDay(9, 30)}, slot.Interval())
}
