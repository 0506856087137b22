package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func iv(startHour, startMin, endHour, endMin int) Interval {
	return Interval{NewTimeOfDay(startHour, startMin), NewTimeOfDay(endHour, endMin)}
}

func TestOverlaps(t *testing.T) {
	t.Run("Overlapping", func(t *testing.T) {
		assert.True(t, Overlaps(iv(9, 0, 10, 0), iv(9, 30, 10, 30)))
		assert.True(t, Overlaps(iv(9, 30, 10, 30), iv(9, 0, 10, 0)))
		// Full containment, both directions.
		assert.True(t, Overlaps(iv(9, 0, 11, 0), iv(9, 30, 10, 0)))
		assert.True(t, Overlaps(iv(9, 30, 10, 0), iv(9, 0, 11, 0)))
		// Identical intervals.
		assert.True(t, Overlaps(iv(9, 0, 9, 30), iv(9, 0, 9, 30)))
	})

	t.Run("Touching Endpoints Do Not Conflict", func(t *testing.T) {
		assert.False(t, Overlaps(iv(9, 0, 9, 30), iv(9, 30, 10, 0)))
		assert.False(t, Overlaps(iv(9, 30, 10, 0), iv(9, 0, 9, 30)))
	})

	t.Run("Disjoint", func(t *testing.T) {
		assert.False(t, Overlaps(iv(9, 0, 9, 30), iv(14, 0, 14, 30)))
	})
}

func TestHasConflict(t *testing.T) {
	booked := []Interval{
		iv(9, 0, 9, 30),
		iv(13, 0, 13, 30),
	}

	assert.True(t, HasConflict(iv(9, 15, 9, 45), booked))
	assert.False(t, HasConflict(iv(9, 30, 10, 0), booked))
	assert.False(t, HasConflict(iv(10, 0, 10, 30), booked))
	assert.False(t, HasConflict(iv(9, 0, 9, 30), nil))
}
