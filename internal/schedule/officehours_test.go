package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Run("Valid Times", func(t *testing.T) {
		got, err := ParseTimeOfDay("09:30")
		require.NoError(t, err)
		assert.Equal(t, NewTimeOfDay(9, 30), got)

		got, err = ParseTimeOfDay("9:05")
		require.NoError(t, err)
		assert.Equal(t, NewTimeOfDay(9, 5), got)

		got, err = ParseTimeOfDay(" 17:00 ")
		require.NoError(t, err)
		assert.Equal(t, NewTimeOfDay(17, 0), got)
	})

	t.Run("Invalid Times", func(t *testing.T) {
		for _, s := range []string{"0900", "25:00", "09:61", "ab:cd", "-1:00", ""} {
			_, err := ParseTimeOfDay(s)
			assert.Error(t, err, "input %q should not parse", s)
		}
	})

	t.Run("Formatting", func(t *testing.T) {
		assert.Equal(t, "09:05", NewTimeOfDay(9, 5).String())
		assert.Equal(t, "00:00", TimeOfDay(0).String())
		assert.Equal(t, "17:30", NewTimeOfDay(17, 30).String())
	})
}

func TestParseSpec(t *testing.T) {
	t.Run("Two Blocks Round Trip", func(t *testing.T) {
		text := "Monday 09:00-11:00,Thursday 13:00-15:00"
		spec := ParseSpec(text)

		blocks := spec.Blocks()
		require.Len(t, blocks, 2)
		assert.Equal(t, Block{time.Monday, NewTimeOfDay(9, 0), NewTimeOfDay(11, 0)}, blocks[0])
		assert.Equal(t, Block{time.Thursday, NewTimeOfDay(13, 0), NewTimeOfDay(15, 0)}, blocks[1])

		assert.Equal(t, text, spec.Format())
	})

	t.Run("Whitespace And Case Tolerated", func(t *testing.T) {
		spec := ParseSpec(" monday  09:00-11:00 , THURSDAY 13:00-15:00 ")
		require.Len(t, spec.Blocks(), 2)
		assert.Equal(t, time.Monday, spec.Blocks()[0].Weekday)
		assert.Equal(t, time.Thursday, spec.Blocks()[1].Weekday)
	})

	t.Run("Malformed Segments Dropped Silently", func(t *testing.T) {
		cases := map[string]int{
			"Monday 9-11,Thursday 13:00-15:00":            1, // times without colon dropped
			"Funday 09:00-11:00,Monday 09:00-11:00":       1, // unknown weekday dropped
			"Monday 11:00-09:00,Thursday 13:00-15:00":     1, // start not before end dropped
			"Monday 09:00-09:00":                          0, // zero-length block dropped
			"Monday":                                      0, // missing time range
			"":                                            0,
			"Monday 09:00-11:00,,Thursday 13:00-15:00":    2, // empty segment skipped
			"Monday 09:00-11:00,Monday 14:00-16:00":       2, // duplicates kept at parse level
			"Saturday 09:00-11:00,Thursday 13:00-15:00":   2, // weekends valid at parse level
			"Monday 25:00-26:00,Thursday 13:00-15:00":     1, // out-of-range hour dropped
			"garbage text here,Thursday 13:00-15:00":      1,
			"Wednesday extra words here 10:00-12:00":      0, // wrong token count dropped
		}

		for text, want := range cases {
			assert.Len(t, ParseSpec(text).Blocks(), want, "input %q", text)
		}
	})

	t.Run("Empty Spec", func(t *testing.T) {
		assert.True(t, ParseSpec("").IsEmpty())
		assert.True(t, Spec{}.IsEmpty())
		assert.Equal(t, "", Spec{}.Format())
	})
}

func TestSpecContains(t *testing.T) {
	spec := ParseSpec("Monday 09:00-11:00,Thursday 13:00-15:00")

	t.Run("Inside Block", func(t *testing.T) {
		assert.True(t, spec.Contains(time.Monday, NewTimeOfDay(9, 0), NewTimeOfDay(9, 30)))
		assert.True(t, spec.Contains(time.Monday, NewTimeOfDay(10, 30), NewTimeOfDay(11, 0)))
		assert.True(t, spec.Contains(time.Thursday, NewTimeOfDay(13, 0), NewTimeOfDay(15, 0)))
	})

	t.Run("Outside Block", func(t *testing.T) {
		// Wrong weekday.
		assert.False(t, spec.Contains(time.Tuesday, NewTimeOfDay(9, 0), NewTimeOfDay(9, 30)))
		// Overruns block end.
		assert.False(t, spec.Contains(time.Monday, NewTimeOfDay(10, 30), NewTimeOfDay(11, 30)))
		// Before block start.
		assert.False(t, spec.Contains(time.Monday, NewTimeOfDay(8, 30), NewTimeOfDay(9, 0)))
	})
}

func TestCheckOfficeHoursPolicy(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		spec := ParseSpec("Monday 09:00-11:00,Thursday 13:00-15:00")
		assert.NoError(t, CheckOfficeHoursPolicy(spec))

		// Edges of the allowed window.
		spec = ParseSpec("Monday 08:00-10:00,Friday 16:00-18:00")
		assert.NoError(t, CheckOfficeHoursPolicy(spec))
	})

	t.Run("Wrong Block Count", func(t *testing.T) {
		assert.Error(t, CheckOfficeHoursPolicy(ParseSpec("Monday 09:00-11:00")))
		assert.Error(t, CheckOfficeHoursPolicy(ParseSpec("Monday 09:00-11:00,Tuesday 09:00-11:00,Friday 09:00-11:00")))
		assert.Error(t, CheckOfficeHoursPolicy(Spec{}))
	})

	t.Run("Same Weekday Twice", func(t *testing.T) {
		assert.Error(t, CheckOfficeHoursPolicy(ParseSpec("Monday 09:00-11:00,Monday 14:00-16:00")))
	})

	t.Run("Weekend Block", func(t *testing.T) {
		assert.Error(t, CheckOfficeHoursPolicy(ParseSpec("Saturday 09:00-11:00,Thursday 13:00-15:00")))
	})

	t.Run("Wrong Duration", func(t *testing.T) {
		assert.Error(t, CheckOfficeHoursPolicy(ParseSpec("Monday 09:00-10:00,Thursday 13:00-15:00")))
		assert.Error(t, CheckOfficeHoursPolicy(ParseSpec("Monday 09:00-12:00,Thursday 13:00-15:00")))
	})

	t.Run("Outside Allowed Window", func(t *testing.T) {
		assert.Error(t, CheckOfficeHoursPolicy(ParseSpec("Monday 07:00-09:00,Thursday 13:00-15:00")))
		assert.Error(t, CheckOfficeHoursPolicy(ParseSpec("Monday 09:00-11:00,Thursday 16:30-18:30")))
	})
}
