package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studentwell/supervision_scheduler/internal/model"
	"github.com/studentwell/supervision_scheduler/internal/schedule"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestWeekImage(t *testing.T) {
	spec := schedule.ParseSpec("Monday 09:00-11:00,Thursday 13:00-15:00")

	// Локальная зона западнее UTC, дата встречи из базы в UTC
	loc := time.FixedZone("UTC-5", -5*3600)
	at := time.Date(2026, time.September, 9, 12, 0, 0, 0, loc)
	meetings := []*model.Meeting{{
		MeetingDate: time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
		StartTime:   schedule.NewTimeOfDay(13, 0),
		EndTime:     schedule.NewTimeOfDay(13, 30),
	}}

	png, err := WeekImage(spec, meetings, at)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngSignature), "output should be a PNG")
}

func TestDayColumn(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	weekStart := time.Date(2026, time.September, 7, 0, 0, 0, 0, loc)

	utcDate := func(day int) time.Time {
		return time.Date(2026, time.September, day, 0, 0, 0, 0, time.UTC)
	}

	// Понедельник в UTC наступает раньше локальной полуночи, но колонка
	// определяется календарной датой, а не моментом времени
	assert.Equal(t, 0, dayColumn(weekStart, utcDate(7)))
	assert.Equal(t, 3, dayColumn(weekStart, utcDate(10)))
	assert.Equal(t, 4, dayColumn(weekStart, utcDate(11)))

	// За пределами отображаемой недели
	assert.Equal(t, -1, dayColumn(weekStart, utcDate(6)))
	assert.Equal(t, -1, dayColumn(weekStart, utcDate(14)))
}
