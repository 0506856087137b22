package schedule

import (
	"sort"
	"time"
)

// SlotMinutes is the fixed bookable-slot granularity.
const SlotMinutes = 30

// Slot is a concrete, dated, bookable interval derived from a block.
type Slot struct {
	Start time.Time
	End   time.Time
}

// Interval projects the slot onto its time-of-day interval.
func (s Slot) Interval() Interval {
	return Interval{
		Start: NewTimeOfDay(s.Start.Hour(), s.Start.Minute()),
		End:   NewTimeOfDay(s.End.Hour(), s.End.Minute()),
	}
}

// SlotsForDate expands the spec's blocks matching the date's weekday into
// consecutive 30-minute slots. A trailing partial interval that would
// overrun the block is discarded. Slots are ordered by start time, ties
// broken by block declaration order. Blocks are not deduplicated.
func SlotsForDate(spec Spec, date time.Time) []Slot {
	var slots []Slot
	for _, block := range spec.BlocksOn(date.Weekday()) {
		for cur := block.Start; cur+SlotMinutes <= block.End; cur += SlotMinutes {
			slots = append(slots, Slot{
				Start: cur.At(date),
				End:   (cur + SlotMinutes).At(date),
			})
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})

	return slots
}
