package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a clock time expressed as minutes since midnight.
type TimeOfDay int

// NewTimeOfDay builds a TimeOfDay from an hour and minute pair.
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// Hour returns the hour component (0-23).
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute returns the minute component (0-59).
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// String formats the time as zero-padded 24-hour "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// At anchors the time of day to a calendar date, in the date's location.
func (t TimeOfDay) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

// ParseTimeOfDay parses "HH:MM" (hour may be a single digit) into a TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("time %q: missing colon", s)
	}

	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("time %q: bad hour", s)
	}

	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("time %q: bad minute", s)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time %q: out of range", s)
	}

	return NewTimeOfDay(hour, minute), nil
}

// Block is one recurring weekly availability window.
type Block struct {
	Weekday time.Weekday
	Start   TimeOfDay
	End     TimeOfDay
}

// String formats the block in the office-hours text format,
// e.g. "Monday 09:00-11:00".
func (b Block) String() string {
	return fmt.Sprintf("%s %s-%s", b.Weekday, b.Start, b.End)
}

// Spec is a supervisor's full recurring availability: an ordered set of
// blocks. The zero value is an empty spec that never yields slots.
type Spec struct {
	blocks []Block
}

// NewSpec builds a spec from blocks, preserving their order.
func NewSpec(blocks ...Block) Spec {
	return Spec{blocks: append([]Block(nil), blocks...)}
}

// ParseSpec parses the comma-separated office-hours text format,
// e.g. "Monday 09:00-11:00,Thursday 13:00-15:00". Segments that fail to
// parse (wrong token count, unknown weekday, bad time, start not before
// end) are dropped silently; the result keeps whatever did parse.
func ParseSpec(text string) Spec {
	var spec Spec
	for _, segment := range strings.Split(text, ",") {
		block, err := parseBlock(segment)
		if err != nil {
			continue
		}
		spec.blocks = append(spec.blocks, block)
	}
	return spec
}

func parseBlock(segment string) (Block, error) {
	fields := strings.Fields(segment)
	if len(fields) != 2 {
		return Block{}, fmt.Errorf("segment %q: expected weekday and time range", segment)
	}

	weekday, err := parseWeekday(fields[0])
	if err != nil {
		return Block{}, err
	}

	startText, endText, ok := strings.Cut(fields[1], "-")
	if !ok {
		return Block{}, fmt.Errorf("segment %q: expected HH:MM-HH:MM", segment)
	}

	start, err := ParseTimeOfDay(startText)
	if err != nil {
		return Block{}, err
	}

	end, err := ParseTimeOfDay(endText)
	if err != nil {
		return Block{}, err
	}

	if start >= end {
		return Block{}, fmt.Errorf("segment %q: start must be before end", segment)
	}

	return Block{Weekday: weekday, Start: start, End: end}, nil
}

func parseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(name, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}

// Format serializes the spec back to the office-hours text format in
// insertion order. Parse(Format(spec)) reproduces the same blocks.
func (s Spec) Format() string {
	parts := make([]string, len(s.blocks))
	for i, b := range s.blocks {
		parts[i] = b.String()
	}
	return strings.Join(parts, ",")
}

// Blocks returns a copy of the spec's blocks in insertion order.
func (s Spec) Blocks() []Block {
	return append([]Block(nil), s.blocks...)
}

// IsEmpty reports whether the spec holds no blocks.
func (s Spec) IsEmpty() bool {
	return len(s.blocks) == 0
}

// BlocksOn returns the blocks falling on the given weekday, in insertion
// order.
func (s Spec) BlocksOn(weekday time.Weekday) []Block {
	var matched []Block
	for _, b := range s.blocks {
		if b.Weekday == weekday {
			matched = append(matched, b)
		}
	}
	return matched
}

// Contains reports whether [start, end) fits entirely inside one of the
// spec's blocks on the given weekday.
func (s Spec) Contains(weekday time.Weekday, start, end TimeOfDay) bool {
	for _, b := range s.blocks {
		if b.Weekday != weekday {
			continue
		}
		if start >= b.Start && end <= b.End {
			return true
		}
	}
	return false
}

// Office-hours policy for the update workflow. Slot generation and
// validation accept any well-formed spec; only updates are held to this.
const (
	policyBlockCount    = 2
	policyBlockMinutes  = 120
	policyEarliestStart = TimeOfDay(8 * 60)  // 08:00
	policyLatestEnd     = TimeOfDay(18 * 60) // 18:00
)

// CheckOfficeHoursPolicy enforces the update-workflow rule: exactly two
// 2-hour blocks, both within [08:00, 18:00), on distinct weekdays
// Monday-Friday.
func CheckOfficeHoursPolicy(s Spec) error {
	if len(s.blocks) != policyBlockCount {
		return fmt.Errorf("office hours must contain exactly %d blocks, got %d", policyBlockCount, len(s.blocks))
	}

	seen := make(map[time.Weekday]bool)
	for _, b := range s.blocks {
		if b.Weekday == time.Saturday || b.Weekday == time.Sunday {
			return fmt.Errorf("block %q: office hours must fall on a weekday", b)
		}
		if seen[b.Weekday] {
			return fmt.Errorf("block %q: blocks must fall on distinct weekdays", b)
		}
		seen[b.Weekday] = true

		if int(b.End-b.Start) != policyBlockMinutes {
			return fmt.Errorf("block %q: each block must span exactly 2 hours", b)
		}
		if b.Start < policyEarliestStart || b.End > policyLatestEnd {
			return fmt.Errorf("block %q: office hours must lie between %s and %s", b, policyEarliestStart, policyLatestEnd)
		}
	}

	return nil
}
