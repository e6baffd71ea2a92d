package core

import (
	"fmt"
	"time"
)

// DayFormat is the canonical day-bucket key. All day-level comparisons work
// on these strings rather than time.Time identity, so bucket boundaries do
// not drift with timezone offsets.
const DayFormat = "2006-01-02"

type RangePreset string

const (
	Range7d   RangePreset = "7d"
	Range30d  RangePreset = "30d"
	Range90d  RangePreset = "90d"
	Range365d RangePreset = "365d"
	RangeYear RangePreset = "year"
	RangeAll  RangePreset = "all"
)

// ParsePreset validates a range preset string, defaulting empty input to
// the year preset.
func ParsePreset(s string) (RangePreset, error) {
	switch RangePreset(s) {
	case Range7d, Range30d, Range90d, Range365d, RangeYear, RangeAll:
		return RangePreset(s), nil
	case "":
		return RangeYear, nil
	}
	return "", fmt.Errorf("unknown range preset %q", s)
}

// DateRange is an inclusive day-level analysis window.
type DateRange struct {
	Start  time.Time   `json:"start"`
	End    time.Time   `json:"end"`
	Preset RangePreset `json:"preset,omitempty"`
}

// NewRange builds the window for a preset, anchored at now. Both endpoints
// are normalized to UTC midnight.
func NewRange(preset RangePreset, now time.Time) DateRange {
	end := DayStart(now)
	var start time.Time

	switch preset {
	case Range7d:
		start = end.AddDate(0, 0, -7)
	case Range30d:
		start = end.AddDate(0, 0, -30)
	case Range90d:
		start = end.AddDate(0, 0, -90)
	case Range365d:
		start = end.AddDate(0, 0, -365)
	case RangeYear:
		start = time.Date(end.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default: // all
		start = end.AddDate(-5, 0, 0)
	}

	return DateRange{Start: start, End: end, Preset: preset}
}

// DayStart truncates t to UTC midnight.
func DayStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey formats t as a day-bucket key.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayFormat)
}

// Contains reports whether t falls inside the window, at day granularity.
func (r DateRange) Contains(t time.Time) bool {
	key := DayKey(t)
	return key >= DayKey(r.Start) && key <= DayKey(r.End)
}

// ContainsDay reports whether a day key falls inside the window.
func (r DateRange) ContainsDay(key string) bool {
	return key >= DayKey(r.Start) && key <= DayKey(r.End)
}

// Days returns every day key in the window, ascending. Exactly one entry
// per calendar day.
func (r DateRange) Days() []string {
	start := DayStart(r.Start)
	end := DayStart(r.End)

	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, DayKey(d))
	}
	return days
}
