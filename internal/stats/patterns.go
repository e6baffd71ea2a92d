package stats

import "github.com/vukan322/devinsights/internal/core"

// patternDistributions counts push activity per hour of day and per weekday
// over the whole event feed. A push contributes its commit count, or the
// payload size when the commit list was truncated away, and never less than
// one unit.
func patternDistributions(events []core.Event) (byHour [24]int, byWeekday [7]int) {
	for _, e := range events {
		if e.Type != core.EventPush {
			continue
		}
		w := pushWeight(e)
		t := e.CreatedAt.UTC()
		byHour[t.Hour()] += w
		byWeekday[int(t.Weekday())] += w
	}
	return byHour, byWeekday
}

func pushWeight(e core.Event) int {
	if n := len(e.Payload.Commits); n > 0 {
		return n
	}
	if e.Payload.Size > 0 {
		return e.Payload.Size
	}
	return 1
}

// peakProductivity classifies working habits from the two distributions.
// The checks run in fixed priority order; the first match wins.
func peakProductivity(byHour [24]int, byWeekday [7]int) core.PeakProductivity {
	peakHour := argmax(byHour[:])
	peakDay := argmax(byWeekday[:])

	total := sum(byHour[:])
	night := sum(byHour[22:]) + sum(byHour[:6])
	morning := sum(byHour[5:9])
	business := sum(byHour[9:17])
	evening := sum(byHour[17:22])
	weekend := byWeekday[0] + byWeekday[6]
	weekdays := sum(byWeekday[1:6])

	label := "Day Worker"
	switch {
	case total == 0:
		label = "Getting Started"
	case float64(night)/float64(total) > 0.4:
		label = "Night Owl"
	case float64(morning)/float64(total) > 0.3:
		label = "Early Bird"
	case weekend+weekdays > 0 && float64(weekend)/float64(weekend+weekdays) > 0.5:
		label = "Weekend Warrior"
	case float64(evening)/float64(total) > 0.4:
		label = "Evening Coder"
	case float64(business)/float64(total) > 0.6:
		label = "9-to-5 Developer"
	}

	return core.PeakProductivity{Hour: peakHour, DayOfWeek: peakDay, Label: label}
}

func argmax(values []int) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
