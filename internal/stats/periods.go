package stats

import (
	"sort"
	"time"

	"github.com/vukan322/devinsights/internal/core"
)

// Biggest-period computations operate on Commits, not Count. Ties keep the
// earliest key so results stay deterministic.

func biggestDay(series []core.DailyContribution) core.BiggestDay {
	best := core.BiggestDay{}
	for _, d := range series {
		if d.Commits > best.Count {
			best = core.BiggestDay{Date: d.Date, Count: d.Commits}
		}
	}
	return best
}

func biggestWeek(series []core.DailyContribution) core.BiggestWeek {
	totals := make(map[string]int)
	for _, d := range series {
		totals[weekStart(d.Date)] += d.Commits
	}

	best := core.BiggestWeek{}
	for _, start := range sortedKeys(totals) {
		if totals[start] > best.Count {
			best = core.BiggestWeek{StartDate: start, Count: totals[start]}
		}
	}
	return best
}

func biggestMonth(series []core.DailyContribution) core.BiggestMonth {
	totals := make(map[string]int)
	for _, d := range series {
		totals[monthKey(d.Date)] += d.Commits
	}

	best := core.BiggestMonth{}
	for _, month := range sortedKeys(totals) {
		if totals[month] > best.Count {
			best = core.BiggestMonth{Month: month, Count: totals[month]}
		}
	}
	return best
}

// weekStart maps a day key to the Sunday that opens its week.
func weekStart(dayKey string) string {
	t, err := time.Parse(core.DayFormat, dayKey)
	if err != nil {
		return dayKey
	}
	return core.DayKey(t.AddDate(0, 0, -int(t.Weekday())))
}

func monthKey(dayKey string) string {
	if len(dayKey) < 7 {
		return dayKey
	}
	return dayKey[:7]
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// velocity summarizes the commit series. Weekly buckets are non-overlapping
// 7-day sums over the chronological series, last partial week included as-is;
// monthly buckets are calendar months. The trend splits the last four weekly
// buckets into halves and compares their means.
func velocity(series []core.DailyContribution) core.Velocity {
	daily := make([]int, len(series))
	for i, d := range series {
		daily[i] = d.Commits
	}

	var weekly []int
	for i := 0; i < len(series); i += 7 {
		end := i + 7
		if end > len(series) {
			end = len(series)
		}
		total := 0
		for _, d := range series[i:end] {
			total += d.Commits
		}
		weekly = append(weekly, total)
	}

	monthTotals := make(map[string]int)
	for _, d := range series {
		monthTotals[monthKey(d.Date)] += d.Commits
	}
	var monthly []int
	for _, month := range sortedKeys(monthTotals) {
		monthly = append(monthly, monthTotals[month])
	}

	return core.Velocity{
		Daily:   daily,
		Weekly:  weekly,
		Monthly: monthly,
		Trend:   weeklyTrend(weekly),
		Average: mean(daily),
	}
}

func weeklyTrend(weekly []int) core.Trend {
	recent := weekly
	if len(recent) > 4 {
		recent = recent[len(recent)-4:]
	}
	if len(recent) < 2 {
		return core.TrendStable
	}

	mid := len(recent) / 2
	earlier := mean(recent[:mid])
	later := mean(recent[mid:])

	switch {
	case later > earlier*1.1:
		return core.TrendIncreasing
	case later < earlier*0.9:
		return core.TrendDecreasing
	}
	return core.TrendStable
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0
	for _, v := range values {
		total += v
	}
	return float64(total) / float64(len(values))
}
