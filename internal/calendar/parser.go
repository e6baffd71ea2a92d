// Package calendar reconstructs a daily contribution calendar from the
// level-coded markup GitHub serves for a profile's contribution graph.
// The markup only exposes a 0-4 intensity level per day plus an exact
// yearly total in the heading; the estimator redistributes the total
// proportionally across the leveled days.
package calendar

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/vukan322/devinsights/internal/core"
)

var (
	// "919 contributions in 2025" (the count may carry thousands separators).
	totalRe = regexp.MustCompile(`(?i)(\d[\d,]*)\s+contributions?\s+in`)

	// <td ... data-date="2025-01-15" ... data-level="2" ...>
	cellRe = regexp.MustCompile(`data-date="(\d{4}-\d{2}-\d{2})"[^>]*data-level="(\d)"`)
)

// Fallback estimate per intensity level, used when no authoritative total
// is available. GitHub's buckets are roughly 1-3 / 4-6 / 7-9 / 10+.
var levelEstimates = [5]int{0, 2, 5, 8, 12}

// Parse extracts the contribution calendar from profile markup. When the
// heading total is present and at least one day has a nonzero level, the
// total is distributed proportionally by level weight and the rounding
// remainder is settled against the highest-level days, so the day counts
// sum exactly to the total. Otherwise counts fall back to per-level
// estimates.
func Parse(markup string) core.ContributionCalendar {
	total := extractTotal(markup)

	matches := cellRe.FindAllStringSubmatch(markup, -1)
	days := make([]core.ContributionDay, 0, len(matches))
	totalWeight := 0
	for _, m := range matches {
		level, _ := strconv.Atoi(m[2])
		days = append(days, core.ContributionDay{Date: m[1], Level: level})
		if level > 0 {
			totalWeight += level
		}
	}

	if total > 0 && totalWeight > 0 {
		distribute(days, total, totalWeight)
		return core.ContributionCalendar{TotalContributions: total, Days: days}
	}

	sum := 0
	for i := range days {
		days[i].Count = estimateFromLevel(days[i].Level)
		sum += days[i].Count
	}
	return core.ContributionCalendar{TotalContributions: sum, Days: days}
}

func extractTotal(markup string) int {
	m := totalRe.FindStringSubmatch(markup)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return 0
	}
	return n
}

func distribute(days []core.ContributionDay, total, totalWeight int) {
	sum := 0
	for i := range days {
		if days[i].Level > 0 {
			days[i].Count = int(float64(days[i].Level)/float64(totalWeight)*float64(total) + 0.5)
		}
		sum += days[i].Count
	}

	// Settle the rounding remainder one unit at a time, highest levels first.
	diff := total - sum
	if diff == 0 {
		return
	}

	order := make([]int, len(days))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return days[order[a]].Level > days[order[b]].Level
	})

	step := 1
	if diff < 0 {
		step = -1
		diff = -diff
	}
	for i := 0; i < diff && i < len(order); i++ {
		days[order[i]].Count += step
	}
}

func estimateFromLevel(level int) int {
	if level < 0 || level >= len(levelEstimates) {
		return 0
	}
	return levelEstimates[level]
}
