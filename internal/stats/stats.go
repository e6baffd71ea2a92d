// Package stats derives the UserStats aggregate from raw GitHub payloads.
// Everything here is a pure function of its inputs; the range end stands in
// for "today" wherever staleness or streak anchoring needs a reference day.
package stats

import (
	"sort"

	"github.com/vukan322/devinsights/internal/core"
)

// CommitSource names where the commit counts of an analysis came from.
type CommitSource string

const (
	// CalendarAuthoritative: the contribution calendar supplied the counts.
	// The calendar captures private contributions and squashed commits the
	// public events feed never sees, so it always wins when present.
	CalendarAuthoritative CommitSource = "calendar"
	// EventsFallback: counts were summed from push events in range.
	EventsFallback CommitSource = "events"
)

// commitSource decides the provenance for commit counts.
func commitSource(cal *core.ContributionCalendar) CommitSource {
	if cal != nil && len(cal.Days) > 0 {
		return CalendarAuthoritative
	}
	return EventsFallback
}

// Compute aggregates user, repo, event, language and calendar data over the
// given window into UserStats. cal may be nil when the calendar could not be
// fetched; commit counts then fall back to push events.
func Compute(user core.User, repos []core.Repo, events []core.Event, languages core.Languages, rng core.DateRange, cal *core.ContributionCalendar) core.UserStats {
	filtered := filterEvents(events, rng)
	source := commitSource(cal)

	// Range-scoped totals.
	var totalCommits, totalPRs, totalPRsMerged, totalIssues, totalIssuesClosed, totalReviews int
	for _, e := range filtered {
		switch e.Type {
		case core.EventPush:
			totalCommits += len(e.Payload.Commits)
		case core.EventPR:
			if e.Payload.Action == "opened" {
				totalPRs++
			}
			if e.Payload.PullRequest != nil && e.Payload.PullRequest.Merged {
				totalPRsMerged++
			}
		case core.EventIssues:
			if e.Payload.Action == "opened" {
				totalIssues++
			}
			if e.Payload.Action == "closed" {
				totalIssuesClosed++
			}
		case core.EventPRReview:
			totalReviews++
		}
	}

	if source == CalendarAuthoritative {
		totalCommits = 0
		for _, d := range cal.Days {
			if rng.ContainsDay(d.Date) {
				totalCommits += d.Count
			}
		}
	}

	own := ownRepos(repos)
	var totalStars, totalForks int
	for _, r := range own {
		totalStars += r.StargazersCount
		totalForks += r.ForksCount
	}

	byDay := dailyContributions(filtered, rng, cal, source)

	// Pattern detection deliberately uses the unfiltered feed: the events
	// source is capped to roughly the last 90 days regardless of the
	// requested range, so the full feed is all the signal there is.
	byHour, byWeekday := patternDistributions(events)

	current, longest := streaks(byDay)

	stats := core.UserStats{
		TotalCommits:             totalCommits,
		TotalPRs:                 totalPRs,
		TotalPRsMerged:           totalPRsMerged,
		TotalIssues:              totalIssues,
		TotalIssuesClosed:        totalIssuesClosed,
		TotalReviews:             totalReviews,
		TotalStars:               totalStars,
		TotalForks:               totalForks,
		TotalRepos:               len(own),
		Languages:                languages,
		CurrentStreak:            current,
		LongestStreak:            longest,
		ContributionsByDay:       byDay,
		ContributionsByHour:      byHour,
		ContributionsByDayOfWeek: byWeekday,
		PeakProductivity:         peakProductivity(byHour, byWeekday),
		BiggestDay:               biggestDay(byDay),
		BiggestWeek:              biggestWeek(byDay),
		BiggestMonth:             biggestMonth(byDay),
		Velocity:                 velocity(byDay),
		RepoHealth:               repoHealth(own, rng.End),
	}
	return stats
}

func filterEvents(events []core.Event, rng core.DateRange) []core.Event {
	out := make([]core.Event, 0, len(events))
	for _, e := range events {
		if rng.Contains(e.CreatedAt) {
			out = append(out, e)
		}
	}
	return out
}

func ownRepos(repos []core.Repo) []core.Repo {
	out := make([]core.Repo, 0, len(repos))
	for _, r := range repos {
		if !r.Fork {
			out = append(out, r)
		}
	}
	return out
}

// dailyContributions builds the zero-filled per-day series for the window.
// Commit counts come from the calendar when it is authoritative; event
// overlays then add PRs, issues and reviews (and commits, in fallback mode).
func dailyContributions(events []core.Event, rng core.DateRange, cal *core.ContributionCalendar, source CommitSource) []core.DailyContribution {
	days := rng.Days()
	index := make(map[string]int, len(days))
	series := make([]core.DailyContribution, len(days))
	for i, key := range days {
		index[key] = i
		series[i] = core.DailyContribution{Date: key}
	}

	if source == CalendarAuthoritative {
		for _, d := range cal.Days {
			if i, ok := index[d.Date]; ok {
				series[i].Commits = d.Count
				series[i].Count = d.Count
			}
		}
	}

	for _, e := range events {
		i, ok := index[core.DayKey(e.CreatedAt)]
		if !ok {
			continue
		}
		switch e.Type {
		case core.EventPush:
			if source == EventsFallback {
				n := len(e.Payload.Commits)
				series[i].Commits += n
				series[i].Count += n
			}
		case core.EventPR:
			series[i].PRs++
			series[i].Count++
		case core.EventIssues:
			series[i].Issues++
			series[i].Count++
		case core.EventPRReview:
			series[i].Reviews++
			series[i].Count++
		}
	}

	sort.Slice(series, func(a, b int) bool { return series[a].Date < series[b].Date })
	return series
}

// streaks walks the chronological count series. The current streak runs
// backward from the most recent day until the first inactive one; the
// longest streak is the longest run of consecutive active days anywhere.
// Both operate on Count, not Commits.
func streaks(series []core.DailyContribution) (current, longest int) {
	for i := len(series) - 1; i >= 0; i-- {
		if series[i].Count == 0 {
			break
		}
		current++
	}

	run := 0
	for _, d := range series {
		if d.Count > 0 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return current, longest
}
