package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vukan322/devinsights/internal/core"
)

var anchor = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

func rangeDays(n int) core.DateRange {
	return core.DateRange{Start: anchor.AddDate(0, 0, -(n - 1)), End: anchor}
}

func pushEvent(at time.Time, commits int) core.Event {
	cs := make([]core.Commit, commits)
	for i := range cs {
		cs[i] = core.Commit{SHA: "abc", Message: "change"}
	}
	return core.Event{Type: core.EventPush, CreatedAt: at, Payload: core.EventPayload{Commits: cs}}
}

func calendarFor(rng core.DateRange, counts []int) *core.ContributionCalendar {
	days := rng.Days()
	cal := &core.ContributionCalendar{}
	for i, key := range days {
		count := 0
		if i < len(counts) {
			count = counts[i]
		}
		cal.Days = append(cal.Days, core.ContributionDay{Date: key, Count: count})
		cal.TotalContributions += count
	}
	return cal
}

func TestCompute_DayCoverageInvariant(t *testing.T) {
	rng := rangeDays(31)

	s := Compute(core.User{}, nil, nil, nil, rng, nil)

	require.Len(t, s.ContributionsByDay, 31)
	for i, d := range s.ContributionsByDay {
		if i > 0 {
			assert.Less(t, s.ContributionsByDay[i-1].Date, d.Date)
		}
		assert.Zero(t, d.Count)
		assert.Zero(t, d.Commits)
	}
	assert.Equal(t, core.DayKey(rng.Start), s.ContributionsByDay[0].Date)
	assert.Equal(t, core.DayKey(rng.End), s.ContributionsByDay[30].Date)
}

func TestCompute_EventsFallbackScenario(t *testing.T) {
	rng := rangeDays(10)

	var events []core.Event
	for i := 0; i < 5; i++ {
		events = append(events, pushEvent(anchor.AddDate(0, 0, -i).Add(10*time.Hour), 2))
	}

	s := Compute(core.User{}, nil, events, nil, rng, nil)

	assert.Equal(t, 10, s.TotalCommits)

	sumCommits, sumElsewhere := 0, 0
	for _, d := range s.ContributionsByDay {
		sumCommits += d.Commits
		sumElsewhere += d.PRs + d.Issues + d.Reviews
	}
	assert.Equal(t, 10, sumCommits)
	assert.Zero(t, sumElsewhere)
}

func TestCompute_CalendarOverridesEvents(t *testing.T) {
	rng := rangeDays(5)
	cal := calendarFor(rng, []int{3, 0, 7, 1, 4})

	// Push events in range would claim 20 commits; the calendar wins.
	events := []core.Event{pushEvent(anchor.Add(9 * time.Hour), 20)}

	s := Compute(core.User{}, nil, events, nil, rng, cal)

	assert.Equal(t, 15, s.TotalCommits)
	last := s.ContributionsByDay[len(s.ContributionsByDay)-1]
	assert.Equal(t, 4, last.Commits, "calendar count, not the 20 event commits")
}

func TestCompute_CalendarFilteredToRange(t *testing.T) {
	rng := rangeDays(3)

	cal := &core.ContributionCalendar{Days: []core.ContributionDay{
		{Date: "2025-01-01", Count: 100}, // outside range
		{Date: core.DayKey(anchor), Count: 5},
	}}
	cal.TotalContributions = 105

	s := Compute(core.User{}, nil, nil, nil, rng, cal)

	assert.Equal(t, 5, s.TotalCommits)
}

func TestCompute_EventOverlayAddsNonCommitActivity(t *testing.T) {
	rng := rangeDays(5)
	cal := calendarFor(rng, []int{1, 1, 1, 1, 1})

	opened := "opened"
	events := []core.Event{
		{Type: core.EventPR, CreatedAt: anchor.Add(time.Hour), Payload: core.EventPayload{Action: opened, PullRequest: &core.PullRequest{Merged: true}}},
		{Type: core.EventIssues, CreatedAt: anchor.Add(2 * time.Hour), Payload: core.EventPayload{Action: opened}},
		{Type: core.EventIssues, CreatedAt: anchor.Add(3 * time.Hour), Payload: core.EventPayload{Action: "closed"}},
		{Type: core.EventPRReview, CreatedAt: anchor.Add(4 * time.Hour)},
		{Type: "WatchEvent", CreatedAt: anchor.Add(5 * time.Hour)}, // ignored
	}

	s := Compute(core.User{}, nil, events, nil, rng, cal)

	assert.Equal(t, 1, s.TotalPRs)
	assert.Equal(t, 1, s.TotalPRsMerged)
	assert.Equal(t, 1, s.TotalIssues)
	assert.Equal(t, 1, s.TotalIssuesClosed)
	assert.Equal(t, 1, s.TotalReviews)

	last := s.ContributionsByDay[len(s.ContributionsByDay)-1]
	assert.Equal(t, 1, last.Commits)
	// 1 calendar commit + PR + 2 issues + review.
	assert.Equal(t, 5, last.Count)
}

func TestStreaks(t *testing.T) {
	series := func(counts ...int) []core.DailyContribution {
		out := make([]core.DailyContribution, len(counts))
		for i, c := range counts {
			out[i] = core.DailyContribution{Count: c}
		}
		return out
	}

	current, longest := streaks(series(1, 1, 0, 1, 1, 1, 0))
	assert.Equal(t, 0, current)
	assert.Equal(t, 3, longest)

	current, longest = streaks(series(0, 1, 1, 1))
	assert.Equal(t, 3, current)
	assert.Equal(t, 3, longest)

	current, longest = streaks(series())
	assert.Zero(t, current)
	assert.Zero(t, longest)

	current, longest = streaks(series(2, 2, 2))
	assert.Equal(t, 3, current)
	assert.Equal(t, 3, longest)
}

func TestCompute_StreaksOperateOnCountNotCommits(t *testing.T) {
	rng := rangeDays(3)

	// Reviews only: commits stay zero but counts do not.
	events := []core.Event{
		{Type: core.EventPRReview, CreatedAt: anchor},
		{Type: core.EventPRReview, CreatedAt: anchor.AddDate(0, 0, -1)},
		{Type: core.EventPRReview, CreatedAt: anchor.AddDate(0, 0, -2)},
	}

	s := Compute(core.User{}, nil, events, nil, rng, nil)

	assert.Zero(t, s.TotalCommits)
	assert.Equal(t, 3, s.CurrentStreak)
	assert.Equal(t, 3, s.LongestStreak)
}

func TestCompute_PatternDetectionIgnoresRangeFilter(t *testing.T) {
	rng := rangeDays(7)

	// A push long before the window still shapes the hourly distribution.
	old := pushEvent(anchor.AddDate(0, 0, -60).Add(23*time.Hour), 4)

	s := Compute(core.User{}, nil, []core.Event{old}, nil, rng, nil)

	assert.Zero(t, s.TotalCommits, "out-of-range event must not count toward totals")
	assert.Equal(t, 4, s.ContributionsByHour[23])
}

func TestPushWeight(t *testing.T) {
	withCommits := pushEvent(anchor, 3)
	assert.Equal(t, 3, pushWeight(withCommits))

	truncated := core.Event{Type: core.EventPush, Payload: core.EventPayload{Size: 7}}
	assert.Equal(t, 7, pushWeight(truncated))

	bare := core.Event{Type: core.EventPush}
	assert.Equal(t, 1, pushWeight(bare), "a push always contributes at least one unit")
}

func TestCompute_OwnRepoTotalsExcludeForks(t *testing.T) {
	repos := []core.Repo{
		{Name: "a", StargazersCount: 10, ForksCount: 2, PushedAt: anchor},
		{Name: "b", StargazersCount: 5, ForksCount: 1, Fork: true, PushedAt: anchor},
	}

	s := Compute(core.User{}, repos, nil, nil, rangeDays(7), nil)

	assert.Equal(t, 10, s.TotalStars)
	assert.Equal(t, 2, s.TotalForks)
	assert.Equal(t, 1, s.TotalRepos)
}
