package gamify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vukan322/devinsights/internal/core"
)

func badgeByID(t *testing.T, badges []core.Badge, id string) core.Badge {
	t.Helper()
	for _, b := range badges {
		if b.ID == id {
			return b
		}
	}
	t.Fatalf("badge %q not found", id)
	return core.Badge{}
}

func TestBadges_EvaluatesEveryDefinition(t *testing.T) {
	badges := Badges(core.UserStats{})

	require.Len(t, badges, len(badgeDefinitions))
	for _, b := range badges {
		assert.False(t, b.Earned, b.ID)
		assert.Zero(t, b.Progress, b.ID)
	}
}

func TestBadges_ThresholdBoundary(t *testing.T) {
	below := Badges(core.UserStats{LongestStreak: 6})
	at := Badges(core.UserStats{LongestStreak: 7})

	b := badgeByID(t, below, "week-streak")
	assert.False(t, b.Earned)
	assert.InDelta(t, 6.0/7.0*100, b.Progress, 0.001)

	b = badgeByID(t, at, "week-streak")
	assert.True(t, b.Earned)
	assert.Equal(t, 100.0, b.Progress)
}

func TestBadges_ProgressCapsAtHundred(t *testing.T) {
	badges := Badges(core.UserStats{TotalStars: 500})

	b := badgeByID(t, badges, "rising-star")
	assert.True(t, b.Earned)
	assert.Equal(t, 100.0, b.Progress)
}

func TestBadges_NightOwlPercentage(t *testing.T) {
	var stats core.UserStats
	stats.ContributionsByHour[23] = 4
	stats.ContributionsByHour[2] = 1
	stats.ContributionsByHour[14] = 5

	badges := Badges(stats)

	b := badgeByID(t, badges, "night-owl")
	assert.True(t, b.Earned) // 5 of 10 commits at night
	assert.Equal(t, 100.0, b.Progress)

	b = badgeByID(t, badges, "9-to-5")
	assert.False(t, b.Earned) // 50% business hours, needs 60%
}

func TestBadges_WeekendWarrior(t *testing.T) {
	var stats core.UserStats
	stats.ContributionsByDayOfWeek[0] = 3 // Sunday
	stats.ContributionsByDayOfWeek[6] = 3 // Saturday
	stats.ContributionsByDayOfWeek[2] = 4

	badges := Badges(stats)

	b := badgeByID(t, badges, "weekend-warrior")
	assert.True(t, b.Earned) // 60% on weekends
}

func TestBadges_StreakTiers(t *testing.T) {
	badges := Badges(core.UserStats{LongestStreak: 45})

	assert.True(t, badgeByID(t, badges, "week-streak").Earned)
	assert.True(t, badgeByID(t, badges, "month-streak").Earned)
	assert.False(t, badgeByID(t, badges, "100-day-streak").Earned)
	assert.False(t, badgeByID(t, badges, "365-day-streak").Earned)
}

func TestBadges_FirstStar(t *testing.T) {
	badges := Badges(core.UserStats{TotalStars: 1})

	b := badgeByID(t, badges, "first-star")
	assert.True(t, b.Earned)
}

func TestBadges_Polyglot(t *testing.T) {
	langs := map[string]int64{"Go": 1, "Rust": 1, "Python": 1, "C": 1, "Zig": 1}
	badges := Badges(core.UserStats{Languages: langs})

	assert.True(t, badgeByID(t, badges, "polyglot").Earned)
	assert.False(t, badgeByID(t, badges, "language-master").Earned)
}

func TestBadges_VelocityUsesBiggestPeriods(t *testing.T) {
	stats := core.UserStats{
		BiggestDay:  core.BiggestDay{Count: 12},
		BiggestWeek: core.BiggestWeek{Count: 60},
	}

	badges := Badges(stats)

	assert.True(t, badgeByID(t, badges, "productive-day").Earned)
	assert.True(t, badgeByID(t, badges, "sprint").Earned)
	assert.False(t, badgeByID(t, badges, "speed-demon").Earned)
}
