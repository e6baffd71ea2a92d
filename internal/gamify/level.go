// Package gamify turns a UserStats aggregate into XP, levels, badges and a
// head-to-head competition score. Every function is total: absent data
// yields zero XP or unmet criteria, never an error.
package gamify

import (
	"sort"

	"github.com/vukan322/devinsights/internal/core"
)

// XP awards per activity unit. A merged PR earns both the opened and the
// merged award.
const (
	xpCommit      = 10
	xpPROpened    = 25
	xpPRMerged    = 50
	xpReview      = 20
	xpIssueOpened = 15
	xpIssueClosed = 30
	xpStar        = 5
	xpFork        = 10
)

// levelThresholds[i] is the XP required for level i+1.
var levelThresholds = []int{
	0, 100, 300, 600, 1000, 1500, 2200, 3000, 4000, 5000,
	6500, 8000, 10000, 12500, 15000, 18000, 22000, 27000, 33000, 40000,
	50000, 62000, 75000, 90000, 110000, 135000, 165000, 200000, 250000, 310000,
	380000, 460000, 550000, 660000, 790000, 940000, 1100000, 1300000, 1550000, 1850000,
	2200000, 2600000, 3100000, 3700000, 4400000, 5200000, 6100000, 7200000, 8500000, 10000000,
}

var levelTitles = map[int]string{
	1:   "Code Newbie",
	5:   "Junior Developer",
	10:  "Developer",
	15:  "Senior Developer",
	20:  "Lead Developer",
	25:  "Staff Engineer",
	30:  "Principal Engineer",
	35:  "Distinguished Engineer",
	40:  "Architect",
	45:  "Senior Architect",
	50:  "Code Wizard",
	60:  "Code Master",
	75:  "GitHub Master",
	90:  "GitHub Legend",
	100: "GitHub God",
}

// XP computes total experience as a weighted sum over the stat totals.
func XP(stats core.UserStats) int {
	return stats.TotalCommits*xpCommit +
		stats.TotalPRs*xpPROpened +
		stats.TotalPRsMerged*xpPRMerged +
		stats.TotalReviews*xpReview +
		stats.TotalIssues*xpIssueOpened +
		stats.TotalIssuesClosed*xpIssueClosed +
		stats.TotalStars*xpStar +
		stats.TotalForks*xpFork
}

// Level resolves total XP into a level, title and progress toward the next
// level. Levels cap at 100; past the top threshold progress pins at 100.
func Level(totalXP int) core.LevelInfo {
	level := 1
	for i, threshold := range levelThresholds {
		if totalXP >= threshold {
			level = i + 1
		} else {
			break
		}
	}
	if level > 100 {
		level = 100
	}

	currentThreshold := levelThresholds[level-1]
	nextThreshold := levelThresholds[len(levelThresholds)-1]
	if level < len(levelThresholds) {
		nextThreshold = levelThresholds[level]
	}

	currentXP := totalXP - currentThreshold
	need := nextThreshold - currentThreshold

	progress := 100.0
	if need > 0 {
		progress = float64(currentXP) / float64(need) * 100
		if progress > 100 {
			progress = 100
		}
	}

	return core.LevelInfo{
		Level:      level,
		Title:      titleFor(level),
		CurrentXP:  currentXP,
		XPForNext:  need,
		XPProgress: progress,
		TotalXP:    totalXP,
	}
}

// titleFor picks the highest titled tier at or below the level.
func titleFor(level int) string {
	tiers := make([]int, 0, len(levelTitles))
	for tier := range levelTitles {
		tiers = append(tiers, tier)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(tiers)))

	for _, tier := range tiers {
		if level >= tier {
			return levelTitles[tier]
		}
	}
	return levelTitles[1]
}

// CompetitionScore is the single number used for head-to-head comparison.
func CompetitionScore(stats core.UserStats) int {
	return stats.TotalCommits*1 +
		stats.TotalPRs*2 +
		stats.TotalStars*3 +
		stats.LongestStreak*5 +
		len(stats.Languages)*10 +
		stats.TotalRepos*1
}
