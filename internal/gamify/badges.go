package gamify

import "github.com/vukan322/devinsights/internal/core"

// CriterionKind is the closed set of stat extractions a badge can test.
type CriterionKind int

const (
	KindNightCommitPercent CriterionKind = iota
	KindMorningCommitPercent
	KindBusinessHoursPercent
	KindWeekendCommitPercent
	KindStreak
	KindReviews
	KindStars
	KindLanguages
	KindBiggestDay
	KindBiggestWeek
	KindCommits
	KindRepos
)

// Comparison is how a badge's extracted value meets its threshold.
type Comparison int

const (
	CompareGTE Comparison = iota
	CompareLTE
	CompareEQ
	// ComparePercent behaves like GTE but the value is already a percentage,
	// so progress is the value itself clamped to 100.
	ComparePercent
)

type criteria struct {
	kind      CriterionKind
	threshold float64
	compare   Comparison
}

type definition struct {
	id          string
	name        string
	description string
	icon        string
	category    core.BadgeCategory
	rarity      core.BadgeRarity
	criteria    criteria
}

var badgeDefinitions = []definition{
	// Productivity
	{"night-owl", "Night Owl", "40%+ of commits between 10 PM - 6 AM", "moon",
		core.CategoryProductivity, core.RarityUncommon, criteria{KindNightCommitPercent, 40, CompareGTE}},
	{"early-bird", "Early Bird", "40%+ of commits between 5 AM - 9 AM", "sunrise",
		core.CategoryProductivity, core.RarityUncommon, criteria{KindMorningCommitPercent, 40, CompareGTE}},
	{"9-to-5", "9-to-5 Grind", "60%+ of commits during business hours", "briefcase",
		core.CategoryProductivity, core.RarityCommon, criteria{KindBusinessHoursPercent, 60, CompareGTE}},
	{"weekend-warrior", "Weekend Warrior", "50%+ of commits on weekends", "calendar",
		core.CategoryProductivity, core.RarityRare, criteria{KindWeekendCommitPercent, 50, CompareGTE}},

	// Consistency
	{"week-streak", "Week Streak", "7 consecutive days with commits", "flame",
		core.CategoryConsistency, core.RarityCommon, criteria{KindStreak, 7, CompareGTE}},
	{"month-streak", "Month Streak", "30 consecutive days with commits", "flame",
		core.CategoryConsistency, core.RarityUncommon, criteria{KindStreak, 30, CompareGTE}},
	{"100-day-streak", "100 Day Streak", "100 consecutive days with commits", "flame",
		core.CategoryConsistency, core.RarityRare, criteria{KindStreak, 100, CompareGTE}},
	{"365-day-streak", "Year-Long Streak", "365 consecutive days with commits", "flame",
		core.CategoryConsistency, core.RarityEpic, criteria{KindStreak, 365, CompareGTE}},

	// Collaboration
	{"code-reviewer", "Code Reviewer", "10+ PRs reviewed", "eye",
		core.CategoryCollaboration, core.RarityCommon, criteria{KindReviews, 10, CompareGTE}},
	{"team-player", "Team Player", "50+ PRs reviewed", "users",
		core.CategoryCollaboration, core.RarityUncommon, criteria{KindReviews, 50, CompareGTE}},
	{"review-master", "Review Master", "200+ PRs reviewed", "award",
		core.CategoryCollaboration, core.RarityRare, criteria{KindReviews, 200, CompareGTE}},

	// Impact
	{"first-star", "First Star", "Received your first star", "star",
		core.CategoryImpact, core.RarityCommon, criteria{KindStars, 1, CompareGTE}},
	{"rising-star", "Rising Star", "100+ total stars", "star",
		core.CategoryImpact, core.RarityUncommon, criteria{KindStars, 100, CompareGTE}},
	{"star-collector", "Star Collector", "1,000+ total stars", "star",
		core.CategoryImpact, core.RarityRare, criteria{KindStars, 1000, CompareGTE}},
	{"superstar", "Superstar", "10,000+ total stars", "star",
		core.CategoryImpact, core.RarityEpic, criteria{KindStars, 10000, CompareGTE}},
	{"polyglot", "Polyglot", "Used 5+ programming languages", "code",
		core.CategoryImpact, core.RarityUncommon, criteria{KindLanguages, 5, CompareGTE}},
	{"language-master", "Language Master", "Used 10+ programming languages", "code",
		core.CategoryImpact, core.RarityRare, criteria{KindLanguages, 10, CompareGTE}},

	// Velocity
	{"productive-day", "Productive Day", "10+ commits in one day", "zap",
		core.CategoryVelocity, core.RarityCommon, criteria{KindBiggestDay, 10, CompareGTE}},
	{"sprint", "Sprint", "50+ commits in one week", "zap",
		core.CategoryVelocity, core.RarityUncommon, criteria{KindBiggestWeek, 50, CompareGTE}},
	{"speed-demon", "Speed Demon", "100+ commits in one week", "zap",
		core.CategoryVelocity, core.RarityRare, criteria{KindBiggestWeek, 100, CompareGTE}},

	// Milestones
	{"beginner", "Beginner", "100+ total commits", "git-commit",
		core.CategoryMilestone, core.RarityCommon, criteria{KindCommits, 100, CompareGTE}},
	{"intermediate", "Intermediate", "1,000+ total commits", "git-commit",
		core.CategoryMilestone, core.RarityUncommon, criteria{KindCommits, 1000, CompareGTE}},
	{"advanced", "Advanced", "5,000+ total commits", "git-commit",
		core.CategoryMilestone, core.RarityRare, criteria{KindCommits, 5000, CompareGTE}},
	{"expert", "Expert", "10,000+ total commits", "git-commit",
		core.CategoryMilestone, core.RarityEpic, criteria{KindCommits, 10000, CompareGTE}},
	{"legend", "Legend", "50,000+ total commits", "git-commit",
		core.CategoryMilestone, core.RarityLegendary, criteria{KindCommits, 50000, CompareGTE}},
	{"repo-creator", "Repository Creator", "10+ public repositories", "folder",
		core.CategoryMilestone, core.RarityCommon, criteria{KindRepos, 10, CompareGTE}},
	{"prolific", "Prolific", "50+ public repositories", "folder",
		core.CategoryMilestone, core.RarityUncommon, criteria{KindRepos, 50, CompareGTE}},
}

// extractors maps every criterion kind to its stat extraction. Percentage
// kinds mirror the peak-productivity fractions over the full-history
// distributions.
var extractors = map[CriterionKind]func(core.UserStats) float64{
	KindNightCommitPercent: func(s core.UserStats) float64 {
		return hourlyPercent(s, func(h [24]int) int {
			return sumRange(h[:], 22, 24) + sumRange(h[:], 0, 6)
		})
	},
	KindMorningCommitPercent: func(s core.UserStats) float64 {
		return hourlyPercent(s, func(h [24]int) int { return sumRange(h[:], 5, 9) })
	},
	KindBusinessHoursPercent: func(s core.UserStats) float64 {
		return hourlyPercent(s, func(h [24]int) int { return sumRange(h[:], 9, 17) })
	},
	KindWeekendCommitPercent: func(s core.UserStats) float64 {
		total := 0
		for _, v := range s.ContributionsByDayOfWeek {
			total += v
		}
		if total == 0 {
			return 0
		}
		weekend := s.ContributionsByDayOfWeek[0] + s.ContributionsByDayOfWeek[6]
		return float64(weekend) / float64(total) * 100
	},
	KindStreak:      func(s core.UserStats) float64 { return float64(s.LongestStreak) },
	KindReviews:     func(s core.UserStats) float64 { return float64(s.TotalReviews) },
	KindStars:       func(s core.UserStats) float64 { return float64(s.TotalStars) },
	KindLanguages:   func(s core.UserStats) float64 { return float64(len(s.Languages)) },
	KindBiggestDay:  func(s core.UserStats) float64 { return float64(s.BiggestDay.Count) },
	KindBiggestWeek: func(s core.UserStats) float64 { return float64(s.BiggestWeek.Count) },
	KindCommits:     func(s core.UserStats) float64 { return float64(s.TotalCommits) },
	KindRepos:       func(s core.UserStats) float64 { return float64(s.TotalRepos) },
}

func hourlyPercent(s core.UserStats, pick func([24]int) int) float64 {
	total := 0
	for _, v := range s.ContributionsByHour {
		total += v
	}
	if total == 0 {
		return 0
	}
	return float64(pick(s.ContributionsByHour)) / float64(total) * 100
}

func sumRange(values []int, from, to int) int {
	total := 0
	for _, v := range values[from:to] {
		total += v
	}
	return total
}

// Badges evaluates every definition against the stats. Earned and progress
// are recomputed per call; definitions are process-wide constants.
func Badges(stats core.UserStats) []core.Badge {
	badges := make([]core.Badge, 0, len(badgeDefinitions))
	for _, def := range badgeDefinitions {
		value := extractors[def.criteria.kind](stats)
		earned, progress := evaluate(def.criteria, value)

		badges = append(badges, core.Badge{
			ID:          def.id,
			Name:        def.name,
			Description: def.description,
			Icon:        def.icon,
			Category:    def.category,
			Rarity:      def.rarity,
			Earned:      earned,
			Progress:    progress,
		})
	}
	return badges
}

func evaluate(c criteria, value float64) (earned bool, progress float64) {
	switch c.compare {
	case CompareGTE:
		earned = value >= c.threshold
		progress = value / c.threshold * 100
		if progress > 100 {
			progress = 100
		}
	case CompareLTE:
		earned = value <= c.threshold
		if earned {
			progress = 100
		}
	case CompareEQ:
		earned = value == c.threshold
		if earned {
			progress = 100
		}
	case ComparePercent:
		earned = value >= c.threshold
		progress = value
		if progress > 100 {
			progress = 100
		}
	}
	return earned, progress
}
