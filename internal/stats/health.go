package stats

import (
	"math"
	"sort"
	"time"

	"github.com/vukan322/devinsights/internal/core"
)

// repoHealth scores up to ten of the user's own repositories. The input
// keeps the upstream recently-updated ordering, so the slice covers the
// repos most likely to matter. now anchors staleness; callers pass the
// range end.
func repoHealth(own []core.Repo, now time.Time) []core.RepoHealth {
	repos := own
	if len(repos) > 10 {
		repos = repos[:10]
	}

	health := make([]core.RepoHealth, 0, len(repos))
	for _, r := range repos {
		daysSincePush := int(now.Sub(r.PushedAt).Hours() / 24)
		if daysSincePush < 0 {
			daysSincePush = 0
		}

		recentActivity := 100 - daysSincePush*2
		if recentActivity < 0 {
			recentActivity = 0
		}

		stars := r.StargazersCount
		if stars > 100 {
			stars = 100
		}

		issueRate := 100
		if r.OpenIssuesCount > 0 {
			issueRate = 100 - r.OpenIssuesCount*5
			if issueRate < 0 {
				issueRate = 0
			}
		}

		score := int(math.Round(float64(recentActivity)*0.4 + float64(stars)*0.3 + float64(issueRate)*0.3))

		trend := core.RepoStable
		switch {
		case daysSincePush < 7:
			trend = core.RepoImproving
		case daysSincePush > 90:
			trend = core.RepoDeclining
		}

		health = append(health, core.RepoHealth{
			Name:     r.Name,
			FullName: r.FullName,
			Score:    score,
			Factors: core.RepoHealthFactors{
				RecentActivity:    recentActivity,
				IssueResponseRate: issueRate,
				Stars:             stars,
			},
			Trend: trend,
		})
	}

	sort.SliceStable(health, func(a, b int) bool { return health[a].Score > health[b].Score })
	return health
}
