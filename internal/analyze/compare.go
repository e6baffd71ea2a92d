package analyze

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vukan322/devinsights/internal/core"
	"github.com/vukan322/devinsights/internal/gamify"
)

// Compare runs independent analyses for several usernames and scores them
// head to head. Analyses share nothing and run concurrently; one user's
// failure fails the comparison, since a partial matchup is meaningless.
func (a *Analyzer) Compare(ctx context.Context, usernames []string, preset core.RangePreset) (core.Comparison, error) {
	if len(usernames) < 2 {
		return core.Comparison{}, fmt.Errorf("comparison needs at least 2 users, got %d", len(usernames))
	}

	var mu sync.Mutex
	reports := make(map[string]core.Report, len(usernames))

	g, gctx := errgroup.WithContext(ctx)
	for _, username := range usernames {
		username := username
		g.Go(func() error {
			report, err := a.Analyze(gctx, username, preset)
			if err != nil {
				return err
			}
			mu.Lock()
			reports[username] = report
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return core.Comparison{}, err
	}

	scores := make(map[string]int, len(usernames))
	for username, report := range reports {
		scores[username] = gamify.CompetitionScore(report.Stats)
	}

	winners := map[string]string{
		"commits": winnerBy(usernames, reports, func(r core.Report) int { return r.Stats.TotalCommits }),
		"stars":   winnerBy(usernames, reports, func(r core.Report) int { return r.Stats.TotalStars }),
		"streak":  winnerBy(usernames, reports, func(r core.Report) int { return r.Stats.LongestStreak }),
		"level":   winnerBy(usernames, reports, func(r core.Report) int { return r.Level.Level }),
	}

	overall := winnerBy(usernames, reports, func(r core.Report) int {
		return gamify.CompetitionScore(r.Stats)
	})

	return core.Comparison{
		Users:         usernames,
		Reports:       reports,
		Scores:        scores,
		Winners:       winners,
		OverallWinner: overall,
	}, nil
}

// winnerBy keeps input order on ties.
func winnerBy(usernames []string, reports map[string]core.Report, metric func(core.Report) int) string {
	winner := ""
	best := -1
	for _, username := range usernames {
		if v := metric(reports[username]); v > best {
			best = v
			winner = username
		}
	}
	return winner
}
