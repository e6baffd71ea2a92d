// Package analyze wires the fetch layer to the statistics pipeline and
// exposes the two entry operations: a single-user analysis and a
// head-to-head comparison.
package analyze

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vukan322/devinsights/internal/core"
	"github.com/vukan322/devinsights/internal/gamify"
	"github.com/vukan322/devinsights/internal/github"
	"github.com/vukan322/devinsights/internal/predict"
	"github.com/vukan322/devinsights/internal/stats"
)

// GitHub username rules: alphanumeric and single hyphens, 39 chars max.
var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,37}[a-zA-Z0-9])?$`)

// Source supplies the raw input bundle for a handle. github.Client is the
// production implementation; tests substitute fakes.
type Source interface {
	FetchBundle(ctx context.Context, handle string) (github.Bundle, error)
}

type Analyzer struct {
	src Source
	log *logrus.Logger
}

func New(src Source, log *logrus.Logger) *Analyzer {
	return &Analyzer{src: src, log: log}
}

// Analyze fetches the raw bundle for a username and runs the full
// derivation pipeline over the requested window. All derived structures
// are recomputed from scratch on every call.
func (a *Analyzer) Analyze(ctx context.Context, username string, preset core.RangePreset) (core.Report, error) {
	if !usernameRe.MatchString(username) {
		return core.Report{}, fmt.Errorf("%w: %q", core.ErrInvalidUsername, username)
	}

	started := time.Now()
	bundle, err := a.src.FetchBundle(ctx, username)
	if err != nil {
		return core.Report{}, fmt.Errorf("fetch %s: %w", username, err)
	}

	now := time.Now()
	rng := core.NewRange(preset, now)

	userStats := stats.Compute(bundle.User, bundle.Repos, bundle.Events, bundle.Languages, rng, bundle.Calendar)
	level := gamify.Level(gamify.XP(userStats))
	badges := gamify.Badges(userStats)
	predictions := predict.Forecast(userStats, level, now)

	a.log.WithFields(logrus.Fields{
		"username": username,
		"range":    preset,
		"commits":  userStats.TotalCommits,
		"level":    level.Level,
		"took":     time.Since(started),
	}).Info("analysis complete")

	return core.Report{
		User:        bundle.User,
		Stats:       userStats,
		Level:       level,
		Badges:      badges,
		Predictions: predictions,
		Range:       rng,
		GeneratedAt: now,
	}, nil
}
