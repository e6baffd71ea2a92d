package github

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vukan322/devinsights/internal/core"
)

// Bundle is the joined set of raw inputs one analysis consumes. Calendar is
// nil when the markup fetch failed; the aggregator falls back to events.
type Bundle struct {
	User      core.User
	Repos     []core.Repo
	Events    []core.Event
	Languages core.Languages
	Calendar  *core.ContributionCalendar
}

// FetchBundle gathers all raw resources for a handle. User, repos, events
// and the calendar are fetched concurrently; languages fan out afterwards
// because they need the repo list. Only user/repos/events failures abort
// the bundle.
func (c *Client) FetchBundle(ctx context.Context, handle string) (Bundle, error) {
	var bundle Bundle

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := c.User(gctx, handle)
		if err != nil {
			return err
		}
		bundle.User = u
		return nil
	})
	g.Go(func() error {
		repos, err := c.Repos(gctx, handle)
		if err != nil {
			return err
		}
		bundle.Repos = repos
		return nil
	})
	g.Go(func() error {
		events, err := c.Events(gctx, handle)
		if err != nil {
			return err
		}
		bundle.Events = events
		return nil
	})
	g.Go(func() error {
		// Tolerated failure: an absent calendar degrades the commit counts,
		// it does not fail the analysis.
		cal, err := c.Calendar(gctx, handle, time.Now().UTC().Year())
		if err != nil {
			return nil
		}
		bundle.Calendar = &cal
		return nil
	})

	if err := g.Wait(); err != nil {
		return Bundle{}, err
	}

	bundle.Languages = c.Languages(ctx, handle, bundle.Repos)
	return bundle, nil
}

// Languages aggregates byte counts over the ten most recently updated
// non-fork repos, with bounded concurrency. A failed repo contributes
// nothing; per-repo failures never abort the batch.
func (c *Client) Languages(ctx context.Context, handle string, repos []core.Repo) core.Languages {
	var targets []core.Repo
	for _, r := range repos {
		if r.Fork {
			continue
		}
		targets = append(targets, r)
		if len(targets) == languageRepos {
			break
		}
	}

	results := make([]core.Languages, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, r := range targets {
		i, r := i, r
		g.Go(func() error {
			langs, err := c.repoLanguages(gctx, handle, r.Name)
			if err != nil {
				return nil
			}
			results[i] = langs
			return nil
		})
	}
	_ = g.Wait()

	aggregated := make(core.Languages)
	for _, langs := range results {
		for lang, bytes := range langs {
			aggregated[lang] += bytes
		}
	}
	return aggregated
}
