// Package github is the fetch layer: a REST client for the GitHub API plus
// the contribution-calendar markup endpoint. It owns pagination, error
// classification, rate-limit accounting and response caching; the analytics
// pipeline only ever sees typed payloads or classified errors.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/vukan322/devinsights/internal/calendar"
	"github.com/vukan322/devinsights/internal/core"
)

const (
	defaultBaseURL   = "https://api.github.com"
	defaultWebURL    = "https://github.com"
	defaultUserAgent = "devinsights/0.1"
	defaultCacheTTL  = 5 * time.Minute

	eventPages    = 3
	repoPages     = 3
	pageSize      = 100
	languageRepos = 10
)

type Client struct {
	client   *http.Client
	baseURL  string
	webURL   string
	token    string
	cache    Cache
	cacheTTL time.Duration
	limits   *rateLimit
}

// New builds a client. cache may be nil to disable response caching.
func New(token string, cache Cache) *Client {
	return &Client{
		client:   &http.Client{Timeout: 10 * time.Second},
		baseURL:  defaultBaseURL,
		webURL:   defaultWebURL,
		token:    token,
		cache:    cache,
		cacheTTL: defaultCacheTTL,
		limits:   newRateLimit(),
	}
}

// RateLimit reports the current upstream budget snapshot.
func (c *Client) RateLimit() RateLimitInfo {
	return c.limits.snapshot()
}

// User fetches the profile snapshot for a handle.
func (c *Client) User(ctx context.Context, handle string) (core.User, error) {
	var u core.User
	endpoint := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(handle))
	if err := c.getJSON(ctx, endpoint, &u); err != nil {
		return core.User{}, fmt.Errorf("fetch user: %w", err)
	}
	return u, nil
}

// Repos fetches the repository list, newest-updated first, deduplicated by
// name. Capped at 3 pages of 100 like the events feed; page URLs are
// explicit so cached pages stay addressable.
func (c *Client) Repos(ctx context.Context, handle string) ([]core.Repo, error) {
	var all []core.Repo
	seen := make(map[string]bool)

	for page := 1; page <= repoPages; page++ {
		endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=%d&page=%d&sort=updated",
			c.baseURL, url.PathEscape(handle), pageSize, page)

		var repos []core.Repo
		if err := c.getJSON(ctx, endpoint, &repos); err != nil {
			return nil, fmt.Errorf("fetch repos page %d: %w", page, err)
		}
		for _, r := range repos {
			if seen[r.Name] {
				continue
			}
			seen[r.Name] = true
			all = append(all, r)
		}
		if len(repos) < pageSize {
			break
		}
	}
	return all, nil
}

// Events fetches the public event feed, newest first. The upstream API
// serves at most 3 pages of 100, so the feed is a hard ~300-entry window
// biased toward recent activity.
func (c *Client) Events(ctx context.Context, handle string) ([]core.Event, error) {
	var all []core.Event
	for page := 1; page <= eventPages; page++ {
		endpoint := fmt.Sprintf("%s/users/%s/events/public?per_page=%d&page=%d",
			c.baseURL, url.PathEscape(handle), pageSize, page)

		var events []core.Event
		if err := c.getJSON(ctx, endpoint, &events); err != nil {
			return nil, fmt.Errorf("fetch events page %d: %w", page, err)
		}
		all = append(all, events...)
		if len(events) < pageSize {
			break
		}
	}
	return all, nil
}

// repoLanguages fetches byte counts per language for one repo.
func (c *Client) repoLanguages(ctx context.Context, handle, repo string) (core.Languages, error) {
	var langs core.Languages
	endpoint := fmt.Sprintf("%s/repos/%s/%s/languages", c.baseURL, url.PathEscape(handle), url.PathEscape(repo))
	if err := c.getJSON(ctx, endpoint, &langs); err != nil {
		return nil, fmt.Errorf("fetch languages for %s: %w", repo, err)
	}
	return langs, nil
}

// Calendar fetches and parses the contribution graph markup for a year.
func (c *Client) Calendar(ctx context.Context, handle string, year int) (core.ContributionCalendar, error) {
	endpoint := fmt.Sprintf("%s/users/%s/contributions?from=%d-01-01&to=%d-12-31",
		c.webURL, url.PathEscape(handle), year, year)

	body, _, err := c.get(ctx, endpoint, "text/html")
	if err != nil {
		return core.ContributionCalendar{}, fmt.Errorf("fetch contributions: %w", err)
	}
	return calendar.Parse(string(body)), nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, v any) error {
	body, _, err := c.get(ctx, endpoint, "application/vnd.github+json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// get performs one GET with cache lookup, local rate-limit refusal and
// status classification. Cached responses carry no headers.
func (c *Client) get(ctx context.Context, endpoint, accept string) ([]byte, http.Header, error) {
	if c.cache != nil {
		if body, ok := c.cache.Get(ctx, endpoint); ok {
			return body, http.Header{}, nil
		}
	}

	if c.limits.exhausted(time.Now()) {
		return nil, nil, core.ErrRateLimited
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", defaultUserAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	c.limits.update(resp.Header)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, resp.Header, core.ErrUserNotFound
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests:
		return nil, resp.Header, core.ErrRateLimited
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, resp.Header, fmt.Errorf("%w: status %d from %s", core.ErrUpstream, resp.StatusCode, endpoint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.Header, fmt.Errorf("read response: %w", err)
	}

	if c.cache != nil {
		c.cache.Set(ctx, endpoint, body, c.cacheTTL)
	}
	return body, resp.Header, nil
}
