package analyze

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vukan322/devinsights/internal/core"
	"github.com/vukan322/devinsights/internal/github"
)

// fakeSource serves canned bundles per handle.
type fakeSource struct {
	bundles map[string]github.Bundle
	errs    map[string]error
}

func (f *fakeSource) FetchBundle(_ context.Context, handle string) (github.Bundle, error) {
	if err, ok := f.errs[handle]; ok {
		return github.Bundle{}, err
	}
	return f.bundles[handle], nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func bundleWithCommits(handle string, commits int) github.Bundle {
	push := core.Event{
		ID:        "1",
		Type:      core.EventPush,
		CreatedAt: time.Now().UTC().Add(-24 * time.Hour),
	}
	for i := 0; i < commits; i++ {
		push.Payload.Commits = append(push.Payload.Commits, core.Commit{SHA: "abc"})
	}
	return github.Bundle{
		User:   core.User{Login: handle},
		Events: []core.Event{push},
	}
}

func TestAnalyze_InvalidUsername(t *testing.T) {
	a := New(&fakeSource{}, quietLogger())

	for _, username := range []string{"", "-leading", "trailing-", "has space", "way-too-long-name-way-too-long-name-way-x"} {
		_, err := a.Analyze(context.Background(), username, core.Range30d)
		assert.ErrorIs(t, err, core.ErrInvalidUsername, username)
	}
}

func TestAnalyze_ValidUsernames(t *testing.T) {
	src := &fakeSource{bundles: map[string]github.Bundle{
		"octocat":  bundleWithCommits("octocat", 1),
		"a":        bundleWithCommits("a", 1),
		"dev-user": bundleWithCommits("dev-user", 1),
	}}
	a := New(src, quietLogger())

	for _, username := range []string{"octocat", "a", "dev-user"} {
		_, err := a.Analyze(context.Background(), username, core.Range30d)
		assert.NoError(t, err, username)
	}
}

func TestAnalyze_PipelineWiring(t *testing.T) {
	src := &fakeSource{bundles: map[string]github.Bundle{
		"octocat": bundleWithCommits("octocat", 12),
	}}
	a := New(src, quietLogger())

	report, err := a.Analyze(context.Background(), "octocat", core.Range30d)

	require.NoError(t, err)
	assert.Equal(t, "octocat", report.User.Login)
	assert.Equal(t, 12, report.Stats.TotalCommits)
	assert.Equal(t, 120, report.Level.TotalXP)
	assert.Equal(t, 2, report.Level.Level)
	assert.NotEmpty(t, report.Badges)
	assert.Equal(t, core.Range30d, report.Range.Preset)
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestAnalyze_FetchErrorPropagates(t *testing.T) {
	src := &fakeSource{errs: map[string]error{"ghost": core.ErrUserNotFound}}
	a := New(src, quietLogger())

	_, err := a.Analyze(context.Background(), "ghost", core.Range30d)

	assert.ErrorIs(t, err, core.ErrUserNotFound)
}

func TestCompare_RequiresTwoUsers(t *testing.T) {
	a := New(&fakeSource{}, quietLogger())

	_, err := a.Compare(context.Background(), []string{"solo"}, core.Range30d)

	assert.Error(t, err)
}

func TestCompare_WinnersAndOverall(t *testing.T) {
	src := &fakeSource{bundles: map[string]github.Bundle{
		"alice": bundleWithCommits("alice", 20),
		"bob":   bundleWithCommits("bob", 5),
	}}
	a := New(src, quietLogger())

	cmp, err := a.Compare(context.Background(), []string{"alice", "bob"}, core.Range30d)

	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, cmp.Users)
	require.Len(t, cmp.Reports, 2)
	assert.Equal(t, "alice", cmp.Winners["commits"])
	assert.Equal(t, "alice", cmp.OverallWinner)
	assert.Greater(t, cmp.Scores["alice"], cmp.Scores["bob"])
}

func TestCompare_TieKeepsInputOrder(t *testing.T) {
	src := &fakeSource{bundles: map[string]github.Bundle{
		"alice": bundleWithCommits("alice", 5),
		"bob":   bundleWithCommits("bob", 5),
	}}
	a := New(src, quietLogger())

	cmp, err := a.Compare(context.Background(), []string{"bob", "alice"}, core.Range30d)

	require.NoError(t, err)
	assert.Equal(t, "bob", cmp.OverallWinner)
}

func TestCompare_OneFailureFailsAll(t *testing.T) {
	src := &fakeSource{
		bundles: map[string]github.Bundle{"alice": bundleWithCommits("alice", 5)},
		errs:    map[string]error{"ghost": core.ErrUserNotFound},
	}
	a := New(src, quietLogger())

	_, err := a.Compare(context.Background(), []string{"alice", "ghost"}, core.Range30d)

	assert.ErrorIs(t, err, core.ErrUserNotFound)
}
