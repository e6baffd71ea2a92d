package core

import "time"

// Raw GitHub payloads. Field names mirror the REST API.

type User struct {
	Login       string    `json:"login"`
	ID          int64     `json:"id"`
	AvatarURL   string    `json:"avatar_url"`
	HTMLURL     string    `json:"html_url"`
	Name        string    `json:"name"`
	Company     string    `json:"company"`
	Blog        string    `json:"blog"`
	Location    string    `json:"location"`
	Bio         string    `json:"bio"`
	PublicRepos int       `json:"public_repos"`
	PublicGists int       `json:"public_gists"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Repo struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	Description     string    `json:"description"`
	Language        string    `json:"language"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	OpenIssuesCount int       `json:"open_issues_count"`
	Fork            bool      `json:"fork"`
	Archived        bool      `json:"archived"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	PushedAt        time.Time `json:"pushed_at"`
}

// Event is the public-events feed entry. The payload union is discriminated
// by Type; fields irrelevant to the pipeline are omitted.
type Event struct {
	ID        string       `json:"id"`
	Type      string       `json:"type"`
	CreatedAt time.Time    `json:"created_at"`
	Repo      EventRepo    `json:"repo"`
	Payload   EventPayload `json:"payload"`
}

type EventRepo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type EventPayload struct {
	Action      string       `json:"action,omitempty"`
	Size        int          `json:"size,omitempty"`
	Commits     []Commit     `json:"commits,omitempty"`
	PullRequest *PullRequest `json:"pull_request,omitempty"`
}

type Commit struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
}

type PullRequest struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	State  string `json:"state"`
	Merged bool   `json:"merged"`
}

// Event types the pipeline understands; anything else is ignored.
const (
	EventPush     = "PushEvent"
	EventPR       = "PullRequestEvent"
	EventIssues   = "IssuesEvent"
	EventPRReview = "PullRequestReviewEvent"
)

// Languages maps language name to byte count, summed across repos.
type Languages map[string]int64

// ContributionDay is one cell of the contribution calendar. Level is the
// 0-4 intensity GitHub renders; Count is the estimated contribution count.
type ContributionDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

type ContributionCalendar struct {
	TotalContributions int               `json:"totalContributions"`
	Days               []ContributionDay `json:"days"`
}

// Derived analytics model.

// DailyContribution is one day of the range-scoped activity series.
// Count covers all activity types; Commits is tracked separately.
type DailyContribution struct {
	Date    string `json:"date"`
	Count   int    `json:"count"`
	Commits int    `json:"commits"`
	PRs     int    `json:"prs"`
	Issues  int    `json:"issues"`
	Reviews int    `json:"reviews"`
}

type PeakProductivity struct {
	Hour      int    `json:"hour"`
	DayOfWeek int    `json:"dayOfWeek"`
	Label     string `json:"label"`
}

type BiggestDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type BiggestWeek struct {
	StartDate string `json:"startDate"`
	Count     int    `json:"count"`
}

type BiggestMonth struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendStable     Trend = "stable"
	TrendDecreasing Trend = "decreasing"
)

type Velocity struct {
	Daily   []int   `json:"daily"`
	Weekly  []int   `json:"weekly"`
	Monthly []int   `json:"monthly"`
	Trend   Trend   `json:"trend"`
	Average float64 `json:"average"`
}

type RepoTrend string

const (
	RepoImproving RepoTrend = "improving"
	RepoStable    RepoTrend = "stable"
	RepoDeclining RepoTrend = "declining"
)

type RepoHealthFactors struct {
	RecentActivity    int `json:"recentActivity"`
	IssueResponseRate int `json:"issueResponseRate"`
	Stars             int `json:"stars"`
}

type RepoHealth struct {
	Name     string            `json:"name"`
	FullName string            `json:"fullName"`
	Score    int               `json:"score"`
	Factors  RepoHealthFactors `json:"factors"`
	Trend    RepoTrend         `json:"trend"`
}

// UserStats is the central aggregate produced by the stats package.
// ContributionsByDay has exactly one entry per day of the analyzed range,
// sorted ascending.
type UserStats struct {
	TotalCommits             int                 `json:"totalCommits"`
	TotalPRs                 int                 `json:"totalPRs"`
	TotalPRsMerged           int                 `json:"totalPRsMerged"`
	TotalIssues              int                 `json:"totalIssues"`
	TotalIssuesClosed        int                 `json:"totalIssuesClosed"`
	TotalReviews             int                 `json:"totalReviews"`
	TotalStars               int                 `json:"totalStars"`
	TotalForks               int                 `json:"totalForks"`
	TotalRepos               int                 `json:"totalRepos"`
	Languages                Languages           `json:"languages"`
	CurrentStreak            int                 `json:"currentStreak"`
	LongestStreak            int                 `json:"longestStreak"`
	ContributionsByDay       []DailyContribution `json:"contributionsByDay"`
	ContributionsByHour      [24]int             `json:"contributionsByHour"`
	ContributionsByDayOfWeek [7]int              `json:"contributionsByDayOfWeek"`
	PeakProductivity         PeakProductivity    `json:"peakProductivity"`
	BiggestDay               BiggestDay          `json:"biggestDay"`
	BiggestWeek              BiggestWeek         `json:"biggestWeek"`
	BiggestMonth             BiggestMonth        `json:"biggestMonth"`
	Velocity                 Velocity            `json:"velocity"`
	RepoHealth               []RepoHealth        `json:"repoHealth"`
}

// Gamification.

type LevelInfo struct {
	Level      int     `json:"level"`
	Title      string  `json:"title"`
	CurrentXP  int     `json:"currentXP"`
	XPForNext  int     `json:"xpForNextLevel"`
	XPProgress float64 `json:"xpProgress"`
	TotalXP    int     `json:"totalXP"`
}

type BadgeCategory string

const (
	CategoryProductivity  BadgeCategory = "productivity"
	CategoryConsistency   BadgeCategory = "consistency"
	CategoryCollaboration BadgeCategory = "collaboration"
	CategoryImpact        BadgeCategory = "impact"
	CategoryVelocity      BadgeCategory = "velocity"
	CategoryMilestone     BadgeCategory = "milestone"
)

type BadgeRarity string

const (
	RarityCommon    BadgeRarity = "common"
	RarityUncommon  BadgeRarity = "uncommon"
	RarityRare      BadgeRarity = "rare"
	RarityEpic      BadgeRarity = "epic"
	RarityLegendary BadgeRarity = "legendary"
)

type Badge struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Category    BadgeCategory `json:"category"`
	Rarity      BadgeRarity   `json:"rarity"`
	Earned      bool          `json:"earned"`
	Progress    float64       `json:"progress"`
}

// Predictions.

type CommitForecast struct {
	Predicted  int    `json:"predicted"`
	Confidence [2]int `json:"confidence"`
	Trend      Trend  `json:"trend"`
}

type StreakProbability struct {
	Next7Days  int `json:"next7Days"`
	Next14Days int `json:"next14Days"`
	Next30Days int `json:"next30Days"`
}

type Milestone struct {
	Name          string `json:"name"`
	Current       int    `json:"current"`
	Target        int    `json:"target"`
	EstimatedDays int    `json:"estimatedDays"`
	EstimatedDate string `json:"estimatedDate"`
}

type Likelihood string

const (
	LikelihoodHigh   Likelihood = "high"
	LikelihoodMedium Likelihood = "medium"
	LikelihoodLow    Likelihood = "low"
)

type ProductiveDay struct {
	Date        string     `json:"date"`
	DayOfWeek   string     `json:"dayOfWeek"`
	Probability int        `json:"probability"`
	Likelihood  Likelihood `json:"likelihood"`
}

type Predictions struct {
	Commits30Days     CommitForecast    `json:"commits30Days"`
	StreakProbability StreakProbability `json:"streakProbability"`
	Milestones        []Milestone       `json:"milestones"`
	ProductiveDays    []ProductiveDay   `json:"productiveDays"`
}

// Report bundles everything one analysis produces.
type Report struct {
	User        User        `json:"user"`
	Stats       UserStats   `json:"stats"`
	Level       LevelInfo   `json:"level"`
	Badges      []Badge     `json:"badges"`
	Predictions Predictions `json:"predictions"`
	Range       DateRange   `json:"range"`
	GeneratedAt time.Time   `json:"generatedAt"`
}

// Comparison is the head-to-head result over several users.
type Comparison struct {
	Users         []string          `json:"users"`
	Reports       map[string]Report `json:"reports"`
	Scores        map[string]int    `json:"competitionScores"`
	Winners       map[string]string `json:"winners"`
	OverallWinner string            `json:"overallWinner"`
}
