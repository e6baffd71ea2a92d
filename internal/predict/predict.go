// Package predict forecasts near-term activity from a UserStats aggregate:
// a regression-based 30-day commit forecast, streak survival odds, milestone
// ETAs and a per-weekday productivity outlook.
package predict

import (
	"fmt"
	"math"
	"time"

	"github.com/vukan322/devinsights/internal/core"
)

const milestoneDateFormat = "Jan 2, 2006"

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Forecast derives all predictions. now anchors milestone dates and the
// productive-day calendar; it is explicit so results are reproducible.
func Forecast(stats core.UserStats, level core.LevelInfo, now time.Time) core.Predictions {
	return core.Predictions{
		Commits30Days:     commitForecast(stats),
		StreakProbability: streakProbability(stats),
		Milestones:        milestones(stats, level, now),
		ProductiveDays:    productiveDays(stats, now),
	}
}

// commitForecast fits ordinary least squares over the trailing 90 daily
// commit counts and sums the fitted line over the next 30 days, flooring
// each day at zero. Fewer than 7 samples is too sparse to fit.
func commitForecast(stats core.UserStats) core.CommitForecast {
	daily := make([]float64, 0, len(stats.ContributionsByDay))
	for _, d := range stats.ContributionsByDay {
		daily = append(daily, float64(d.Commits))
	}
	if len(daily) > 90 {
		daily = daily[len(daily)-90:]
	}

	if len(daily) < 7 {
		return core.CommitForecast{Trend: core.TrendStable}
	}

	slope, intercept := linearRegression(daily)

	var predicted float64
	for i := 0; i < 30; i++ {
		day := float64(len(daily) + i)
		if v := slope*day + intercept; v > 0 {
			predicted += v
		}
	}
	rounded := int(math.Round(predicted))

	stdDev := standardDeviation(daily)
	low := int(math.Round(predicted - stdDev*30))
	if low < 0 {
		low = 0
	}
	high := int(math.Round(predicted + stdDev*30))

	trend := core.TrendStable
	switch {
	case slope > 0.1:
		trend = core.TrendIncreasing
	case slope < -0.1:
		trend = core.TrendDecreasing
	}

	return core.CommitForecast{Predicted: rounded, Confidence: [2]int{low, high}, Trend: trend}
}

func linearRegression(data []float64) (slope, intercept float64) {
	n := float64(len(data))
	if len(data) < 2 {
		if len(data) == 1 {
			return 0, data[0]
		}
		return 0, 0
	}

	var sumX, sumY, sumXY, sumX2 float64
	for i, y := range data {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}

	den := n*sumX2 - sumX*sumX
	if den == 0 {
		return 0, sumY / n
	}
	slope = (n*sumXY - sumX*sumY) / den
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

func standardDeviation(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	var sum float64
	for _, v := range data {
		sum += v
	}
	mean := sum / float64(len(data))

	var variance float64
	for _, v := range data {
		variance += (v - mean) * (v - mean)
	}
	return math.Sqrt(variance / float64(len(data)))
}

// streakProbability models daily activity as independent draws at the
// historical active-day rate. Deliberately not a Markov model; the events
// feed is too shallow to estimate transitions.
func streakProbability(stats core.UserStats) core.StreakProbability {
	totalDays := len(stats.ContributionsByDay)
	if totalDays == 0 {
		return core.StreakProbability{}
	}

	activeDays := 0
	for _, d := range stats.ContributionsByDay {
		if d.Count > 0 {
			activeDays++
		}
	}
	rate := float64(activeDays) / float64(totalDays)

	survival := func(days int) int {
		return int(math.Round(math.Pow(rate, float64(days)) * 100))
	}
	return core.StreakProbability{
		Next7Days:  survival(7),
		Next14Days: survival(14),
		Next30Days: survival(30),
	}
}

var (
	commitMilestones = []int{100, 500, 1000, 5000, 10000, 50000}
	starMilestones   = []int{10, 50, 100, 500, 1000, 5000, 10000}
)

// milestones lists up to five upcoming targets: the next level, the first
// unmet commit milestone, the first unmet star milestone. ETAs use the
// trailing-30-day commit velocity; star growth is assumed at roughly one
// star per week since stars track popularity, not commit effort.
func milestones(stats core.UserStats, level core.LevelInfo, now time.Time) []core.Milestone {
	var out []core.Milestone

	recent := stats.ContributionsByDay
	if len(recent) > 30 {
		recent = recent[len(recent)-30:]
	}
	recentCommits := 0
	for _, d := range recent {
		recentCommits += d.Commits
	}
	dailyVelocity := 0.0
	if len(recent) > 0 {
		dailyVelocity = float64(recentCommits) / float64(len(recent))
	}
	xpVelocity := dailyVelocity * 10

	if level.Level < 100 {
		need := level.XPForNext - level.CurrentXP
		days := etaDays(float64(need), xpVelocity)
		out = append(out, core.Milestone{
			Name:          fmt.Sprintf("Level %d", level.Level+1),
			Current:       level.CurrentXP,
			Target:        level.XPForNext,
			EstimatedDays: days,
			EstimatedDate: now.AddDate(0, 0, days).Format(milestoneDateFormat),
		})
	}

	for _, target := range commitMilestones {
		if stats.TotalCommits < target {
			days := etaDays(float64(target-stats.TotalCommits), dailyVelocity)
			out = append(out, core.Milestone{
				Name:          fmt.Sprintf("%s Commits", formatCount(target)),
				Current:       stats.TotalCommits,
				Target:        target,
				EstimatedDays: days,
				EstimatedDate: now.AddDate(0, 0, days).Format(milestoneDateFormat),
			})
			break
		}
	}

	for _, target := range starMilestones {
		if stats.TotalStars < target {
			days := (target - stats.TotalStars) * 7
			out = append(out, core.Milestone{
				Name:          fmt.Sprintf("%s Stars", formatCount(target)),
				Current:       stats.TotalStars,
				Target:        target,
				EstimatedDays: days,
				EstimatedDate: now.AddDate(0, 0, days).Format(milestoneDateFormat),
			})
			break
		}
	}

	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

func etaDays(remaining, velocity float64) int {
	if velocity <= 0 {
		return 365
	}
	return int(math.Ceil(remaining / velocity))
}

func formatCount(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	if n%1000 == 0 {
		return fmt.Sprintf("%d,000", n/1000)
	}
	return fmt.Sprintf("%d,%03d", n/1000, n%1000)
}

// productiveDays projects the weekday distribution onto the next seven
// calendar days. An empty distribution yields no forecast.
func productiveDays(stats core.UserStats, now time.Time) []core.ProductiveDay {
	total := 0
	for _, v := range stats.ContributionsByDayOfWeek {
		total += v
	}
	if total == 0 {
		return nil
	}

	out := make([]core.ProductiveDay, 0, 7)
	for i := 0; i < 7; i++ {
		date := now.AddDate(0, 0, i)
		weekday := int(date.UTC().Weekday())
		probability := int(math.Round(float64(stats.ContributionsByDayOfWeek[weekday]) / float64(total) * 100))

		likelihood := core.LikelihoodMedium
		switch {
		case probability > 20:
			likelihood = core.LikelihoodHigh
		case probability < 10:
			likelihood = core.LikelihoodLow
		}

		out = append(out, core.ProductiveDay{
			Date:        core.DayKey(date),
			DayOfWeek:   dayNames[weekday],
			Probability: probability,
			Likelihood:  likelihood,
		})
	}
	return out
}
