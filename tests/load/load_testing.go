package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

// Load generator for a running devinsights server. Reports come almost
// entirely from the response cache after the first hit per user, so this
// exercises the pipeline and the HTTP surface without burning the GitHub
// API budget.
func main() {
	var (
		host     string
		users    string
		rps      int
		duration time.Duration
	)
	flag.StringVar(&host, "host", "http://localhost:8080", "server base URL")
	flag.StringVar(&users, "users", "torvalds,mitchellh,bradfitz", "comma-separated usernames to rotate through")
	flag.IntVar(&rps, "rps", 5, "requests per second")
	flag.DurationVar(&duration, "duration", 1*time.Minute, "attack duration")
	flag.Parse()

	usernames := strings.Split(users, ",")
	ranges := []string{"7d", "30d", "90d", "year", "all"}

	var targets []vegeta.Target
	for _, u := range usernames {
		for _, r := range ranges {
			targets = append(targets, vegeta.Target{
				Method: "GET",
				URL:    fmt.Sprintf("%s/api/users/%s/insights?range=%s", host, strings.TrimSpace(u), r),
			})
		}
	}
	targets = append(targets, vegeta.Target{
		Method: "GET",
		URL:    fmt.Sprintf("%s/api/compare?users=%s", host, strings.Join(usernames[:2], ",")),
	})

	rate := vegeta.Rate{Freq: rps, Per: time.Second}
	attacker := vegeta.NewAttacker(vegeta.Timeout(30 * time.Second))
	targeter := vegeta.NewStaticTargeter(targets...)

	log.Printf("attacking %s at %d rps for %s", host, rps, duration)

	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, rate, duration, "devinsights") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Printf("requests:   %d\n", metrics.Requests)
	fmt.Printf("success:    %.2f%%\n", metrics.Success*100)
	fmt.Printf("p50:        %s\n", metrics.Latencies.P50)
	fmt.Printf("p95:        %s\n", metrics.Latencies.P95)
	fmt.Printf("p99:        %s\n", metrics.Latencies.P99)
	fmt.Printf("max:        %s\n", metrics.Latencies.Max)
	for code, count := range metrics.StatusCodes {
		fmt.Printf("status %s: %d\n", code, count)
	}
}
