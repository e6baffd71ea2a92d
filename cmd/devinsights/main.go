package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/vukan322/devinsights/internal/analyze"
	"github.com/vukan322/devinsights/internal/core"
	"github.com/vukan322/devinsights/internal/github"
)

func main() {
	_ = godotenv.Load()

	var (
		user    string
		compare string
		rng     string
		output  string
		pretty  bool
	)

	flag.StringVar(&user, "user", "", "GitHub username to analyze")
	flag.StringVar(&compare, "compare", "", "comma-separated usernames for head-to-head comparison")
	flag.StringVar(&rng, "range", "year", "analysis window: 7d|30d|90d|365d|year|all")
	flag.StringVar(&output, "out", "", "output file path (default: stdout)")
	flag.BoolVar(&pretty, "pretty", false, "indent the JSON output")
	flag.Parse()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if user == "" && compare == "" {
		logger.Fatal("missing required flag: -user or -compare")
	}

	preset, err := core.ParsePreset(rng)
	if err != nil {
		logger.Fatalf("invalid -range: %v", err)
	}

	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		logger.Warn("GITHUB_TOKEN not set, using unauthenticated GitHub API (rate limited)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client := github.New(token, github.NewMemoryCache())
	analyzer := analyze.New(client, logger)

	var result any
	if compare != "" {
		usernames := strings.Split(compare, ",")
		for i := range usernames {
			usernames[i] = strings.TrimSpace(usernames[i])
		}
		comparison, err := analyzer.Compare(ctx, usernames, preset)
		if err != nil {
			logger.Fatalf("comparison failed: %v", err)
		}
		result = comparison
	} else {
		report, err := analyzer.Analyze(ctx, user, preset)
		if err != nil {
			logger.Fatalf("analysis failed: %v", err)
		}
		result = report
	}

	var data []byte
	if pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		logger.Fatalf("encode result: %v", err)
	}

	if output == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		logger.Fatalf("write %s: %v", output, err)
	}
	logger.Infof("wrote %s", output)
}
