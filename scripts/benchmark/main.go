package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/go-resty/resty/v2"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/sync/errgroup"

	"github.com/use-agent/listingscout/models"
)

// CLI flags
var (
	apiURL      = flag.String("api-url", "http://localhost:3001", "listingscout API base URL")
	apiKey      = flag.String("api-key", "", "API key for authenticated requests")
	runs        = flag.Int("runs", 3, "Number of searches per query")
	concurrency = flag.Int("concurrency", 2, "Maximum searches in flight")
	maxResults  = flag.Int("max-results", 10, "maxResults sent with each search")
	output      = flag.String("output", "benchmark-results.json", "JSON output file path")
)

// Search queries covering a spread of categories.
var testQueries = []struct {
	Label string
	Query string
}{
	{"Kitchen", "stainless steel water bottle"},
	{"Fitness", "non slip yoga mat"},
	{"Electronics", "usb c charging cable"},
	{"Home", "led desk lamp"},
	{"Pets", "automatic cat water fountain"},
}

// --- Benchmark result types ---

type runResult struct {
	Query     string `json:"query"`
	Run       int    `json:"run"`
	LatencyMs int64  `json:"latency_ms"`
	Found     int    `json:"found"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

type latencyStats struct {
	Runs      int     `json:"runs"`
	Successes int     `json:"successes"`
	Rate      float64 `json:"success_rate"`
	AvgFound  float64 `json:"avg_found"`
	P50Ms     int64   `json:"p50_ms"`
	P90Ms     int64   `json:"p90_ms"`
	P99Ms     int64   `json:"p99_ms"`
}

type queryResult struct {
	Label string       `json:"label"`
	Query string       `json:"query"`
	Stats latencyStats `json:"stats"`
}

type benchmarkReport struct {
	Timestamp   string        `json:"timestamp"`
	APIURL      string        `json:"api_url"`
	RunsPer     int           `json:"runs_per_query"`
	Concurrency int           `json:"concurrency"`
	Overall     latencyStats  `json:"overall"`
	Queries     []queryResult `json:"queries"`
	Runs        []runResult   `json:"runs"`
}

func main() {
	flag.Parse()

	fmt.Println("=== listingscout Benchmark ===")
	fmt.Printf("API URL:      %s\n", *apiURL)
	fmt.Printf("Runs/query:   %d\n", *runs)
	fmt.Printf("Concurrency:  %d\n", *concurrency)
	fmt.Printf("Output:       %s\n", *output)
	fmt.Println()

	client := resty.New().
		SetBaseURL(*apiURL).
		SetTimeout(3 * time.Minute).
		SetHeader("Content-Type", "application/json")
	if *apiKey != "" {
		client.SetAuthToken(*apiKey)
	}

	ctx := context.Background()

	// Quick connectivity check.
	if err := checkAPI(ctx, client); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot reach API at %s: %v\n", *apiURL, err)
		fmt.Fprintf(os.Stderr, "Make sure listingscout is running (e.g. make run)\n")
		os.Exit(1)
	}

	results := runAll(ctx, client)

	report := benchmarkReport{
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		APIURL:      *apiURL,
		RunsPer:     *runs,
		Concurrency: *concurrency,
		Overall:     summarize(results),
		Runs:        results,
	}
	for _, q := range testQueries {
		var mine []runResult
		for _, r := range results {
			if r.Query == q.Query {
				mine = append(mine, r)
			}
		}
		report.Queries = append(report.Queries, queryResult{Label: q.Label, Query: q.Query, Stats: summarize(mine)})
	}

	printTable(report)

	if err := writeJSON(*output, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing JSON output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nDetailed results written to %s\n", *output)
}

func checkAPI(ctx context.Context, client *resty.Client) error {
	resp, err := client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("health returned %s", resp.Status())
	}
	return nil
}

// runAll fires every search with at most *concurrency in flight.
func runAll(ctx context.Context, client *resty.Client) []runResult {
	var (
		mu      sync.Mutex
		results []runResult
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(*concurrency, 1))

	for i := 1; i <= *runs; i++ {
		for _, q := range testQueries {
			g.Go(func() error {
				rr := search(ctx, client, q.Query, i)
				if rr.Success {
					fmt.Printf("  [%s] run %d OK  %dms  %d found\n", q.Label, i, rr.LatencyMs, rr.Found)
				} else {
					fmt.Printf("  [%s] run %d FAILED: %s\n", q.Label, i, rr.Error)
				}
				mu.Lock()
				results = append(results, rr)
				mu.Unlock()
				return nil
			})
		}
	}
	_ = g.Wait()
	return results
}

func search(ctx context.Context, client *resty.Client, query string, run int) runResult {
	rr := runResult{Query: query, Run: run}

	var body models.CompetitorSearchResponse
	start := time.Now()
	resp, err := client.R().
		SetContext(ctx).
		SetBody(models.CompetitorSearchRequest{SearchQuery: query, MaxResults: *maxResults}).
		SetResult(&body).
		Post("/api/competitor-search")
	rr.LatencyMs = time.Since(start).Milliseconds()

	switch {
	case err != nil:
		rr.Error = fmt.Sprintf("request failed: %v", err)
	case resp.IsError():
		rr.Error = fmt.Sprintf("%s: %s", resp.Status(), resp.String())
	default:
		rr.Success = body.Success
		rr.Found = body.TotalFound
	}
	return rr
}

func summarize(results []runResult) latencyStats {
	s := latencyStats{Runs: len(results)}
	var latencies []int64
	found := 0
	for _, r := range results {
		if !r.Success {
			continue
		}
		s.Successes++
		found += r.Found
		latencies = append(latencies, r.LatencyMs)
	}
	if s.Runs > 0 {
		s.Rate = float64(s.Successes) / float64(s.Runs) * 100
	}
	if s.Successes > 0 {
		s.AvgFound = float64(found) / float64(s.Successes)
	}
	slices.Sort(latencies)
	s.P50Ms = percentile(latencies, 50)
	s.P90Ms = percentile(latencies, 90)
	s.P99Ms = percentile(latencies, 99)
	return s
}

// percentile uses the nearest-rank method on sorted values.
func percentile(sorted []int64, p int) int64 {
	if len(sorted) == 0 {
		return 0
	}
	rank := (p*len(sorted) + 99) / 100
	return sorted[min(max(rank, 1), len(sorted))-1]
}

func printTable(report benchmarkReport) {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Category", "Query", "Success", "Avg Found", "p50", "p90", "p99"})
	for _, q := range report.Queries {
		t.AppendRow(statsRow(q.Label, q.Query, q.Stats))
	}
	t.AppendFooter(statsRow("All", "", report.Overall))
	fmt.Println()
	t.Render()
}

func statsRow(label, query string, s latencyStats) table.Row {
	if s.Successes == 0 {
		return table.Row{label, query, fmt.Sprintf("0/%d", s.Runs), "-", "-", "-", "-"}
	}
	return table.Row{
		label,
		query,
		fmt.Sprintf("%d/%d (%.0f%%)", s.Successes, s.Runs, s.Rate),
		fmt.Sprintf("%.1f", s.AvgFound),
		fmt.Sprintf("%dms", s.P50Ms),
		fmt.Sprintf("%dms", s.P90Ms),
		fmt.Sprintf("%dms", s.P99Ms),
	}
}

func writeJSON(path string, report benchmarkReport) error {
	data, err := json.Marshal(report, jsontext.WithIndent("  "))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
