package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Report is a comprehensive summary of a batch of Results.
type Report struct {
	Timestamp time.Time        `json:"timestamp"`
	Results   []Result         `json:"results"`
	Summary   Summary          `json:"summary"`
	ByBackend map[string]Stats `json:"by_backend"`
}

// Summary holds aggregated pass/fail counts across every Result.
type Summary struct {
	TotalRuns      int           `json:"total_runs"`
	SuccessfulRuns int           `json:"successful_runs"`
	FailedRuns     int           `json:"failed_runs"`
	AverageSearch  time.Duration `json:"average_search_duration"`
}

// Stats holds per-backend aggregates.
type Stats struct {
	TotalRuns      int           `json:"total_runs"`
	SuccessfulRuns int           `json:"successful_runs"`
	AverageSearch  time.Duration `json:"average_search_duration"`
}

// Reporter collects Results and renders them as a Report.
type Reporter struct {
	results []Result
}

// NewReporter returns an empty Reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Add records one Result.
func (r *Reporter) Add(result Result) {
	r.results = append(r.results, result)
}

// GenerateReport aggregates every recorded Result.
func (r *Reporter) GenerateReport() Report {
	byBackend := make(map[string]Stats)
	var totalSearch time.Duration
	successful := 0

	perBackendTotals := make(map[string]time.Duration)
	perBackendCounts := make(map[string]int)
	perBackendSuccess := make(map[string]int)

	for _, res := range r.results {
		totalSearch += res.Duration
		if res.Success {
			successful++
		}
		perBackendTotals[res.Backend] += res.Duration
		perBackendCounts[res.Backend]++
		if res.Success {
			perBackendSuccess[res.Backend]++
		}
	}

	for backend, count := range perBackendCounts {
		avg := time.Duration(0)
		if count > 0 {
			avg = perBackendTotals[backend] / time.Duration(count)
		}
		byBackend[backend] = Stats{
			TotalRuns:      count,
			SuccessfulRuns: perBackendSuccess[backend],
			AverageSearch:  avg,
		}
	}

	avgSearch := time.Duration(0)
	if len(r.results) > 0 {
		avgSearch = totalSearch / time.Duration(len(r.results))
	}

	return Report{
		Timestamp: time.Now(),
		Results:   r.results,
		Summary: Summary{
			TotalRuns:      len(r.results),
			SuccessfulRuns: successful,
			FailedRuns:     len(r.results) - successful,
			AverageSearch:  avgSearch,
		},
		ByBackend: byBackend,
	}
}

// WriteJSON writes the current report as indented JSON.
func (r *Reporter) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r.GenerateReport())
}

// PrintSummary writes a short human-readable summary to w.
func (r *Reporter) PrintSummary(w io.Writer) {
	report := r.GenerateReport()
	fmt.Fprintf(w, "Total runs: %d (%d successful, %d failed)\n",
		report.Summary.TotalRuns, report.Summary.SuccessfulRuns, report.Summary.FailedRuns)
	fmt.Fprintf(w, "Average search duration: %v\n", report.Summary.AverageSearch)
	for backend, stats := range report.ByBackend {
		fmt.Fprintf(w, "  %-14s %d/%d ok, avg %v\n", backend, stats.SuccessfulRuns, stats.TotalRuns, stats.AverageSearch)
	}
}
