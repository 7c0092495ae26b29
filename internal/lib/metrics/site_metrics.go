package metrics

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// SiteMetrics holds in-process counters for the site's hot paths: the
// matchmaker, lead capture, listing submissions and the blog feed client.
// Counters are atomics; the struct is safe for concurrent use.
type SiteMetrics struct {
	log *slog.Logger

	matchRequestsTotal   int64
	matchCandidatesTotal int64
	matchResultsTotal    int64
	matchEmptyTotal      int64

	leadsCapturedTotal     int64
	listingsSubmittedTotal int64
	listingsApprovedTotal  int64
	listingsRejectedTotal  int64

	feedCallsTotal     int64
	feedErrorsTotal    int64
	feedLatencyTotalMs int64
	feedLastLatencyMs  int64
}

var (
	globalMetrics *SiteMetrics
	metricsOnce   sync.Once
)

// GetSiteMetrics returns the global metrics instance.
func GetSiteMetrics(log *slog.Logger) *SiteMetrics {
	metricsOnce.Do(func() {
		globalMetrics = &SiteMetrics{log: log}
	})
	return globalMetrics
}

// RecordMatchRequest records one matchmaker run over catalogSize candidates
// producing results entries.
func (m *SiteMetrics) RecordMatchRequest(catalogSize, results int) {
	atomic.AddInt64(&m.matchRequestsTotal, 1)
	atomic.AddInt64(&m.matchCandidatesTotal, int64(catalogSize))
	atomic.AddInt64(&m.matchResultsTotal, int64(results))
	if results == 0 {
		atomic.AddInt64(&m.matchEmptyTotal, 1)
	}
}

// RecordLeadCaptured records one captured lead.
func (m *SiteMetrics) RecordLeadCaptured() {
	atomic.AddInt64(&m.leadsCapturedTotal, 1)
}

// RecordListingSubmitted records one public listing submission.
func (m *SiteMetrics) RecordListingSubmitted() {
	atomic.AddInt64(&m.listingsSubmittedTotal, 1)
}

// RecordListingReviewed records an admin decision.
func (m *SiteMetrics) RecordListingReviewed(approved bool) {
	if approved {
		atomic.AddInt64(&m.listingsApprovedTotal, 1)
	} else {
		atomic.AddInt64(&m.listingsRejectedTotal, 1)
	}
}

// RecordFeedCall records one blog feed fetch.
func (m *SiteMetrics) RecordFeedCall(latency time.Duration, err error) {
	latencyMs := latency.Milliseconds()
	atomic.AddInt64(&m.feedCallsTotal, 1)
	atomic.AddInt64(&m.feedLatencyTotalMs, latencyMs)
	atomic.StoreInt64(&m.feedLastLatencyMs, latencyMs)
	if err != nil {
		atomic.AddInt64(&m.feedErrorsTotal, 1)
	}

	if m.log != nil {
		attrs := []any{slog.Int64("latency_ms", latencyMs)}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
			m.log.Warn("blog feed call failed", attrs...)
		} else {
			m.log.Debug("blog feed call completed", attrs...)
		}
	}
}

// Stats is a point-in-time snapshot for the admin metrics endpoint.
type Stats struct {
	Matchmaker MatchStats   `json:"matchmaker"`
	Leads      LeadStats    `json:"leads"`
	Listings   ListingStats `json:"listings"`
	Feed       FeedStats    `json:"feed"`
}

// MatchStats matchmaker counters
type MatchStats struct {
	RequestsTotal   int64   `json:"requests_total"`
	EmptyTotal      int64   `json:"empty_total"`
	AvgCatalogSize  float64 `json:"avg_catalog_size"`
	AvgResultsCount float64 `json:"avg_results_count"`
}

// LeadStats lead counters
type LeadStats struct {
	CapturedTotal int64 `json:"captured_total"`
}

// ListingStats review-workflow counters
type ListingStats struct {
	SubmittedTotal int64 `json:"submitted_total"`
	ApprovedTotal  int64 `json:"approved_total"`
	RejectedTotal  int64 `json:"rejected_total"`
}

// FeedStats blog feed client counters
type FeedStats struct {
	CallsTotal    int64   `json:"calls_total"`
	ErrorsTotal   int64   `json:"errors_total"`
	ErrorRate     float64 `json:"error_rate"`
	AvgLatencyMs  float64 `json:"avg_latency_ms"`
	LastLatencyMs int64   `json:"last_latency_ms"`
}

// GetStats returns the current snapshot.
func (m *SiteMetrics) GetStats() Stats {
	matchReqs := atomic.LoadInt64(&m.matchRequestsTotal)
	feedCalls := atomic.LoadInt64(&m.feedCallsTotal)

	var avgCatalog, avgResults float64
	if matchReqs > 0 {
		avgCatalog = float64(atomic.LoadInt64(&m.matchCandidatesTotal)) / float64(matchReqs)
		avgResults = float64(atomic.LoadInt64(&m.matchResultsTotal)) / float64(matchReqs)
	}

	var feedErrRate, feedAvgLatency float64
	if feedCalls > 0 {
		feedErrRate = float64(atomic.LoadInt64(&m.feedErrorsTotal)) / float64(feedCalls)
		feedAvgLatency = float64(atomic.LoadInt64(&m.feedLatencyTotalMs)) / float64(feedCalls)
	}

	return Stats{
		Matchmaker: MatchStats{
			RequestsTotal:   matchReqs,
			EmptyTotal:      atomic.LoadInt64(&m.matchEmptyTotal),
			AvgCatalogSize:  avgCatalog,
			AvgResultsCount: avgResults,
		},
		Leads: LeadStats{
			CapturedTotal: atomic.LoadInt64(&m.leadsCapturedTotal),
		},
		Listings: ListingStats{
			SubmittedTotal: atomic.LoadInt64(&m.listingsSubmittedTotal),
			ApprovedTotal:  atomic.LoadInt64(&m.listingsApprovedTotal),
			RejectedTotal:  atomic.LoadInt64(&m.listingsRejectedTotal),
		},
		Feed: FeedStats{
			CallsTotal:    feedCalls,
			ErrorsTotal:   atomic.LoadInt64(&m.feedErrorsTotal),
			ErrorRate:     feedErrRate,
			AvgLatencyMs:  feedAvgLatency,
			LastLatencyMs: atomic.LoadInt64(&m.feedLastLatencyMs),
		},
	}
}

// Reset zeroes every counter.
func (m *SiteMetrics) Reset() {
	atomic.StoreInt64(&m.matchRequestsTotal, 0)
	atomic.StoreInt64(&m.matchCandidatesTotal, 0)
	atomic.StoreInt64(&m.matchResultsTotal, 0)
	atomic.StoreInt64(&m.matchEmptyTotal, 0)
	atomic.StoreInt64(&m.leadsCapturedTotal, 0)
	atomic.StoreInt64(&m.listingsSubmittedTotal, 0)
	atomic.StoreInt64(&m.listingsApprovedTotal, 0)
	atomic.StoreInt64(&m.listingsRejectedTotal, 0)
	atomic.StoreInt64(&m.feedCallsTotal, 0)
	atomic.StoreInt64(&m.feedErrorsTotal, 0)
	atomic.StoreInt64(&m.feedLatencyTotalMs, 0)
	atomic.StoreInt64(&m.feedLastLatencyMs, 0)
}
