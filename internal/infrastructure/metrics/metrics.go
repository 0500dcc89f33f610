// Package metrics defines the Prometheus metrics recorded during a seed run.
// It is the single source of truth for metric names, labels, and help strings.
//
// The seeder is a one-shot process, so nothing is scraped. When a Pushgateway
// URL is configured, Push delivers the final values at the end of the run.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

const (
	namespace = "seed"
	jobName   = "arcos_globos_seed"
)

// DocumentsTotal counts documents handled by the seeder.
// Labels:
//   - collection: target collection (e.g. "users")
//   - result: "written", "skipped" (ledger hit) or "failed"
var DocumentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_total",
		Help:      "Total number of seed documents handled, by collection and result.",
	},
	[]string{"collection", "result"},
)

// RunDuration measures a complete seed run.
// Label:
//   - mode: the configured writer ("dry-run", "firestore", "mongo")
var RunDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "run_duration_seconds",
		Help:      "Duration of a seed run from banner to last document.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"mode"},
)

// Recorder implements ports.SeedRecorder on the package metrics.
type Recorder struct{}

func NewRecorder() Recorder {
	return Recorder{}
}

// DocumentHandled increments DocumentsTotal; result is one of the
// ports.Result* values.
func (Recorder) DocumentHandled(collection, result string) {
	DocumentsTotal.WithLabelValues(collection, result).Inc()
}

// RunFinished observes RunDuration.
func (Recorder) RunFinished(mode string, elapsed time.Duration) {
	RunDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
}

// Push sends every registered metric to the Pushgateway at url.
func Push(ctx context.Context, url string) error {
	pusher := push.New(url, jobName).Gatherer(prometheus.DefaultGatherer)
	if err := pusher.PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics: %w", err)
	}
	return nil
}
