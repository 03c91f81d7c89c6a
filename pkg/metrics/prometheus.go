package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Metrics holds all prometheus metrics for one run.
type Metrics struct {
	registry *prometheus.Registry

	OffersFetched prometheus.Counter
	DealsFound    prometheus.Counter
	MessagesSent  prometheus.Counter
	SearchTime    prometheus.Histogram
	ErrorsCount   *prometheus.CounterVec
}

// NewMetrics creates the run metrics on a private registry so repeated
// construction (tests, reruns in-process) cannot collide.
func NewMetrics(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		OffersFetched: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offers_fetched_total",
			Help:      "The total number of offers returned by the search API",
		}),
		DealsFound: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deals_found_total",
			Help:      "The total number of new deals below threshold",
		}),
		MessagesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_sent_total",
			Help:      "The total number of digest messages delivered",
		}),
		SearchTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "user_search_time_seconds",
			Help:      "Time taken to search and notify one user",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}

// Push delivers the collected metrics to a Pushgateway. One-shot runs have
// nothing to scrape, so the run pushes its registry before exiting.
func (m *Metrics) Push(ctx context.Context, gatewayURL, job string) error {
	return push.New(gatewayURL, job).
		Gatherer(m.registry).
		PushContext(ctx)
}
