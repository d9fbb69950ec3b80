package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of the ledger service. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	syncItems      *prometheus.CounterVec
	ledgerFailures *prometheus.CounterVec
	passDuration   prometheus.Histogram
	approvals      prometheus.Counter
	httpRequests   *prometheus.CounterVec
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// NewMetrics registers the collectors against registerer. When registerer is
// nil the default Prometheus registerer is used, once per process.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		defaultOnce.Do(func() {
			defaultMetrics = buildMetrics(prometheus.DefaultRegisterer)
		})
		return defaultMetrics
	}
	return buildMetrics(registerer)
}

func buildMetrics(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		syncItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "polifund_hub_sync_items_total",
			Help: "Journals processed by Hub sync passes by outcome",
		}, []string{"outcome"}),
		ledgerFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "polifund_hub_sync_ledger_failures_total",
			Help: "Ledgers whose sync attempt failed",
		}, []string{"ledger_type"}),
		passDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "polifund_hub_sync_pass_duration_seconds",
			Help:    "Duration of a full sync pass",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		approvals: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "polifund_journal_approvals_total",
			Help: "Journals moved from draft to approved",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "polifund_http_requests_total",
			Help: "HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
	}
	registerer.MustRegister(m.syncItems, m.ledgerFailures, m.passDuration, m.approvals, m.httpRequests)
	return m
}

// ObserveSyncResult records the per-journal outcomes of one ledger.
func (m *Metrics) ObserveSyncResult(created, updated, skipped, errors int) {
	if m == nil {
		return
	}
	m.syncItems.WithLabelValues("created").Add(float64(created))
	m.syncItems.WithLabelValues("updated").Add(float64(updated))
	m.syncItems.WithLabelValues("skipped").Add(float64(skipped))
	m.syncItems.WithLabelValues("error").Add(float64(errors))
}

// IncLedgerFailure counts a failed ledger.
func (m *Metrics) IncLedgerFailure(ledgerType string) {
	if m != nil {
		m.ledgerFailures.WithLabelValues(ledgerType).Inc()
	}
}

// ObservePassDuration records how long a sync pass took.
func (m *Metrics) ObservePassDuration(d time.Duration) {
	if m != nil {
		m.passDuration.Observe(d.Seconds())
	}
}

// IncApproval counts a draft -> approved transition.
func (m *Metrics) IncApproval() {
	if m != nil {
		m.approvals.Inc()
	}
}

// GinMiddleware counts requests by matched route.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if m == nil {
			return
		}
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
