// Package metrics expõe as métricas Prometheus da geração de relatórios de vendas
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Buckets em milissegundos para a duração das análises
var defaultDurationBuckets = []float64{0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000}

// Manager agrupa as métricas da geração de relatórios
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         *prometheus.Registry

	reportsGenerated         prometheus.Counter
	reportErrors             *prometheus.CounterVec
	reportDuration           prometheus.Histogram
	sellersRanked            prometheus.Counter
	purchaseRecordsProcessed prometheus.Counter
}

// NewManager cria o gerenciador de métricas com registry próprio
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "sales",
		subsystem:        "report",
		histogramBuckets: defaultDurationBuckets,
		enabled:          true,
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.reportsGenerated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reports_generated_total",
		Help:      "Total number of seller performance reports generated",
	})

	m.reportErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "report_errors_total",
			Help:      "Total number of failed report generations by error code",
		},
		[]string{"code"},
	)

	m.reportDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "report_duration_milliseconds",
		Help:      "Duration of the sales aggregation in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.sellersRanked = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sellers_ranked_total",
		Help:      "Total number of seller rows emitted in reports",
	})

	m.purchaseRecordsProcessed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "purchase_records_processed_total",
		Help:      "Total number of purchase records folded into reports",
	})
}

// RecordReport registra uma geração de relatório bem-sucedida
func (m *Manager) RecordReport(sellers, purchaseRecords int, duration time.Duration) {
	if m == nil || !m.enabled {
		return
	}

	m.reportsGenerated.Inc()
	m.sellersRanked.Add(float64(sellers))
	m.purchaseRecordsProcessed.Add(float64(purchaseRecords))
	m.reportDuration.Observe(float64(duration.Microseconds()) / 1000)
}

// RecordError registra uma falha de geração com o código de erro da API
func (m *Manager) RecordError(code string) {
	if m == nil || !m.enabled {
		return
	}

	m.reportErrors.WithLabelValues(code).Inc()
}

// Registry retorna o registry com as métricas registradas
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler expõe as métricas no formato Prometheus
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
