package observability

import (
	"party-lab/balancer"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const defaultNamespace = "party_lab"

// PrometheusCollector backs IPartyMetrics and IProcessMetrics with Prometheus.
type PrometheusCollector struct {
	requests   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	spread     *prometheus.HistogramVec
	iterations prometheus.Histogram
	parties    *prometheus.HistogramVec

	cpu      prometheus.Gauge
	memory   prometheus.Gauge
	resident prometheus.Gauge
	threads  prometheus.Gauge
}

var (
	_ IPartyMetrics   = (*PrometheusCollector)(nil)
	_ IProcessMetrics = (*PrometheusCollector)(nil)
)

// NewPrometheus creates the collectors and registers them on reg.
// A nil reg falls back to prometheus.DefaultRegisterer, an empty namespace to "party_lab".
func NewPrometheus(reg prometheus.Registerer, namespace string) (*PrometheusCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = defaultNamespace
	}

	p := &PrometheusCollector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "balance",
			Name:      "requests_total",
			Help:      "Party generation requests by strategy and outcome.",
		}, []string{"strategy", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "balance",
			Name:      "duration_seconds",
			Help:      "Time spent computing parties, store lookups excluded.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 4, 8), // 50µs .. ~0.8s
		}, []string{"strategy"}),
		spread: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "balance",
			Name:      "level_spread",
			Help:      "Gap between the strongest and weakest party total level, before and after refinement.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21, 34},
		}, []string{"phase"}),
		iterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "balance",
			Name:      "refinement_iterations",
			Help:      "Exchanges applied during refinement.",
			Buckets:   prometheus.LinearBuckets(0, 2, 10),
		}),
		parties: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "balance",
			Name:      "parties",
			Help:      "Parties produced per request.",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		}, []string{"strategy"}),
		cpu: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "process",
			Name:      "cpu_percent",
			Help:      "CPU usage of the server process.",
		}),
		memory: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "process",
			Name:      "memory_percent",
			Help:      "Share of system memory used by the server process.",
		}),
		resident: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "process",
			Name:      "resident_bytes",
			Help:      "Resident set size of the server process.",
		}),
		threads: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "process",
			Name:      "threads",
			Help:      "OS threads of the server process.",
		}),
	}

	for _, c := range []prometheus.Collector{
		p.requests, p.duration, p.spread, p.iterations, p.parties,
		p.cpu, p.memory, p.resident, p.threads,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *PrometheusCollector) ObserveBalance(stats balancer.Stats, elapsed time.Duration) {
	p.requests.WithLabelValues(stats.Strategy, OutcomeSuccess).Inc()
	p.duration.WithLabelValues(stats.Strategy).Observe(elapsed.Seconds())
	p.spread.WithLabelValues("seed").Observe(float64(stats.SeedSpread))
	p.spread.WithLabelValues("final").Observe(float64(stats.FinalSpread))
	p.iterations.Observe(float64(stats.Iterations))
	p.parties.WithLabelValues(stats.Strategy).Observe(float64(stats.Parties))
}

func (p *PrometheusCollector) ObserveRejection(strategy string, err error) {
	p.requests.WithLabelValues(strategyLabel(strategy), Outcome(err)).Inc()
}

func (p *PrometheusCollector) ObserveProcess(sample ProcessSample) {
	p.cpu.Set(sample.CPUPercent)
	p.memory.Set(sample.MemoryPercent)
	p.resident.Set(float64(sample.ResidentBytes))
	p.threads.Set(float64(sample.Threads))
}

// strategyLabel keeps the label set bounded when callers pass free text.
func strategyLabel(name string) string {
	switch name {
	case balancer.StrategyBalanced, balancer.StrategyClasses, balancer.StrategyRandom, balancer.StrategySized:
		return name
	case "":
		return balancer.StrategyBalanced
	default:
		return "unknown"
	}
}
