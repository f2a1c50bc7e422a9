package prometheus

import (
	"strconv"
	"time"
)

// AppMetrics is the AyurChem metric set.  It satisfies the pubchem and
// compound resolver observer interfaces.
type AppMetrics struct {
	HTTPRequestsTotal   CounterVec
	HTTPRequestDuration HistogramVec
	HTTPActiveRequests  GaugeVec

	AnalysesTotal      CounterVec
	AnalysisDuration   HistogramVec
	HerbsDetectedTotal CounterVec
	HypothesesTotal    CounterVec
	CompoundsResolved  CounterVec

	PubChemRequestsTotal   CounterVec
	PubChemRequestDuration HistogramVec
	FallbacksTotal         CounterVec
	CacheLookupsTotal      CounterVec

	GraphWritesTotal CounterVec
	EventsPublished  CounterVec
	DependencyUp     GaugeVec
}

var (
	HTTPDurationBuckets     = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	AnalysisDurationBuckets = []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}
	PubChemDurationBuckets  = []float64{.05, .1, .25, .5, 1, 2.5, 5, 10}
)

// NewAppMetrics registers every metric on collector.
func NewAppMetrics(collector MetricsCollector) *AppMetrics {
	return &AppMetrics{
		HTTPRequestsTotal:   collector.RegisterCounter("http_requests_total", "HTTP requests by route and status.", "method", "route", "status"),
		HTTPRequestDuration: collector.RegisterHistogram("http_request_duration_seconds", "HTTP request latency.", HTTPDurationBuckets, "method", "route"),
		HTTPActiveRequests:  collector.RegisterGauge("http_active_requests", "In-flight HTTP requests.", "method"),

		AnalysesTotal:      collector.RegisterCounter("analyses_total", "Completed analyses by outcome.", "outcome"),
		AnalysisDuration:   collector.RegisterHistogram("analysis_duration_seconds", "End-to-end analysis latency.", AnalysisDurationBuckets, "mode"),
		HerbsDetectedTotal: collector.RegisterCounter("herbs_detected_total", "Herbs detected in analysed text.", "herb"),
		HypothesesTotal:    collector.RegisterCounter("hypotheses_total", "Hypotheses generated by type.", "type"),
		CompoundsResolved:  collector.RegisterCounter("compounds_resolved_total", "Compounds attached to analyses by source.", "source"),

		PubChemRequestsTotal:   collector.RegisterCounter("pubchem_requests_total", "PubChem requests by operation and outcome.", "operation", "outcome"),
		PubChemRequestDuration: collector.RegisterHistogram("pubchem_request_duration_seconds", "PubChem request latency.", PubChemDurationBuckets, "operation"),
		FallbacksTotal:         collector.RegisterCounter("compound_fallbacks_total", "Fallback records substituted for failed lookups.", "herb"),
		CacheLookupsTotal:      collector.RegisterCounter("compound_cache_lookups_total", "Compound cache lookups.", "result"),

		GraphWritesTotal: collector.RegisterCounter("graph_writes_total", "Graph upserts by outcome.", "outcome"),
		EventsPublished:  collector.RegisterCounter("events_published_total", "Analysis events by outcome.", "outcome"),
		DependencyUp:     collector.RegisterGauge("dependency_up", "1 when an optional dependency is live.", "component"),
	}
}

func outcomeOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func (m *AppMetrics) RecordHTTPRequest(method, route string, status int, d time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordAnalysis counts one analysis.  mode is "live" or "demo".
func (m *AppMetrics) RecordAnalysis(mode string, err error, d time.Duration) {
	m.AnalysesTotal.WithLabelValues(outcomeOf(err)).Inc()
	m.AnalysisDuration.WithLabelValues(mode).Observe(d.Seconds())
}

func (m *AppMetrics) RecordHerbDetected(herb string) {
	m.HerbsDetectedTotal.WithLabelValues(herb).Inc()
}

func (m *AppMetrics) RecordHypothesis(kind string) {
	m.HypothesesTotal.WithLabelValues(kind).Inc()
}

func (m *AppMetrics) RecordCompound(source string) {
	m.CompoundsResolved.WithLabelValues(source).Inc()
}

func (m *AppMetrics) RecordGraphWrite(err error) {
	m.GraphWritesTotal.WithLabelValues(outcomeOf(err)).Inc()
}

func (m *AppMetrics) RecordEventPublish(err error) {
	m.EventsPublished.WithLabelValues(outcomeOf(err)).Inc()
}

func (m *AppMetrics) SetDependencyUp(component string, up bool) {
	v := 0.0
	if up {
		v = 1
	}
	m.DependencyUp.WithLabelValues(component).Set(v)
}

// ObservePubChemRequest implements pubchem.Observer.
func (m *AppMetrics) ObservePubChemRequest(operation, outcome string, d time.Duration) {
	m.PubChemRequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.PubChemRequestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// ObserveCacheLookup implements compound_resolver.Observer.
func (m *AppMetrics) ObserveCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookupsTotal.WithLabelValues(result).Inc()
}

// ObserveFallback implements compound_resolver.Observer.
func (m *AppMetrics) ObserveFallback(herb, _ string) {
	m.FallbacksTotal.WithLabelValues(herb).Inc()
}

//Personal.AI order the ending
