package prometheus

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppMetrics_Analysis(t *testing.T) {
	c := newTestCollector(t)
	m := NewAppMetrics(c)

	m.RecordAnalysis("live", nil, 30*time.Millisecond)
	m.RecordAnalysis("live", errors.New("boom"), time.Millisecond)
	m.RecordHerbDetected("Turmeric")
	m.RecordHypothesis("herb_synergy")
	m.RecordCompound("pubchem")

	out := scrape(t, c)
	assert.Contains(t, out, `test_unit_analyses_total{outcome="success"} 1`)
	assert.Contains(t, out, `test_unit_analyses_total{outcome="error"} 1`)
	assert.Contains(t, out, `test_unit_herbs_detected_total{herb="Turmeric"} 1`)
	assert.Contains(t, out, `test_unit_hypotheses_total{type="herb_synergy"} 1`)
	assert.Contains(t, out, `test_unit_compounds_resolved_total{source="pubchem"} 1`)
	assert.Contains(t, out, `test_unit_analysis_duration_seconds_count{mode="live"} 2`)
}

func TestAppMetrics_HTTP(t *testing.T) {
	c := newTestCollector(t)
	m := NewAppMetrics(c)

	m.RecordHTTPRequest("POST", "/api/analyze", 400, 5*time.Millisecond)
	assert.Contains(t, scrape(t, c), `test_unit_http_requests_total{method="POST",route="/api/analyze",status="400"} 1`)
}

func TestAppMetrics_Observers(t *testing.T) {
	c := newTestCollector(t)
	m := NewAppMetrics(c)

	m.ObservePubChemRequest("compound_by_name", "not_found", 80*time.Millisecond)
	m.ObserveCacheLookup(true)
	m.ObserveCacheLookup(false)
	m.ObserveCacheLookup(false)
	m.ObserveFallback("Turmeric", "curcumin")

	out := scrape(t, c)
	assert.Contains(t, out, `test_unit_pubchem_requests_total{operation="compound_by_name",outcome="not_found"} 1`)
	assert.Contains(t, out, `test_unit_compound_cache_lookups_total{result="hit"} 1`)
	assert.Contains(t, out, `test_unit_compound_cache_lookups_total{result="miss"} 2`)
	assert.Contains(t, out, `test_unit_compound_fallbacks_total{herb="Turmeric"} 1`)
}

func TestAppMetrics_Dependencies(t *testing.T) {
	c := newTestCollector(t)
	m := NewAppMetrics(c)

	m.SetDependencyUp("neo4j", true)
	m.SetDependencyUp("kafka", false)
	m.RecordGraphWrite(nil)
	m.RecordEventPublish(errors.New("down"))

	out := scrape(t, c)
	assert.Contains(t, out, `test_unit_dependency_up{component="neo4j"} 1`)
	assert.Contains(t, out, `test_unit_dependency_up{component="kafka"} 0`)
	assert.Contains(t, out, `test_unit_graph_writes_total{outcome="success"} 1`)
	assert.Contains(t, out, `test_unit_events_published_total{outcome="error"} 1`)
}

//Personal.AI order the ending
