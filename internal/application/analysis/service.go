// Package analysis runs the text-to-hypotheses pipeline: extraction, knowledge
// base lookup, compound resolution and hypothesis generation, followed by
// best-effort write-back to the graph store and the event stream.
package analysis

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/turtacn/AyurChem-Intelligence/internal/domain/compound"
	"github.com/turtacn/AyurChem-Intelligence/internal/domain/herb"
	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/database/neo4j/repositories"
	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/messaging/kafka"
	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/AyurChem-Intelligence/internal/intelligence/herb_extractor"
	"github.com/turtacn/AyurChem-Intelligence/internal/intelligence/hypothesis"
	"github.com/turtacn/AyurChem-Intelligence/pkg/errors"
)

// NoTextMessage is returned for empty input.
const NoTextMessage = "No text provided"

// DemoText is the fixed input of Demo.
const DemoText = "Turmeric (Curcuma longa) combined with black pepper (Piper nigrum) enhances bioavailability. " +
	"The hot property of these herbs aids in digestion and reduces inflammation."

// EventSource identifies this service in published envelopes.
const EventSource = "ayurchem-analysis"

// Tag sources.
const (
	TagSourceText   = "text"
	TagSourceRecord = "record"
)

// ─────────────────────────────────────────────────────────────────────────────
// Collaborators
// ─────────────────────────────────────────────────────────────────────────────

type Extractor interface {
	Extract(ctx context.Context, text string) *herb_extractor.Result
}

type CompoundResolver interface {
	ResolveAll(ctx context.Context, herbs []string) map[string][]compound.Compound
}

type HypothesisGenerator interface {
	Generate(herbs []hypothesis.HerbInput) []hypothesis.Hypothesis
}

// GraphWriter is the subset of the graph store used for write-back.
type GraphWriter interface {
	UpsertHerb(ctx context.Context, h repositories.HerbUpsert) error
	Live() bool
}

// Metrics receives pipeline counters.  *prometheus.AppMetrics implements it.
type Metrics interface {
	RecordAnalysis(mode string, err error, d time.Duration)
	RecordHerbDetected(herb string)
	RecordHypothesis(kind string)
	RecordCompound(source string)
	RecordGraphWrite(err error)
	RecordEventPublish(err error)
}

type nopMetrics struct{}

func (nopMetrics) RecordAnalysis(string, error, time.Duration) {}
func (nopMetrics) RecordHerbDetected(string)                  {}
func (nopMetrics) RecordHypothesis(string)                    {}
func (nopMetrics) RecordCompound(string)                      {}
func (nopMetrics) RecordGraphWrite(error)                     {}
func (nopMetrics) RecordEventPublish(error)                   {}

// ─────────────────────────────────────────────────────────────────────────────
// Types
// ─────────────────────────────────────────────────────────────────────────────

// Response is the result of one analysis.  ID is empty for the demo.
type Response struct {
	ID             string                         `json:"id,omitempty"`
	Text           string                         `json:"text,omitempty"`
	Herbs          []string                       `json:"herbs"`
	Mentions       []herb_extractor.Mention       `json:"mentions"`
	Properties     herb.PropertyTags              `json:"properties"`
	HerbProperties map[string]herb.Record         `json:"herb_properties"`
	Compounds      map[string][]compound.Compound `json:"compounds"`
	Hypotheses     []hypothesis.Hypothesis        `json:"hypotheses"`
	Preparations   []string                       `json:"preparations"`
	Therapeutic    []string                       `json:"therapeutic_properties"`
	Entities       []herb_extractor.Entity        `json:"entities"`
}

// Service is the analysis use case.
type Service interface {
	Analyze(ctx context.Context, text string) (*Response, error)
	Demo(ctx context.Context) (*Response, error)
}

// Deps wires a Service.  Graph, Publisher, Metrics and Logger are optional.
type Deps struct {
	KnowledgeBase herb.KnowledgeBase
	Extractor     Extractor
	Resolver      CompoundResolver
	// DemoResolver must not reach the network.
	DemoResolver CompoundResolver
	Generator    HypothesisGenerator
	Graph        GraphWriter
	Publisher    kafka.Publisher
	Topic        string
	Metrics      Metrics
	Logger       logging.Logger
	TagSource    string
}

type serviceImpl struct {
	Deps
	newID func() string
	now   func() time.Time
}

// NewService validates deps and fills in no-op collaborators.
func NewService(d Deps) (Service, error) {
	if d.KnowledgeBase == nil || d.Extractor == nil || d.Resolver == nil || d.Generator == nil {
		return nil, errors.InvalidParam("analysis: knowledge base, extractor, resolver and generator are required")
	}
	if d.DemoResolver == nil {
		return nil, errors.InvalidParam("analysis: demo resolver is required")
	}
	switch d.TagSource {
	case "":
		d.TagSource = TagSourceText
	case TagSourceText, TagSourceRecord:
	default:
		return nil, errors.InvalidParam("analysis: unknown tag source " + d.TagSource)
	}
	if d.Graph == nil {
		d.Graph = repositories.NewNopGraphStore()
	}
	if d.Publisher == nil {
		d.Publisher = kafka.NopPublisher{}
	}
	if d.Topic == "" {
		d.Topic = kafka.TopicAnalysisCompleted
	}
	if d.Metrics == nil {
		d.Metrics = nopMetrics{}
	}
	if d.Logger == nil {
		d.Logger = logging.NewNopLogger()
	}
	d.Logger = d.Logger.Named("analysis")
	return &serviceImpl{
		Deps:  d,
		newID: func() string { return uuid.New().String() },
		now:   time.Now,
	}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Analyze
// ─────────────────────────────────────────────────────────────────────────────

func (s *serviceImpl) Analyze(ctx context.Context, text string) (resp *Response, err error) {
	start := s.now()
	defer func() { s.Metrics.RecordAnalysis("live", err, time.Since(start)) }()

	if strings.TrimSpace(text) == "" {
		return nil, errors.InvalidParam(NoTextMessage)
	}

	resp = s.run(ctx, text, s.Resolver)
	resp.ID = s.newID()

	for _, h := range resp.Hypotheses {
		s.Metrics.RecordHypothesis(string(h.Kind))
	}
	for _, name := range resp.Herbs {
		s.Metrics.RecordHerbDetected(name)
		for _, c := range resp.Compounds[name] {
			s.Metrics.RecordCompound(string(c.Source))
		}
	}

	s.writeBack(ctx, resp)
	s.publish(ctx, resp)

	s.Logger.Info("analysis completed",
		logging.String("analysis_id", resp.ID),
		logging.Strings("herbs", resp.Herbs),
		logging.Int("hypotheses", len(resp.Hypotheses)),
		logging.Duration("elapsed", time.Since(start)))
	return resp, nil
}

// Demo analyses DemoText offline.  It has no side effects other than
// metrics, and its output does not vary between calls.
func (s *serviceImpl) Demo(ctx context.Context) (*Response, error) {
	start := s.now()
	resp := s.run(ctx, DemoText, s.DemoResolver)
	resp.Text = DemoText
	s.Metrics.RecordAnalysis("demo", nil, time.Since(start))
	return resp, nil
}

func (s *serviceImpl) run(ctx context.Context, text string, resolver CompoundResolver) *Response {
	ex := s.Extractor.Extract(ctx, text)

	records := make(map[string]herb.Record, len(ex.Herbs))
	found := make(map[string]bool, len(ex.Herbs))
	for _, name := range ex.Herbs {
		rec, ok := s.KnowledgeBase.Lookup(name)
		if !ok {
			rec = herb.Record{Name: name}.Clone()
		}
		records[name] = rec
		found[name] = ok
	}

	compounds := resolver.ResolveAll(ctx, ex.Herbs)

	inputs := make([]hypothesis.HerbInput, 0, len(ex.Herbs))
	for _, name := range ex.Herbs {
		inputs = append(inputs, hypothesis.InputFor(name, records[name], found[name], s.tagsFor(ex.Properties, records[name], found[name]), compounds[name]))
	}

	return &Response{
		Herbs:          ex.Herbs,
		Mentions:       ex.Mentions,
		Properties:     ex.Properties,
		HerbProperties: records,
		Compounds:      compounds,
		Hypotheses:     s.Generator.Generate(inputs),
		Preparations:   ex.Preparations,
		Therapeutic:    ex.Therapeutic,
		Entities:       ex.Entities,
	}
}

// tagsFor picks the property tags attributed to one herb.  Text tags are
// global to the input; record tags fall back to them for unknown herbs.
func (s *serviceImpl) tagsFor(text herb.PropertyTags, rec herb.Record, found bool) herb.PropertyTags {
	if s.TagSource == TagSourceRecord && found {
		return rec.Tags()
	}
	return text
}

// ─────────────────────────────────────────────────────────────────────────────
// Side effects
// ─────────────────────────────────────────────────────────────────────────────

func (s *serviceImpl) writeBack(ctx context.Context, resp *Response) {
	if !s.Graph.Live() {
		return
	}
	for _, name := range resp.Herbs {
		rec := resp.HerbProperties[name]
		_, found := s.KnowledgeBase.Lookup(name)
		tags := s.tagsFor(resp.Properties, rec, found)
		err := s.Graph.UpsertHerb(ctx, repositories.HerbUpsert{
			Name:      name,
			Rasa:      tags.Rasa,
			Guna:      tags.Guna,
			Virya:     tags.Virya,
			Dosha:     rec.Dosha,
			Compounds: resp.Compounds[name],
		})
		s.Metrics.RecordGraphWrite(err)
		if err != nil {
			s.Logger.Warn("graph write-back failed", logging.String("herb", name), logging.Err(err))
		}
	}
}

func (s *serviceImpl) publish(ctx context.Context, resp *Response) {
	if _, nop := s.Publisher.(kafka.NopPublisher); nop {
		return
	}
	count, degraded := 0, 0
	for _, list := range resp.Compounds {
		for _, c := range list {
			count++
			if c.Degraded() {
				degraded++
			}
		}
	}
	env, err := kafka.NewEventEnvelope(kafka.EventTypeAnalysisCompleted, EventSource, kafka.AnalysisCompletedPayload{
		AnalysisID:      resp.ID,
		Herbs:           resp.Herbs,
		CompoundCount:   count,
		DegradedCount:   degraded,
		HypothesisCount: len(resp.Hypotheses),
		CompletedAt:     s.now().UTC(),
	})
	if err == nil {
		err = kafka.PublishEnvelope(ctx, s.Publisher, s.Topic, resp.ID, env)
	}
	s.Metrics.RecordEventPublish(err)
	if err != nil {
		s.Logger.Warn("analysis event not published", logging.String("analysis_id", resp.ID), logging.Err(err))
	}
}

//Personal.AI order the ending
