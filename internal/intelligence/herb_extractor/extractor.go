// Package herb_extractor finds known herbs and classical property words in
// free text.  Matching is deterministic: a fixed lexicon scanned in order,
// plus a fixed set of word-bounded expressions for the property tags.
package herb_extractor

import (
	"context"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/turtacn/AyurChem-Intelligence/internal/domain/herb"
	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/monitoring/logging"
)

// ─────────────────────────────────────────────────────────────────────────────
// Types
// ─────────────────────────────────────────────────────────────────────────────

// Mention records which term identified a herb and how it was spelled in the
// input.  Offset is a byte offset into the NFC-normalised text.
type Mention struct {
	Herb   string `json:"herb"`
	Text   string `json:"text"`
	Offset int    `json:"offset"`
}

// Result is the output of one Extract call.  Properties are collected for
// the whole text and apply to every herb in Herbs.
type Result struct {
	Herbs        []string          `json:"herbs"`
	Mentions     []Mention         `json:"mentions"`
	Properties   herb.PropertyTags `json:"properties"`
	Preparations []string          `json:"preparations"`
	Therapeutic  []string          `json:"therapeutic_properties"`
	Entities     []Entity          `json:"entities"`
}

// LexiconSource supplies the ordered herb lexicon.
type LexiconSource interface {
	Lexicon() []herb.Entry
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTagger installs an optional sentence tagger.
func WithTagger(t Tagger) Option {
	return func(e *Extractor) {
		if t != nil {
			e.tagger = t
		}
	}
}

// WithLogger sets the logger used for tagger failures.
func WithLogger(l logging.Logger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.logger = l
		}
	}
}

// Extractor is safe for concurrent use.
type Extractor struct {
	lexicon []herb.Entry
	tagger  Tagger
	logger  logging.Logger
}

// NewExtractor snapshots the lexicon of src.
func NewExtractor(src LexiconSource, opts ...Option) *Extractor {
	e := &Extractor{
		lexicon: src.Lexicon(),
		tagger:  NopTagger(),
		logger:  logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ─────────────────────────────────────────────────────────────────────────────
// Extract
// ─────────────────────────────────────────────────────────────────────────────

// Extract scans text.  Empty text yields an empty, non-nil Result.
func (e *Extractor) Extract(ctx context.Context, text string) *Result {
	res := &Result{
		Herbs:        []string{},
		Mentions:     []Mention{},
		Properties:   herb.NewPropertyTags(),
		Preparations: []string{},
		Therapeutic:  []string{},
		Entities:     []Entity{},
	}
	if strings.TrimSpace(text) == "" {
		return res
	}

	text = norm.NFC.String(text)
	lower := strings.ToLower(text)

	seen := make(map[string]bool, len(e.lexicon))
	for _, entry := range e.lexicon {
		if seen[entry.Name] {
			continue
		}
		for _, term := range entry.Terms() {
			idx := strings.Index(lower, term)
			if idx < 0 {
				continue
			}
			seen[entry.Name] = true
			res.Herbs = append(res.Herbs, entry.Name)
			res.Mentions = append(res.Mentions, Mention{
				Herb:   entry.Name,
				Text:   originalSpan(text, lower, idx, len(term)),
				Offset: idx,
			})
			break
		}
	}

	res.Properties.Rasa = matchTags(text, rasaPatterns)
	res.Properties.Guna = matchTags(text, gunaPatterns)
	res.Properties.Virya = matchTags(text, viryaPatterns)
	res.Preparations = containedKeywords(lower, preparationKeywords)
	res.Therapeutic = containedKeywords(lower, therapeuticKeywords)

	entities, err := e.tagger.Tag(ctx, text)
	if err != nil {
		e.logger.Warn("sentence tagger failed, continuing with lexicon matches", logging.Err(err))
	} else if entities != nil {
		res.Entities = entities
	}
	return res
}

// originalSpan maps a match in the lowercased text back to the input's own
// casing.  Lowercasing can change byte lengths for a few scripts; then the
// lowercase form is returned.
func originalSpan(text, lower string, idx, n int) string {
	if len(text) != len(lower) {
		return lower[idx : idx+n]
	}
	return text[idx : idx+n]
}

func containedKeywords(lower string, keywords []string) []string {
	out := []string{}
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			out = append(out, k)
		}
	}
	return out
}

//Personal.AI order the ending
