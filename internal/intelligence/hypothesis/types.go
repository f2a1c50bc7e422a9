// Package hypothesis turns the properties and compounds found for a set of
// herbs into descriptive hypothesis records.  Every rule is a fixed table
// lookup; confidence labels are fixed per rule and never computed.
package hypothesis

import (
	"github.com/turtacn/AyurChem-Intelligence/internal/domain/compound"
	"github.com/turtacn/AyurChem-Intelligence/internal/domain/herb"
)

// Kind tags the rule that produced a Hypothesis.
type Kind string

const (
	KindCorrelation         Kind = "correlation"
	KindPhytochemical       Kind = "phytochemical_analysis"
	KindCompoundSynergy     Kind = "synergy_analysis"
	KindHerbSynergy         Kind = "herb_synergy"
	KindCompoundInteraction Kind = "compound_interaction"
	KindDosha               Kind = "dosha_analysis"
	KindPattern             Kind = "rasa_guna_virya_pattern"
)

// Confidence is a fixed label attached by each rule.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Hypothesis is one generated record.  Only the fields relevant to Kind are
// populated.
type Hypothesis struct {
	Kind       Kind       `json:"type"`
	Title      string     `json:"title,omitempty"`
	Confidence Confidence `json:"confidence"`

	Herb  string   `json:"herb,omitempty"`
	Herbs []string `json:"herbs,omitempty"`

	// Correlation records.
	AyurvedicProperty    string   `json:"ayurvedic_property,omitempty"`
	PredictedBioactivity []string `json:"predicted_bioactivity,omitempty"`
	CompoundsFound       *int     `json:"compounds_found,omitempty"`

	Compounds            []string `json:"compounds,omitempty"`
	Message              string   `json:"message,omitempty"`
	Mechanism            string   `json:"mechanism,omitempty"`
	Evidence             string   `json:"evidence,omitempty"`
	ClinicalSignificance string   `json:"clinical_significance,omitempty"`
	Effect               string   `json:"effect,omitempty"`

	// Dosha records.
	DoshaEffect          string `json:"dosha_effect,omitempty"`
	TherapeuticPotential string `json:"therapeutic_potential,omitempty"`

	// Pattern records.
	Pattern      string `json:"pattern,omitempty"`
	Significance string `json:"significance,omitempty"`
}

// HerbInput is everything known about one detected herb.
type HerbInput struct {
	// Name is the canonical title-cased herb name.
	Name string
	// Record is the static profile, or nil for herbs the catalog does not
	// describe.
	Record *herb.Record
	// Tags are the classical tags attributed to the herb.
	Tags herb.PropertyTags
	// Compounds are the resolved records, degraded ones included.
	Compounds []compound.Compound
}

//Personal.AI order the ending
