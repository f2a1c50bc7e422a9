// Package herb holds the static Ayurvedic knowledge base: the herb lexicon
// used for text matching and the traditional property profile of every
// described herb.  All tables are built once and never mutated; accessors
// hand out copies.
package herb

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Entry is one row of the herb lexicon: a canonical title-cased name and the
// lowercase alternative spellings that identify it in free text.
type Entry struct {
	Name     string   `json:"name"`
	Synonyms []string `json:"synonyms"`
}

// Terms returns the lowercase herb name followed by its synonyms, in the
// order they are tried during matching.
func (e Entry) Terms() []string {
	out := make([]string, 0, len(e.Synonyms)+1)
	out = append(out, strings.ToLower(e.Name))
	return append(out, e.Synonyms...)
}

// Record is the traditional profile of a described herb.  Tags are stored in
// their English form ("bitter", "hot"); see Sanskrit for the classical key.
type Record struct {
	Name               string   `json:"name"`
	Synonyms           []string `json:"synonyms"`
	Rasa               []string `json:"rasa"`
	Guna               []string `json:"guna"`
	Vipaka             string   `json:"vipaka"`
	Virya              string   `json:"virya"`
	Prabhava           []string `json:"prabhava"`
	Dosha              string   `json:"dosha"`
	TherapeuticActions []string `json:"therapeutic_actions"`
	ModernCompounds    []string `json:"modern_compounds"`
}

// Clone returns a deep copy so callers can never alias the static tables.
func (r Record) Clone() Record {
	r.Synonyms = cloneStrings(r.Synonyms)
	r.Rasa = cloneStrings(r.Rasa)
	r.Guna = cloneStrings(r.Guna)
	r.Prabhava = cloneStrings(r.Prabhava)
	r.TherapeuticActions = cloneStrings(r.TherapeuticActions)
	r.ModernCompounds = cloneStrings(r.ModernCompounds)
	return r
}

// PropertyTags are the classical tags found in a piece of text.  They are
// collected for the whole text, so every herb detected in the same text
// shares one PropertyTags value.
type PropertyTags struct {
	Rasa     []string `json:"rasa"`
	Guna     []string `json:"guna"`
	Vipaka   []string `json:"vipaka"`
	Virya    []string `json:"virya"`
	Prabhava []string `json:"prabhava"`
}

// NewPropertyTags returns a PropertyTags with empty, non-nil lists so that it
// serialises as [] rather than null.
func NewPropertyTags() PropertyTags {
	return PropertyTags{
		Rasa:     []string{},
		Guna:     []string{},
		Vipaka:   []string{},
		Virya:    []string{},
		Prabhava: []string{},
	}
}

// Empty reports whether no tag of any kind is present.
func (p PropertyTags) Empty() bool {
	return len(p.Rasa)+len(p.Guna)+len(p.Vipaka)+len(p.Virya)+len(p.Prabhava) == 0
}

// NormalizeName converts a herb name to the title-cased key used by the
// knowledge base ("black pepper" -> "Black Pepper").
func NormalizeName(name string) string {
	// cases.Caser is stateful, so one is built per call.
	return cases.Title(language.English).String(strings.TrimSpace(name))
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

//Personal.AI order the ending
