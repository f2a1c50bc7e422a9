package hypothesis

import (
	"fmt"
	"strings"

	"github.com/turtacn/AyurChem-Intelligence/internal/domain/compound"
	"github.com/turtacn/AyurChem-Intelligence/internal/domain/herb"
)

// maxListed caps the formulas or names quoted by summary records.
const maxListed = 3

// Generator applies the fixed rule tables.  It holds no state and is safe
// for concurrent use.
type Generator struct{}

// NewGenerator returns a Generator.
func NewGenerator() *Generator { return &Generator{} }

// Generate returns every hypothesis for herbs.  Per-herb correlation and
// compound records come first, followed by herb pairs, cross-herb compound
// interactions, dosha implications and property patterns.
func (g *Generator) Generate(herbs []HerbInput) []Hypothesis {
	out := make([]Hypothesis, 0)

	for _, h := range herbs {
		out = append(out, correlations(h)...)
		out = append(out, compoundRecords(h)...)
	}
	out = append(out, herbPairs(herbs)...)
	out = append(out, compoundInteractions(herbs)...)
	for _, h := range herbs {
		if rec, ok := doshaRecord(h); ok {
			out = append(out, rec)
		}
	}
	for _, h := range herbs {
		if rec, ok := patternRecord(h); ok {
			out = append(out, rec)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Per-herb rules
// ─────────────────────────────────────────────────────────────────────────────

func correlations(h HerbInput) []Hypothesis {
	found := len(h.Compounds)
	var out []Hypothesis
	emit := func(label, tag string, table map[string]mapping) {
		m, ok := table[tag]
		if !ok {
			return
		}
		n := found
		out = append(out, Hypothesis{
			Kind:                 KindCorrelation,
			Herb:                 h.Name,
			AyurvedicProperty:    label + ": " + tag,
			PredictedBioactivity: append([]string(nil), m.bioactivity...),
			Mechanism:            m.mechanism,
			CompoundsFound:       &n,
			Confidence:           ConfidenceMedium,
		})
	}
	for _, t := range h.Tags.Rasa {
		emit("Rasa", t, tasteMapping)
	}
	for _, t := range h.Tags.Guna {
		emit("Guna", t, qualityMapping)
	}
	for _, t := range h.Tags.Virya {
		emit("Virya", t, tasteMapping)
	}
	return out
}

func compoundRecords(h HerbInput) []Hypothesis {
	if len(h.Compounds) == 0 {
		return nil
	}
	out := []Hypothesis{{
		Kind:       KindPhytochemical,
		Title:      "Phytochemical Analysis",
		Herb:       h.Name,
		Message:    fmt.Sprintf("Identified %d bioactive compounds", len(h.Compounds)),
		Compounds:  formulas(h.Compounds),
		Confidence: ConfidenceHigh,
	}}
	if len(h.Compounds) < 2 {
		return out
	}

	// Only the first known pair present is reported.
	for _, s := range knownSynergies {
		if containsTerm(h.Compounds, s.compounds[0]) && containsTerm(h.Compounds, s.compounds[1]) {
			return append(out, Hypothesis{
				Kind:                 KindCompoundSynergy,
				Title:                "Compound Synergy Identified",
				Herb:                 h.Name,
				Compounds:            []string{s.compounds[0], s.compounds[1]},
				Mechanism:            s.mechanism,
				Evidence:             s.evidence,
				ClinicalSignificance: s.clinicalSignificance,
				Confidence:           ConfidenceHigh,
			})
		}
	}
	return append(out, Hypothesis{
		Kind:       KindCompoundSynergy,
		Title:      "Potential Compound Synergy",
		Herb:       h.Name,
		Message:    "Multiple bioactive compounds identified that may work synergistically",
		Compounds:  formulas(h.Compounds),
		Confidence: ConfidenceMedium,
	})
}

func doshaRecord(h HerbInput) (Hypothesis, bool) {
	if h.Record == nil || strings.TrimSpace(h.Record.Dosha) == "" {
		return Hypothesis{}, false
	}
	return Hypothesis{
		Kind:                 KindDosha,
		Title:                "Dosha Analysis",
		Herb:                 h.Name,
		DoshaEffect:          h.Record.Dosha,
		TherapeuticPotential: doshaImplication(h.Record.Dosha),
		Confidence:           ConfidenceMedium,
	}, true
}

func doshaImplication(dosha string) string {
	d := strings.ToLower(dosha)
	for _, di := range doshaImplications {
		if strings.Contains(d, di.keyword) {
			return di.implication
		}
	}
	return defaultDoshaImplication
}

func patternRecord(h HerbInput) (Hypothesis, bool) {
	r := h.Record
	if r == nil || len(r.Rasa) == 0 || len(r.Guna) == 0 || r.Virya == "" {
		return Hypothesis{}, false
	}
	present := make(map[string]bool, len(r.Rasa)+len(r.Guna)+1)
	for _, t := range r.Rasa {
		present[strings.ToLower(t)] = true
	}
	for _, t := range r.Guna {
		present[strings.ToLower(t)] = true
	}
	present[strings.ToLower(r.Virya)] = true

	for _, p := range rgvPatterns {
		if allPresent(present, p.tags) {
			return Hypothesis{
				Kind:                 KindPattern,
				Title:                "Rasa-Guna-Virya Pattern",
				Herb:                 h.Name,
				Pattern:              p.name,
				Significance:         p.significance,
				TherapeuticPotential: p.potential,
				Confidence:           ConfidenceHigh,
			}, true
		}
	}
	return Hypothesis{}, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Multi-herb rules
// ─────────────────────────────────────────────────────────────────────────────

func herbPairs(herbs []HerbInput) []Hypothesis {
	var out []Hypothesis
	for i := 0; i < len(herbs); i++ {
		for j := i + 1; j < len(herbs); j++ {
			a, b := strings.ToLower(herbs[i].Name), strings.ToLower(herbs[j].Name)
			for _, s := range knownSynergies {
				if !samePair(a, b, s.herbs) {
					continue
				}
				out = append(out, Hypothesis{
					Kind:                 KindHerbSynergy,
					Title:                "Known Biochemical Synergy",
					Herbs:                []string{herbs[i].Name, herbs[j].Name},
					Mechanism:            s.mechanism,
					Evidence:             s.evidence,
					ClinicalSignificance: s.clinicalSignificance,
					Confidence:           ConfidenceHigh,
				})
			}
		}
	}
	return out
}

// compoundInteractions pairs compounds of different herbs by name.  Degraded
// records keep their name and take part as well.
func compoundInteractions(herbs []HerbInput) []Hypothesis {
	var out []Hypothesis
	for i := 0; i < len(herbs); i++ {
		for j := i + 1; j < len(herbs); j++ {
			for _, c1 := range herbs[i].Compounds {
				for _, c2 := range herbs[j].Compounds {
					a, b := strings.ToLower(c1.Name), strings.ToLower(c2.Name)
					for _, s := range knownSynergies {
						if !samePair(a, b, s.compounds) {
							continue
						}
						out = append(out, Hypothesis{
							Kind:       KindCompoundInteraction,
							Title:      "Compound Interaction",
							Herbs:      []string{herbs[i].Name, herbs[j].Name},
							Compounds:  []string{c1.Name, c2.Name},
							Mechanism:  s.interaction,
							Effect:     s.interactionEffect,
							Confidence: ConfidenceMedium,
						})
					}
				}
			}
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────────────────────────────────────

func formulas(cs []compound.Compound) []string {
	n := len(cs)
	if n > maxListed {
		n = maxListed
	}
	out := make([]string, 0, n)
	for _, c := range cs[:n] {
		out = append(out, c.Formula())
	}
	return out
}

func containsTerm(cs []compound.Compound, term string) bool {
	for _, c := range cs {
		if c.Matches(term) {
			return true
		}
	}
	return false
}

func samePair(a, b string, pair [2]string) bool {
	return (a == pair[0] && b == pair[1]) || (a == pair[1] && b == pair[0])
}

func allPresent(set map[string]bool, tags []string) bool {
	for _, t := range tags {
		if !set[t] {
			return false
		}
	}
	return true
}

// InputFor assembles a HerbInput.  A zero Record (not described by the
// catalog) is stored as nil.
func InputFor(name string, rec herb.Record, found bool, tags herb.PropertyTags, compounds []compound.Compound) HerbInput {
	in := HerbInput{Name: name, Tags: tags, Compounds: compounds}
	if found {
		r := rec
		in.Record = &r
	}
	return in
}

//Personal.AI order the ending
