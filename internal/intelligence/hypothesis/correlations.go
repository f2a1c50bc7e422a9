package hypothesis

import (
	"strings"

	"github.com/turtacn/AyurChem-Intelligence/internal/domain/herb"
)

// ModernCorrelation links one traditional property of a herb to the modern
// compound classes and mechanisms usually associated with it.
type ModernCorrelation struct {
	Kind                string   `json:"kind"`
	AncientProperty     string   `json:"ancient_property"`
	ModernUnderstanding string   `json:"modern_understanding,omitempty"`
	CompoundClasses     []string `json:"compound_classes,omitempty"`
	Examples            []string `json:"examples,omitempty"`
	Mechanism           string   `json:"mechanism,omitempty"`
	Evidence            string   `json:"evidence,omitempty"`
	Significance        string   `json:"significance"`
}

type classEntry struct {
	classes     []string
	description string
	examples    []string
	effect      string
}

var rasaClasses = map[string]classEntry{
	"bitter":  {[]string{"alkaloids", "glycosides", "terpenoids"}, "Bitter compounds often have strong pharmacological activity", []string{"curcumin", "piperine", "withanolides"}, ""},
	"pungent": {[]string{"volatile oils", "phenolic compounds"}, "Pungent compounds often have antimicrobial and digestive properties", []string{"gingerol", "piperine", "eugenol"}, ""},
	"sweet":   {[]string{"sugars", "glycosides", "triterpenes"}, "Sweet compounds often have nutritive and tonic properties", []string{"glycyrrhizin", "saponins"}, ""},
}

// qualityClasses is keyed by guna and also answers virya lookups.
var qualityClasses = map[string]classEntry{
	"hot":  {[]string{"capsaicinoids", "piperine", "gingerol"}, "Hot guna correlates with compounds that increase metabolism and circulation", nil, "Thermogenic and vasodilatory effects"},
	"cold": {[]string{"menthol", "camphor", "eugenol"}, "Cold guna correlates with compounds that have cooling and anti-inflammatory effects", nil, "Anti-inflammatory and cooling effects"},
	"dry":  {[]string{"tannins", "phenolic compounds"}, "Dry guna correlates with compounds that have astringent properties", nil, "Astringent and tissue-drying effects"},
	"oily": {[]string{"fatty acids", "terpenes", "sterols"}, "Oily guna correlates with lipid-soluble compounds", nil, "Lipid-soluble absorption and tissue lubrication"},
}

var actionClasses = map[string]struct {
	compounds []string
	mechanism string
	evidence  string
}{
	"anti-inflammatory": {[]string{"curcumin", "gingerol", "eugenol", "ursolic acid"}, "COX-2 inhibition, NF-κB pathway modulation", "Well-documented anti-inflammatory activity in modern research"},
	"antioxidant":       {[]string{"curcumin", "vitamin C", "ellagic acid", "rosmarinic acid"}, "Free radical scavenging, antioxidant enzyme induction", "Strong antioxidant activity demonstrated in vitro and in vivo"},
	"antimicrobial":     {[]string{"allicin", "eugenol", "azadirachtin", "piperine"}, "Cell membrane disruption, enzyme inhibition", "Broad-spectrum antimicrobial activity against bacteria and fungi"},
	"adaptogenic":       {[]string{"withanolides", "bacosides", "ginsenosides"}, "HPA axis modulation, stress response regulation", "Stress-reducing and performance-enhancing effects"},
}

const (
	rasaSignificance    = "Ancient taste classification correlates with modern phytochemical understanding"
	qualitySignificance = "Ancient quality classification correlates with modern pharmacological understanding"
	actionSignificance  = "Ancient therapeutic descriptions align with modern pharmacological research"
)

// ModernCorrelations walks the static profile of r in rasa, guna, virya and
// therapeutic-action order.  Tags without a table entry are skipped.
func ModernCorrelations(r herb.Record) []ModernCorrelation {
	out := make([]ModernCorrelation, 0)
	for _, t := range r.Rasa {
		t = strings.ToLower(t)
		if e, ok := rasaClasses[t]; ok {
			out = append(out, ModernCorrelation{
				Kind:                string(herb.KindRasa),
				AncientProperty:     t + " rasa",
				ModernUnderstanding: e.description,
				CompoundClasses:     copyOf(e.classes),
				Examples:            copyOf(e.examples),
				Significance:        rasaSignificance,
			})
		}
	}
	quality := func(kind herb.PropertyKind, t string) {
		t = strings.ToLower(t)
		if e, ok := qualityClasses[t]; ok {
			out = append(out, ModernCorrelation{
				Kind:                string(kind),
				AncientProperty:     t + " " + string(kind),
				ModernUnderstanding: e.description,
				CompoundClasses:     copyOf(e.classes),
				Mechanism:           e.effect,
				Significance:        qualitySignificance,
			})
		}
	}
	for _, t := range r.Guna {
		quality(herb.KindGuna, t)
	}
	if r.Virya != "" {
		quality(herb.KindVirya, r.Virya)
	}
	for _, a := range r.TherapeuticActions {
		a = strings.ToLower(a)
		if e, ok := actionClasses[a]; ok {
			out = append(out, ModernCorrelation{
				Kind:            string(herb.KindTherapeuticActions),
				AncientProperty: a,
				CompoundClasses: copyOf(e.compounds),
				Mechanism:       e.mechanism,
				Evidence:        e.evidence,
				Significance:    actionSignificance,
			})
		}
	}
	return out
}

func copyOf(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	return append([]string(nil), in...)
}

//Personal.AI order the ending
