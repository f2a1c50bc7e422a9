package herb

import (
	"sort"
	"strings"
)

// Classical tag keys.  The extractor reports these; the hypothesis tables are
// keyed by them.
const (
	RasaMadhura = "madhura"
	RasaAmla    = "amla"
	RasaLavana  = "lavana"
	RasaKatu    = "katu"
	RasaTikta   = "tikta"
	RasaKashaya = "kashaya"

	GunaGuru    = "guru"
	GunaLaghu   = "laghu"
	GunaSnigdha = "snigdha"
	GunaRuksha  = "ruksha"
	GunaTiksna  = "tiksna"
	GunaManda   = "manda"
	GunaSita    = "sita"
	GunaUshna   = "ushna"

	ViryaUshna = "ushna"
	ViryaShita = "shita"
)

// PropertyKind names a searchable field of Record.
type PropertyKind string

const (
	KindRasa               PropertyKind = "rasa"
	KindGuna               PropertyKind = "guna"
	KindVipaka             PropertyKind = "vipaka"
	KindVirya              PropertyKind = "virya"
	KindPrabhava           PropertyKind = "prabhava"
	KindTherapeuticActions PropertyKind = "therapeutic_actions"
	KindModernCompounds    PropertyKind = "modern_compounds"
)

// ParsePropertyKind maps a request parameter to a PropertyKind.
func ParsePropertyKind(s string) (PropertyKind, bool) {
	switch k := PropertyKind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindRasa, KindGuna, KindVipaka, KindVirya, KindPrabhava, KindTherapeuticActions, KindModernCompounds:
		return k, true
	}
	return "", false
}

var englishRasa = map[string]string{
	"sweet":      RasaMadhura,
	"sour":       RasaAmla,
	"salty":      RasaLavana,
	"pungent":    RasaKatu,
	"bitter":     RasaTikta,
	"astringent": RasaKashaya,
}

var englishGuna = map[string]string{
	"heavy": GunaGuru,
	"light": GunaLaghu,
	"oily":  GunaSnigdha,
	"dry":   GunaRuksha,
	"sharp": GunaTiksna,
	"dull":  GunaManda,
	"cold":  GunaSita,
	"hot":   GunaUshna,
}

var englishVirya = map[string]string{
	"hot":     ViryaUshna,
	"heating": ViryaUshna,
	"cold":    ViryaShita,
	"cooling": ViryaShita,
}

// Sanskrit returns the classical key for tag within kind.  Tags that are
// already classical, and tags with no classical counterpart, are returned
// lowercased and unchanged.
func Sanskrit(kind PropertyKind, tag string) string {
	t := strings.ToLower(strings.TrimSpace(tag))
	var table map[string]string
	switch kind {
	case KindRasa:
		table = englishRasa
	case KindGuna:
		table = englishGuna
	case KindVirya:
		table = englishVirya
	}
	if s, ok := table[t]; ok {
		return s
	}
	return t
}

// EnglishTags lists the English tags with a classical counterpart for kind,
// sorted.
func EnglishTags(kind PropertyKind) []string {
	var table map[string]string
	switch kind {
	case KindRasa:
		table = englishRasa
	case KindGuna:
		table = englishGuna
	case KindVirya:
		table = englishVirya
	}
	out := make([]string, 0, len(table))
	for k := range table {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Tags returns the static record's rasa, guna and virya as a PropertyTags in
// classical form.  It lets callers feed a record's own profile through the
// same rules as text-derived tags.
func (r Record) Tags() PropertyTags {
	tags := NewPropertyTags()
	for _, t := range r.Rasa {
		tags.Rasa = append(tags.Rasa, Sanskrit(KindRasa, t))
	}
	for _, t := range r.Guna {
		tags.Guna = append(tags.Guna, Sanskrit(KindGuna, t))
	}
	if r.Virya != "" {
		tags.Virya = append(tags.Virya, Sanskrit(KindVirya, r.Virya))
	}
	if r.Vipaka != "" {
		tags.Vipaka = append(tags.Vipaka, r.Vipaka)
	}
	tags.Prabhava = append(tags.Prabhava, r.Prabhava...)
	return tags
}

//Personal.AI order the ending
