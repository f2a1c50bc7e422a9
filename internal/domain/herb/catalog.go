package herb

import (
	"strings"
)

// DefaultSynergyLimit caps Synergistic when the caller passes limit <= 0.
const DefaultSynergyLimit = 5

var doshaWords = []string{"vata", "pitta", "kapha"}

// KnowledgeBase is the read-only contract the application layer depends on.
type KnowledgeBase interface {
	Lookup(name string) (Record, bool)
	Names() []string
	Lexicon() []Entry
	SearchByProperty(kind PropertyKind, value string) []string
	ByDosha(dosha string) []string
	Synergistic(name string, limit int) []string
	CompoundNames(herb string) []string
}

// Catalog is the in-memory KnowledgeBase.  It is immutable after
// construction and safe for concurrent use.
type Catalog struct {
	records map[string]Record
	order   []string
	lexicon []Entry
}

var _ KnowledgeBase = (*Catalog)(nil)

// NewCatalog builds the catalog from the built-in tables.
func NewCatalog() *Catalog {
	return NewCatalogFrom(described, lexicon)
}

// NewCatalogFrom builds a catalog from caller-supplied tables.  Record names
// are normalised to title case and each record picks up the synonyms of its
// lexicon entry.  Later duplicates replace earlier ones.
func NewCatalogFrom(records []Record, entries []Entry) *Catalog {
	c := &Catalog{
		records: make(map[string]Record, len(records)),
		lexicon: make([]Entry, 0, len(entries)),
	}
	synonyms := make(map[string][]string, len(entries))
	for _, e := range entries {
		e.Name = NormalizeName(e.Name)
		e.Synonyms = lowerAll(e.Synonyms)
		c.lexicon = append(c.lexicon, e)
		synonyms[e.Name] = e.Synonyms
	}
	for _, r := range records {
		r = r.Clone()
		r.Name = NormalizeName(r.Name)
		if len(r.Synonyms) == 0 {
			r.Synonyms = cloneStrings(synonyms[r.Name])
		}
		if _, seen := c.records[r.Name]; !seen {
			c.order = append(c.order, r.Name)
		}
		c.records[r.Name] = r
	}
	return c
}

// Lookup returns the record for name after title-case normalisation.  There
// is no partial or fuzzy matching: an unknown name yields false.
func (c *Catalog) Lookup(name string) (Record, bool) {
	r, ok := c.records[NormalizeName(name)]
	if !ok {
		return Record{}, false
	}
	return r.Clone(), true
}

// Names lists the described herbs in catalog order.
func (c *Catalog) Names() []string {
	return cloneStrings(c.order)
}

// Lexicon returns a copy of the matching lexicon in match order.
func (c *Catalog) Lexicon() []Entry {
	out := make([]Entry, len(c.lexicon))
	for i, e := range c.lexicon {
		out[i] = Entry{Name: e.Name, Synonyms: cloneStrings(e.Synonyms)}
	}
	return out
}

// SearchByProperty returns the herbs whose kind field holds value exactly
// (case-insensitive).
func (c *Catalog) SearchByProperty(kind PropertyKind, value string) []string {
	value = strings.ToLower(strings.TrimSpace(value))
	out := []string{}
	if value == "" {
		return out
	}
	for _, name := range c.order {
		if containsFold(fieldValues(c.records[name], kind), value) {
			out = append(out, name)
		}
	}
	return out
}

// ByDosha returns the herbs whose dosha effect mentions dosha.
func (c *Catalog) ByDosha(dosha string) []string {
	dosha = strings.ToLower(strings.TrimSpace(dosha))
	out := []string{}
	if dosha == "" {
		return out
	}
	for _, name := range c.order {
		if strings.Contains(strings.ToLower(c.records[name].Dosha), dosha) {
			out = append(out, name)
		}
	}
	return out
}

// Synergistic returns up to limit herbs that pacify at least one dosha in
// common with name, in catalog order.  "All three doshas" counts as every
// dosha.
func (c *Catalog) Synergistic(name string, limit int) []string {
	if limit <= 0 {
		limit = DefaultSynergyLimit
	}
	out := []string{}
	base, ok := c.records[NormalizeName(name)]
	if !ok {
		return out
	}
	want := pacified(base.Dosha)
	if len(want) == 0 {
		return out
	}
	for _, other := range c.order {
		if other == base.Name {
			continue
		}
		for d := range pacified(c.records[other].Dosha) {
			if want[d] {
				out = append(out, other)
				break
			}
		}
		if len(out) == limit {
			break
		}
	}
	return out
}

// CompoundNames returns the modern compounds mapped to herb.  The key is
// case-insensitive; an undescribed herb yields an empty list.
func (c *Catalog) CompoundNames(herb string) []string {
	r, ok := c.records[NormalizeName(herb)]
	if !ok {
		return []string{}
	}
	return cloneStrings(r.ModernCompounds)
}

func pacified(dosha string) map[string]bool {
	d := strings.ToLower(dosha)
	out := map[string]bool{}
	if strings.Contains(d, "all three") {
		for _, w := range doshaWords {
			out[w] = true
		}
		return out
	}
	for _, w := range doshaWords {
		if strings.Contains(d, w) {
			out[w] = true
		}
	}
	return out
}

func fieldValues(r Record, kind PropertyKind) []string {
	switch kind {
	case KindRasa:
		return r.Rasa
	case KindGuna:
		return r.Guna
	case KindVipaka:
		return []string{r.Vipaka}
	case KindVirya:
		return []string{r.Virya}
	case KindPrabhava:
		return r.Prabhava
	case KindTherapeuticActions:
		return r.TherapeuticActions
	case KindModernCompounds:
		return r.ModernCompounds
	}
	return nil
}

func containsFold(list []string, v string) bool {
	for _, s := range list {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

//Personal.AI order the ending
