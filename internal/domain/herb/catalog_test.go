package herb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_Tables(t *testing.T) {
	c := NewCatalog()

	assert.Len(t, c.Names(), 20)
	assert.Len(t, c.Lexicon(), 43)
	assert.Equal(t, "Turmeric", c.Names()[0])
	assert.Equal(t, "Black Pepper", c.Lexicon()[1].Name)
}

func TestLookup_NormalisesCase(t *testing.T) {
	c := NewCatalog()

	for _, name := range []string{"turmeric", "TURMERIC", "  Turmeric "} {
		r, ok := c.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, "Turmeric", r.Name)
		assert.Equal(t, []string{"bitter", "pungent", "astringent"}, r.Rasa)
		assert.Equal(t, "hot", r.Virya)
		assert.Equal(t, "pacifies kapha and pitta", r.Dosha)
		assert.Equal(t, []string{"curcumin", "curcuma longa", "haldi"}, r.Synonyms)
	}

	r, ok := c.Lookup("black pepper")
	require.True(t, ok)
	assert.Equal(t, "Black Pepper", r.Name)
}

func TestLookup_UnknownNameIsNotFound(t *testing.T) {
	c := NewCatalog()

	for _, name := range []string{"Mandrake", "Turm", "turmeric root", "", "Onion"} {
		r, ok := c.Lookup(name)
		assert.False(t, ok, name)
		assert.Equal(t, Record{}, r, name)
	}
}

func TestLookup_ReturnsCopies(t *testing.T) {
	c := NewCatalog()

	r, _ := c.Lookup("Turmeric")
	r.Rasa[0] = "mutated"
	r.ModernCompounds = append(r.ModernCompounds, "extra")

	again, _ := c.Lookup("Turmeric")
	assert.Equal(t, "bitter", again.Rasa[0])
	assert.Len(t, again.ModernCompounds, 3)

	names := c.Names()
	names[0] = "mutated"
	assert.Equal(t, "Turmeric", c.Names()[0])
}

func TestSearchByProperty(t *testing.T) {
	c := NewCatalog()

	hot := c.SearchByProperty(KindVirya, "hot")
	assert.Contains(t, hot, "Turmeric")
	assert.Contains(t, hot, "Black Pepper")
	assert.NotContains(t, hot, "Neem")

	assert.Equal(t, []string{"Black Pepper", "Ginger"}, c.SearchByProperty(KindRasa, "PUNGENT")[1:3])
	assert.Equal(t, []string{"Turmeric"}, c.SearchByProperty(KindTherapeuticActions, "wound healing"))
	assert.Equal(t, []string{"Black Pepper"}, c.SearchByProperty(KindModernCompounds, "piperine"))
	assert.Empty(t, c.SearchByProperty(KindGuna, "nonexistent"))
	assert.Empty(t, c.SearchByProperty(KindGuna, ""))
	assert.Empty(t, c.SearchByProperty(PropertyKind("colour"), "red"))
	assert.NotNil(t, c.SearchByProperty(PropertyKind("colour"), "red"))
}

func TestByDosha(t *testing.T) {
	c := NewCatalog()

	pitta := c.ByDosha("Pitta")
	assert.Equal(t, []string{"Turmeric", "Neem", "Brahmi", "Shankhpushpi", "Coriander", "Fennel", "Licorice"}, pitta)
	assert.Equal(t, []string{"Amla", "Guduchi", "Triphala"}, c.ByDosha("all three"))
	assert.Empty(t, c.ByDosha(""))
}

func TestSynergistic(t *testing.T) {
	c := NewCatalog()

	assert.Equal(t, []string{"Black Pepper", "Ginger", "Ashwagandha", "Tulsi", "Neem"}, c.Synergistic("turmeric", 0))
	assert.Equal(t, []string{"Turmeric", "Neem"}, c.Synergistic("Coriander", 2))

	// "all three doshas" shares with everything.
	amla := c.Synergistic("Amla", 3)
	assert.Equal(t, []string{"Turmeric", "Black Pepper", "Ginger"}, amla)

	assert.NotContains(t, c.Synergistic("Ginger", 50), "Ginger")
	assert.Empty(t, c.Synergistic("Mandrake", 5))
}

func TestCompoundNames(t *testing.T) {
	c := NewCatalog()

	assert.Equal(t, []string{"curcumin", "demethoxycurcumin", "bisdemethoxycurcumin"}, c.CompoundNames("TURMERIC"))
	assert.Equal(t, []string{"piperine", "piperidine", "chavicine"}, c.CompoundNames("black pepper"))
	assert.Equal(t, []string{"scopoletin", "scopolin", "convolvulin"}, c.CompoundNames("Shankhpushpi"))
	assert.Empty(t, c.CompoundNames("Onion"))
	assert.NotNil(t, c.CompoundNames("Onion"))
}

func TestNewCatalogFrom_CustomTables(t *testing.T) {
	c := NewCatalogFrom(
		[]Record{{Name: "holy basil", Dosha: "pacifies vata"}, {Name: "Moringa", Dosha: "pacifies vata"}},
		[]Entry{{Name: "holy basil", Synonyms: []string{"TULSI"}}},
	)

	r, ok := c.Lookup("Holy Basil")
	require.True(t, ok)
	assert.Equal(t, []string{"tulsi"}, r.Synonyms)
	assert.Equal(t, []string{"Holy Basil", "Moringa"}, c.Names())
	assert.Equal(t, []string{"Moringa"}, c.Synergistic("holy basil", 0))
}

func TestEntry_Terms(t *testing.T) {
	e := Entry{Name: "Black Pepper", Synonyms: []string{"piper nigrum"}}
	assert.Equal(t, []string{"black pepper", "piper nigrum"}, e.Terms())
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "Black Pepper", NormalizeName("black pepper"))
	assert.Equal(t, "Aloe Vera", NormalizeName("ALOE VERA"))
	assert.Equal(t, "Turmeric", NormalizeName(" turmeric "))
}

func TestSanskrit(t *testing.T) {
	assert.Equal(t, RasaTikta, Sanskrit(KindRasa, "Bitter"))
	assert.Equal(t, RasaTikta, Sanskrit(KindRasa, "tikta"))
	assert.Equal(t, GunaTiksna, Sanskrit(KindGuna, "sharp"))
	assert.Equal(t, "smooth", Sanskrit(KindGuna, "smooth"))
	assert.Equal(t, ViryaUshna, Sanskrit(KindVirya, "hot"))
	assert.Equal(t, ViryaShita, Sanskrit(KindVirya, "cold"))
	assert.Equal(t, "pungent", Sanskrit(KindVipaka, "pungent"))
}

func TestEnglishTags(t *testing.T) {
	assert.Equal(t, []string{"cold", "cooling", "heating", "hot"}, EnglishTags(KindVirya))
	assert.Len(t, EnglishTags(KindRasa), 6)
	assert.Empty(t, EnglishTags(KindPrabhava))
}

func TestRecord_Tags(t *testing.T) {
	r, ok := NewCatalog().Lookup("Turmeric")
	require.True(t, ok)

	tags := r.Tags()
	assert.Equal(t, []string{RasaTikta, RasaKatu, RasaKashaya}, tags.Rasa)
	assert.Equal(t, []string{GunaLaghu, GunaRuksha, GunaTiksna}, tags.Guna)
	assert.Equal(t, []string{ViryaUshna}, tags.Virya)
	assert.Equal(t, []string{"pungent"}, tags.Vipaka)
	assert.False(t, tags.Empty())
	assert.True(t, NewPropertyTags().Empty())
}

func TestParsePropertyKind(t *testing.T) {
	k, ok := ParsePropertyKind(" Rasa ")
	assert.True(t, ok)
	assert.Equal(t, KindRasa, k)

	_, ok = ParsePropertyKind("dosha")
	assert.False(t, ok)
}

//Personal.AI order the ending
