package hypothesis

import "github.com/turtacn/AyurChem-Intelligence/internal/domain/herb"

type mapping struct {
	bioactivity []string
	mechanism   string
}

// tasteMapping also serves potency: ushna is keyed here.
var tasteMapping = map[string]mapping{
	herb.RasaTikta:   {[]string{"anti-inflammatory", "antimicrobial"}, "Bitter compounds often contain alkaloids and polyphenols"},
	herb.ViryaUshna:  {[]string{"metabolism-enhancing", "circulation-improving"}, "Heating herbs typically contain thermogenic compounds"},
	herb.RasaKashaya: {[]string{"antioxidant", "wound-healing"}, "Astringent taste indicates presence of tannins"},
	herb.RasaMadhura: {[]string{"nutritive", "tonic"}, "Sweet compounds often have nutritive and tonic properties"},
	herb.RasaKatu:    {[]string{"digestive", "antimicrobial"}, "Pungent compounds often have digestive and antimicrobial properties"},
	herb.RasaAmla:    {[]string{"antioxidant", "digestive"}, "Sour compounds often contain organic acids with antioxidant properties"},
}

var qualityMapping = map[string]mapping{
	herb.GunaGuru:    {[]string{"nourishing", "grounding"}, "Heavy compounds often have nutritive and grounding effects"},
	herb.GunaLaghu:   {[]string{"digestive", "metabolic"}, "Light compounds often enhance digestion and metabolism"},
	herb.GunaSnigdha: {[]string{"lubricating", "nourishing"}, "Oily compounds often provide lubrication and nourishment"},
	herb.GunaRuksha:  {[]string{"astringent", "absorbing"}, "Dry compounds often have astringent and absorbing properties"},
	herb.GunaTiksna:  {[]string{"penetrating", "stimulating"}, "Sharp compounds often have penetrating and stimulating effects"},
	herb.GunaManda:   {[]string{"calming", "soothing"}, "Dull compounds often have calming and soothing effects"},
}

// synergy is one curated pair.  herbs feed the herb-pair rule, compounds the
// two compound rules.
type synergy struct {
	herbs                [2]string
	compounds            [2]string
	mechanism            string
	evidence             string
	clinicalSignificance string
	interaction          string
	interactionEffect    string
}

var knownSynergies = []synergy{
	{
		herbs:                [2]string{"turmeric", "black pepper"},
		compounds:            [2]string{"curcumin", "piperine"},
		mechanism:            "Piperine enhances curcumin bioavailability by inhibiting glucuronidation",
		evidence:             "Piperine increases curcumin absorption by up to 2000%",
		clinicalSignificance: "Enhanced anti-inflammatory and antioxidant effects",
		interaction:          "Bioavailability enhancement",
		interactionEffect:    "Piperine inhibits curcumin metabolism, increasing absorption",
	},
	{
		herbs:                [2]string{"ginger", "garlic"},
		compounds:            [2]string{"gingerol", "allicin"},
		mechanism:            "Combined anti-inflammatory and cardiovascular protective effects",
		evidence:             "Synergistic reduction in inflammatory markers",
		clinicalSignificance: "Enhanced cardiovascular and immune system support",
		interaction:          "Anti-inflammatory synergy",
		interactionEffect:    "Combined COX-2 inhibition and antioxidant activity",
	},
	{
		herbs:                [2]string{"ashwagandha", "brahmi"},
		compounds:            [2]string{"withanolides", "bacosides"},
		mechanism:            "Complementary adaptogenic and neuroprotective effects",
		evidence:             "Enhanced stress reduction and cognitive function",
		clinicalSignificance: "Improved mental clarity and stress resilience",
		interaction:          "Neuroprotective synergy",
		interactionEffect:    "Complementary stress reduction and cognitive enhancement",
	},
}

// doshaImplications is checked in order; the first keyword found wins.
var doshaImplications = []struct {
	keyword     string
	implication string
}{
	{"vata", "Calming, grounding, stress reduction, nervous system support"},
	{"pitta", "Cooling, anti-inflammatory, digestive support, liver health"},
	{"kapha", "Stimulating, expectorant, metabolic enhancement, weight management"},
	{"all three doshas", "Balancing, rejuvenative, comprehensive health support"},
}

const defaultDoshaImplication = "General health support and balance"

// rgvPatterns are matched against the English static profile.
var rgvPatterns = []struct {
	name         string
	tags         []string
	significance string
	potential    string
}{
	{"pungent-hot-sharp", []string{"pungent", "hot", "sharp"}, "Strong digestive and metabolic stimulation", "Digestive disorders, respiratory conditions, circulation"},
	{"bitter-cold-light", []string{"bitter", "cold", "light"}, "Cooling and detoxifying properties", "Inflammation, fever, detoxification"},
	{"sweet-heavy-cold", []string{"sweet", "heavy", "cold"}, "Nourishing and cooling properties", "Debility, inflammation, nourishment"},
}

//Personal.AI order the ending
