package herb_extractor

import (
	"regexp"

	"github.com/turtacn/AyurChem-Intelligence/internal/domain/herb"
)

// tagPattern pairs a classical tag with the word-bounded expression that
// detects it in English or Sanskrit.
type tagPattern struct {
	tag string
	re  *regexp.Regexp
}

// wordBoundary stands in for \b, which in RE2 only knows ASCII word
// characters.  Any letter, digit or underscore in any script continues a
// word, so "sweetå" and "ábitter" carry no tag.
const wordBoundary = `[^\p{L}\p{N}_]`

func wordPattern(tag, alternatives string) tagPattern {
	expr := `(?i)(?:^|` + wordBoundary + `)(?:` + alternatives + `)(?:` + wordBoundary + `|$)`
	return tagPattern{tag: tag, re: regexp.MustCompile(expr)}
}

var rasaPatterns = []tagPattern{
	wordPattern(herb.RasaMadhura, "sweet|madhura"),
	wordPattern(herb.RasaAmla, "sour|amla"),
	wordPattern(herb.RasaLavana, "salty|lavana"),
	wordPattern(herb.RasaKatu, "pungent|katu"),
	wordPattern(herb.RasaTikta, "bitter|tikta"),
	wordPattern(herb.RasaKashaya, "astringent|kashaya"),
}

var gunaPatterns = []tagPattern{
	wordPattern(herb.GunaGuru, "heavy|guru"),
	wordPattern(herb.GunaLaghu, "light|laghu"),
	wordPattern(herb.GunaSnigdha, "oily|snigdha"),
	wordPattern(herb.GunaRuksha, "dry|ruksha"),
	wordPattern(herb.GunaTiksna, "sharp|tiksna"),
	wordPattern(herb.GunaManda, "dull|manda"),
	wordPattern(herb.GunaSita, "cold|sita"),
	wordPattern(herb.GunaUshna, "hot|ushna"),
}

var viryaPatterns = []tagPattern{
	wordPattern(herb.ViryaUshna, "hot|heating|ushna"),
	wordPattern(herb.ViryaShita, "cold|cooling|shita"),
}

// Preparation and therapeutic keywords are matched by plain containment on
// the lowercased text, so "oil" also fires inside "boil".
var preparationKeywords = []string{
	"decoction", "infusion", "powder", "paste", "oil", "ghee",
	"juice", "extract", "tincture", "tablet", "capsule", "syrup",
	"churna", "kwath", "avaleha", "ghrit", "taila", "bhasma",
	"rasayana", "leha", "gutika", "vati", "modaka",
}

var therapeuticKeywords = []string{
	"anti-inflammatory", "antioxidant", "antimicrobial", "antiviral",
	"antibacterial", "antifungal", "immunomodulatory", "adaptogenic",
	"digestive", "carminative", "expectorant", "bronchodilator",
	"hypoglycemic", "hypolipidemic", "cardioprotective", "hepatoprotective",
	"nephroprotective", "neuroprotective", "analgesic", "antipyretic",
	"anti-cancer", "anti-tumor", "wound healing", "anti-aging",
	"memory enhancement", "cognitive", "stress relief", "anxiety",
	"depression", "sleep", "insomnia", "fatigue", "energy",
	"vitality", "strength", "endurance", "recovery",
}

func matchTags(text string, patterns []tagPattern) []string {
	out := []string{}
	for _, p := range patterns {
		if p.re.MatchString(text) {
			out = append(out, p.tag)
		}
	}
	return out
}

//Personal.AI order the ending
