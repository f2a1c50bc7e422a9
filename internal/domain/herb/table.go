package herb

// lexicon lists every herb the extractor recognises together with the
// lowercase spellings that identify it in free text.  Order matters: it is
// the order in which herbs are reported.
var lexicon = []Entry{
	{Name: "Turmeric", Synonyms: []string{"curcumin", "curcuma longa", "haldi"}},
	{Name: "Black Pepper", Synonyms: []string{"piper nigrum", "piperine", "kali mirch"}},
	{Name: "Ginger", Synonyms: []string{"zingiber officinale", "adrak", "shunthi"}},
	{Name: "Ashwagandha", Synonyms: []string{"withania somnifera", "winter cherry"}},
	{Name: "Tulsi", Synonyms: []string{"ocimum sanctum", "holy basil", "basil"}},
	{Name: "Neem", Synonyms: []string{"azadirachta indica", "margosa"}},
	{Name: "Amla", Synonyms: []string{"emblica officinalis", "indian gooseberry"}},
	{Name: "Brahmi", Synonyms: []string{"bacopa monnieri", "water hyssop"}},
	{Name: "Shankhpushpi", Synonyms: []string{"convolvulus pluricaulis"}},
	{Name: "Guduchi", Synonyms: []string{"tinospora cordifolia", "giloy"}},
	{Name: "Triphala", Synonyms: []string{"three fruits", "amla", "haritaki", "bibhitaki"}},
	{Name: "Haritaki", Synonyms: []string{"terminalia chebula"}},
	{Name: "Bibhitaki", Synonyms: []string{"terminalia bellirica"}},
	{Name: "Cardamom", Synonyms: []string{"elaichi", "ela"}},
	{Name: "Cinnamon", Synonyms: []string{"dalchini", "cinnamomum"}},
	{Name: "Cumin", Synonyms: []string{"jeera", "cumin seed"}},
	{Name: "Coriander", Synonyms: []string{"dhaniya", "cilantro"}},
	{Name: "Fennel", Synonyms: []string{"saunf", "fennel seed"}},
	{Name: "Clove", Synonyms: []string{"laung", "syzygium aromaticum"}},
	{Name: "Garlic", Synonyms: []string{"lahsun", "allium sativum"}},
	{Name: "Onion", Synonyms: []string{"pyaz", "allium cepa"}},
	{Name: "Mustard", Synonyms: []string{"sarson", "brassica"}},
	{Name: "Sesame", Synonyms: []string{"til", "sesamum indicum"}},
	{Name: "Coconut", Synonyms: []string{"nariyal", "cocos nucifera"}},
	{Name: "Mint", Synonyms: []string{"pudina", "mentha"}},
	{Name: "Lemongrass", Synonyms: []string{"lemon grass", "cymbopogon"}},
	{Name: "Sandalwood", Synonyms: []string{"chandan", "santalum"}},
	{Name: "Saffron", Synonyms: []string{"kesar", "crocus sativus"}},
	{Name: "Licorice", Synonyms: []string{"mulethi", "glycyrrhiza glabra"}},
	{Name: "Aloe Vera", Synonyms: []string{"aloe", "kumari"}},
	{Name: "Castor Oil", Synonyms: []string{"arandi", "ricinus communis"}},
	{Name: "Fenugreek", Synonyms: []string{"methi", "trigonella foenum-graecum"}},
	{Name: "Jaggery", Synonyms: []string{"gur", "unrefined sugar"}},
	{Name: "Honey", Synonyms: []string{"shahad", "madhu"}},
	{Name: "Ghee", Synonyms: []string{"clarified butter", "ghrit"}},
	{Name: "Milk", Synonyms: []string{"dudh", "ksheer"}},
	{Name: "Yogurt", Synonyms: []string{"dahi", "curd"}},
	{Name: "Rice", Synonyms: []string{"chawal", "oryza sativa"}},
	{Name: "Wheat", Synonyms: []string{"gehun", "triticum"}},
	{Name: "Barley", Synonyms: []string{"jau", "hordeum vulgare"}},
	{Name: "Mung Bean", Synonyms: []string{"moong", "vigna radiata"}},
	{Name: "Chickpea", Synonyms: []string{"chana", "cicer arietinum"}},
	{Name: "Lentil", Synonyms: []string{"dal", "lens culinaris"}},
}

// described holds the herbs that carry a full traditional profile.
var described = []Record{
	{
		Name:               "Turmeric",
		Rasa:               []string{"bitter", "pungent", "astringent"},
		Guna:               []string{"light", "dry", "sharp"},
		Vipaka:             "pungent",
		Virya:              "hot",
		Prabhava:           []string{"anti-inflammatory", "antioxidant", "hepatoprotective"},
		Dosha:              "pacifies kapha and pitta",
		TherapeuticActions: []string{"anti-inflammatory", "antioxidant", "hepatoprotective", "wound healing"},
		ModernCompounds:    []string{"curcumin", "demethoxycurcumin", "bisdemethoxycurcumin"},
	},
	{
		Name:               "Black Pepper",
		Rasa:               []string{"pungent"},
		Guna:               []string{"light", "dry", "sharp"},
		Vipaka:             "pungent",
		Virya:              "hot",
		Prabhava:           []string{"bioavailability enhancer", "digestive stimulant"},
		Dosha:              "pacifies kapha and vata",
		TherapeuticActions: []string{"digestive", "carminative", "expectorant", "bioavailability enhancer"},
		ModernCompounds:    []string{"piperine", "piperidine", "chavicine"},
	},
	{
		Name:               "Ginger",
		Rasa:               []string{"pungent"},
		Guna:               []string{"light", "dry", "sharp"},
		Vipaka:             "sweet",
		Virya:              "hot",
		Prabhava:           []string{"digestive stimulant", "anti-nausea"},
		Dosha:              "pacifies kapha and vata",
		TherapeuticActions: []string{"digestive", "carminative", "anti-nausea", "anti-inflammatory"},
		ModernCompounds:    []string{"gingerol", "shogaol", "paradol", "zingiberene"},
	},
	{
		Name:               "Ashwagandha",
		Rasa:               []string{"bitter", "astringent"},
		Guna:               []string{"heavy", "oily"},
		Vipaka:             "sweet",
		Virya:              "hot",
		Prabhava:           []string{"adaptogenic", "rejuvenative"},
		Dosha:              "pacifies vata and kapha",
		TherapeuticActions: []string{"adaptogenic", "anti-stress", "immunomodulatory", "neuroprotective"},
		ModernCompounds:    []string{"withanolides", "withaferin A", "withanoside"},
	},
	{
		Name:               "Tulsi",
		Rasa:               []string{"bitter", "pungent"},
		Guna:               []string{"light", "dry", "sharp"},
		Vipaka:             "pungent",
		Virya:              "hot",
		Prabhava:           []string{"immunomodulatory", "antimicrobial"},
		Dosha:              "pacifies kapha and vata",
		TherapeuticActions: []string{"immunomodulatory", "antimicrobial", "antioxidant", "adaptogenic"},
		ModernCompounds:    []string{"eugenol", "ursolic acid", "rosmarinic acid", "caryophyllene"},
	},
	{
		Name:               "Neem",
		Rasa:               []string{"bitter"},
		Guna:               []string{"light", "dry", "sharp"},
		Vipaka:             "pungent",
		Virya:              "cold",
		Prabhava:           []string{"antimicrobial", "blood purifier"},
		Dosha:              "pacifies pitta and kapha",
		TherapeuticActions: []string{"antimicrobial", "antifungal", "blood purifier", "anti-inflammatory"},
		ModernCompounds:    []string{"azadirachtin", "nimbin", "nimbidin", "quercetin"},
	},
	{
		Name:               "Amla",
		Rasa:               []string{"sour", "bitter", "astringent", "sweet", "pungent"},
		Guna:               []string{"heavy", "dry"},
		Vipaka:             "sweet",
		Virya:              "cold",
		Prabhava:           []string{"rejuvenative", "antioxidant"},
		Dosha:              "pacifies all three doshas",
		TherapeuticActions: []string{"antioxidant", "rejuvenative", "immunomodulatory", "hepatoprotective"},
		ModernCompounds:    []string{"vitamin C", "ellagic acid", "gallic acid", "emblicanin"},
	},
	{
		Name:               "Brahmi",
		Rasa:               []string{"bitter"},
		Guna:               []string{"light", "dry"},
		Vipaka:             "sweet",
		Virya:              "cold",
		Prabhava:           []string{"memory enhancer", "nervine tonic"},
		Dosha:              "pacifies pitta and kapha",
		TherapeuticActions: []string{"memory enhancement", "neuroprotective", "anxiolytic", "adaptogenic"},
		ModernCompounds:    []string{"bacosides", "bacopaside", "bacosaponin"},
	},
	{
		Name:               "Shankhpushpi",
		Rasa:               []string{"bitter", "astringent"},
		Guna:               []string{"light", "dry"},
		Vipaka:             "sweet",
		Virya:              "cold",
		Prabhava:           []string{"memory enhancer", "nervine tonic"},
		Dosha:              "pacifies pitta and kapha",
		TherapeuticActions: []string{"memory enhancement", "neuroprotective", "anxiolytic", "cognitive"},
		ModernCompounds:    []string{"scopoletin", "scopolin", "convolvulin"},
	},
	{
		Name:               "Guduchi",
		Rasa:               []string{"bitter", "astringent"},
		Guna:               []string{"heavy", "dry"},
		Vipaka:             "sweet",
		Virya:              "hot",
		Prabhava:           []string{"immunomodulatory", "rejuvenative"},
		Dosha:              "pacifies all three doshas",
		TherapeuticActions: []string{"immunomodulatory", "antipyretic", "hepatoprotective", "antioxidant"},
		ModernCompounds:    []string{"berberine", "tinosporin", "cordioside", "tinosporaside"},
	},
	{
		Name:               "Triphala",
		Rasa:               []string{"sour", "bitter", "astringent", "sweet", "pungent"},
		Guna:               []string{"heavy", "dry"},
		Vipaka:             "sweet",
		Virya:              "cold",
		Prabhava:           []string{"rejuvenative", "digestive"},
		Dosha:              "pacifies all three doshas",
		TherapeuticActions: []string{"rejuvenative", "digestive", "antioxidant", "immunomodulatory"},
		ModernCompounds:    []string{"vitamin C", "ellagic acid", "gallic acid", "chebulinic acid"},
	},
	{
		Name:               "Cardamom",
		Rasa:               []string{"pungent", "sweet"},
		Guna:               []string{"light", "dry", "sharp"},
		Vipaka:             "sweet",
		Virya:              "cold",
		Prabhava:           []string{"digestive stimulant", "carminative"},
		Dosha:              "pacifies kapha and vata",
		TherapeuticActions: []string{"digestive", "carminative", "expectorant", "antimicrobial"},
		ModernCompounds:    []string{"cineole", "limonene", "terpinolene", "alpha-terpineol"},
	},
	{
		Name:               "Cinnamon",
		Rasa:               []string{"pungent", "sweet", "bitter"},
		Guna:               []string{"heavy", "dry", "sharp"},
		Vipaka:             "sweet",
		Virya:              "hot",
		Prabhava:           []string{"digestive stimulant", "warming"},
		Dosha:              "pacifies kapha and vata",
		TherapeuticActions: []string{"digestive", "warming", "antimicrobial", "hypoglycemic"},
		ModernCompounds:    []string{"cinnamaldehyde", "eugenol", "cinnamyl acetate", "coumarin"},
	},
	{
		Name:               "Cumin",
		Rasa:               []string{"pungent", "bitter"},
		Guna:               []string{"light", "dry", "sharp"},
		Vipaka:             "pungent",
		Virya:              "hot",
		Prabhava:           []string{"digestive stimulant", "carminative"},
		Dosha:              "pacifies kapha and vata",
		TherapeuticActions: []string{"digestive", "carminative", "antimicrobial", "antioxidant"},
		ModernCompounds:    []string{"cuminaldehyde", "cuminol", "p-cymene", "terpinene"},
	},
	{
		Name:               "Coriander",
		Rasa:               []string{"sweet", "bitter", "pungent"},
		Guna:               []string{"light", "dry"},
		Vipaka:             "sweet",
		Virya:              "cold",
		Prabhava:           []string{"digestive", "cooling"},
		Dosha:              "pacifies pitta",
		TherapeuticActions: []string{"digestive", "cooling", "antimicrobial", "antioxidant"},
		ModernCompounds:    []string{"linalool", "geraniol", "borneol", "camphor"},
	},
	{
		Name:               "Fennel",
		Rasa:               []string{"sweet", "pungent"},
		Guna:               []string{"light", "dry", "sharp"},
		Vipaka:             "sweet",
		Virya:              "cold",
		Prabhava:           []string{"digestive", "carminative"},
		Dosha:              "pacifies kapha and pitta",
		TherapeuticActions: []string{"digestive", "carminative", "expectorant", "antimicrobial"},
		ModernCompounds:    []string{"anethole", "fenchone", "estragole", "limonene"},
	},
	{
		Name:               "Clove",
		Rasa:               []string{"pungent", "bitter"},
		Guna:               []string{"light", "dry", "sharp"},
		Vipaka:             "pungent",
		Virya:              "hot",
		Prabhava:           []string{"antimicrobial", "analgesic"},
		Dosha:              "pacifies kapha and vata",
		TherapeuticActions: []string{"antimicrobial", "analgesic", "carminative", "expectorant"},
		ModernCompounds:    []string{"eugenol", "eugenyl acetate", "caryophyllene", "alpha-humulene"},
	},
	{
		Name:               "Garlic",
		Rasa:               []string{"pungent"},
		Guna:               []string{"heavy", "oily", "sharp"},
		Vipaka:             "sweet",
		Virya:              "hot",
		Prabhava:           []string{"antimicrobial", "cardioprotective"},
		Dosha:              "pacifies kapha and vata",
		TherapeuticActions: []string{"antimicrobial", "cardioprotective", "hypolipidemic", "immunomodulatory"},
		ModernCompounds:    []string{"allicin", "diallyl disulfide", "ajoene", "s-allyl cysteine"},
	},
	{
		Name:               "Licorice",
		Rasa:               []string{"sweet", "bitter"},
		Guna:               []string{"heavy", "oily", "smooth"},
		Vipaka:             "sweet",
		Virya:              "cold",
		Prabhava:           []string{"demulcent", "expectorant"},
		Dosha:              "pacifies pitta and vata",
		TherapeuticActions: []string{"demulcent", "expectorant", "anti-inflammatory", "hepatoprotective"},
		ModernCompounds:    []string{"glycyrrhizin", "glycyrrhetinic acid", "liquiritin", "glabridin"},
	},
	{
		Name:               "Saffron",
		Rasa:               []string{"bitter", "pungent"},
		Guna:               []string{"light", "dry", "sharp"},
		Vipaka:             "sweet",
		Virya:              "hot",
		Prabhava:           []string{"rejuvenative", "antidepressant"},
		Dosha:              "pacifies kapha and vata",
		TherapeuticActions: []string{"rejuvenative", "antidepressant", "antioxidant", "neuroprotective"},
		ModernCompounds:    []string{"crocin", "crocetin", "safranal", "picrocrocin"},
	},
}

//Personal.AI order the ending
