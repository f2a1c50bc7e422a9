package client

// Wire types mirror the JSON the API server emits.

type Mention struct {
	Herb   string `json:"herb"`
	Text   string `json:"text"`
	Offset int    `json:"offset"`
}

type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// PropertyTags are classical tags grouped by property kind.
type PropertyTags struct {
	Rasa     []string `json:"rasa"`
	Guna     []string `json:"guna"`
	Vipaka   []string `json:"vipaka"`
	Virya    []string `json:"virya"`
	Prabhava []string `json:"prabhava"`
}

// HerbRecord is the static profile of one herb.
type HerbRecord struct {
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

// Compound is a resolved compound.  Pointer fields are null when PubChem
// did not answer and no fallback exists; Error then explains why.
type Compound struct {
	Name             string   `json:"name"`
	PubChemID        *int64   `json:"pubchem_id"`
	MolecularFormula *string  `json:"molecular_formula"`
	MolecularWeight  *float64 `json:"molecular_weight"`
	IUPACName        string   `json:"iupac_name,omitempty"`
	CanonicalSMILES  string   `json:"canonical_smiles,omitempty"`
	Source           string   `json:"source"`
	Error            string   `json:"error,omitempty"`
}

// Degraded reports whether the record carries no identifier.
func (c Compound) Degraded() bool { return c.PubChemID == nil }

type Hypothesis struct {
	Type                 string   `json:"type"`
	Title                string   `json:"title,omitempty"`
	Confidence           string   `json:"confidence"`
	Herb                 string   `json:"herb,omitempty"`
	Herbs                []string `json:"herbs,omitempty"`
	AyurvedicProperty    string   `json:"ayurvedic_property,omitempty"`
	PredictedBioactivity []string `json:"predicted_bioactivity,omitempty"`
	CompoundsFound       *int     `json:"compounds_found,omitempty"`
	Compounds            []string `json:"compounds,omitempty"`
	Message              string   `json:"message,omitempty"`
	Mechanism            string   `json:"mechanism,omitempty"`
	Evidence             string   `json:"evidence,omitempty"`
	ClinicalSignificance string   `json:"clinical_significance,omitempty"`
	Effect               string   `json:"effect,omitempty"`
	DoshaEffect          string   `json:"dosha_effect,omitempty"`
	TherapeuticPotential string   `json:"therapeutic_potential,omitempty"`
	Pattern              string   `json:"pattern,omitempty"`
	Significance         string   `json:"significance,omitempty"`
}

// AnalysisResult is the reply of POST /api/analyze and GET /demo.
type AnalysisResult struct {
	ID             string                `json:"id,omitempty"`
	Text           string                `json:"text,omitempty"`
	Herbs          []string              `json:"herbs"`
	Mentions       []Mention             `json:"mentions"`
	Properties     PropertyTags          `json:"properties"`
	HerbProperties map[string]HerbRecord `json:"herb_properties"`
	Compounds      map[string][]Compound `json:"compounds"`
	Hypotheses     []Hypothesis          `json:"hypotheses"`
	Preparations   []string              `json:"preparations"`
	Therapeutic    []string              `json:"therapeutic_properties"`
	Entities       []Entity              `json:"entities"`
}

type ModernCorrelation struct {
	Kind                string   `json:"kind"`
	AncientProperty     string   `json:"ancient_property"`
	ModernUnderstanding string   `json:"modern_understanding,omitempty"`
	CompoundClasses     []string `json:"compound_classes,omitempty"`
	Examples            []string `json:"examples,omitempty"`
	Mechanism           string   `json:"mechanism,omitempty"`
}

// HerbDetail is the reply of GET /api/herbs/{herb}.
type HerbDetail struct {
	HerbRecord
	ModernCorrelations []ModernCorrelation `json:"modern_correlations"`
	Synergistic        []string            `json:"synergistic_herbs"`
}

type GraphNode struct {
	ID         string                 `json:"id"`
	Label      string                 `json:"label"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

type GraphRelationship struct {
	Type   string `json:"type"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type Subgraph struct {
	Nodes         []GraphNode         `json:"nodes"`
	Relationships []GraphRelationship `json:"relationships"`
}

type CompoundDetails struct {
	Compound
	IsomericSMILES string   `json:"isomeric_smiles,omitempty"`
	InChI          string   `json:"inchi,omitempty"`
	InChIKey       string   `json:"inchi_key,omitempty"`
	ExactMass      *float64 `json:"exact_mass,omitempty"`
	TPSA           *float64 `json:"tpsa,omitempty"`
	HeavyAtomCount *int     `json:"heavy_atom_count,omitempty"`
	FormalCharge   *int     `json:"formal_charge,omitempty"`
	Complexity     *float64 `json:"complexity,omitempty"`
}

type Bioactivity struct {
	Name            string   `json:"name"`
	MolecularWeight *float64 `json:"molecular_weight"`
	XLogP           *float64 `json:"xlogp"`
	Available       bool     `json:"bioactivity_available"`
}

// CompoundProfile is the reply of GET /api/compounds/{name}.
type CompoundProfile struct {
	Details     CompoundDetails `json:"details"`
	Synonyms    []string        `json:"synonyms"`
	Bioactivity Bioactivity     `json:"bioactivity"`
}

type Health struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

//Personal.AI order the ending
