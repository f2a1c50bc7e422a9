// Package compound provides the chemical record produced for every compound
// name the resolver is asked about.  Records are created per request and are
// never persisted by the domain layer.
package compound

import (
	"strconv"
	"strings"
)

// Source records where a Compound's data came from.
type Source string

const (
	SourcePubChem  Source = "pubchem"
	SourceFallback Source = "fallback"
	SourceCache    Source = "cache"
	SourceError    Source = "error"
)

// NotAvailable is rendered in place of a missing formula or identifier.
const NotAvailable = "N/A"

// ─────────────────────────────────────────────────────────────────────────────
// Compound
// ─────────────────────────────────────────────────────────────────────────────

// Compound is the chemical identity of one named molecule.  Identifier,
// formula and weight are nil when the lookup degraded to an error record.
type Compound struct {
	Name             string   `json:"name"`
	PubChemID        *int64   `json:"pubchem_id"`
	MolecularFormula *string  `json:"molecular_formula"`
	MolecularWeight  *float64 `json:"molecular_weight"`
	IUPACName        string   `json:"iupac_name,omitempty"`
	CanonicalSMILES  string   `json:"canonical_smiles,omitempty"`
	Source           Source   `json:"source"`
	Error            string   `json:"error,omitempty"`
}

// NewErrorRecord returns the degraded record used when neither the remote
// lookup nor the curated table could supply data for name.
func NewErrorRecord(name, reason string) Compound {
	return Compound{Name: name, Source: SourceError, Error: reason}
}

// Degraded reports whether c carries no chemical data.
func (c Compound) Degraded() bool {
	return c.MolecularFormula == nil && c.MolecularWeight == nil && c.PubChemID == nil
}

// Formula returns the molecular formula or NotAvailable.
func (c Compound) Formula() string {
	if c.MolecularFormula == nil || *c.MolecularFormula == "" {
		return NotAvailable
	}
	return *c.MolecularFormula
}

// CID returns the PubChem identifier as text or NotAvailable.
func (c Compound) CID() string {
	if c.PubChemID == nil {
		return NotAvailable
	}
	return strconv.FormatInt(*c.PubChemID, 10)
}

// Matches reports whether term occurs in the lowercased name or formula.
func (c Compound) Matches(term string) bool {
	term = strings.ToLower(term)
	if term == "" {
		return false
	}
	if strings.Contains(strings.ToLower(c.Name), term) {
		return true
	}
	return c.MolecularFormula != nil && strings.Contains(strings.ToLower(*c.MolecularFormula), term)
}

// WithSource returns a copy of c tagged with s.
func (c Compound) WithSource(s Source) Compound {
	c.Source = s
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Extended lookups
// ─────────────────────────────────────────────────────────────────────────────

// Bioactivity is the small property fetch used as a bioactivity proxy.
// Available is false when the remote lookup failed.
type Bioactivity struct {
	Name            string   `json:"name"`
	MolecularWeight *float64 `json:"molecular_weight"`
	XLogP           *float64 `json:"xlogp"`
	Available       bool     `json:"bioactivity_available"`
}

// Details is the full descriptor set for one compound.
type Details struct {
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

// Float64 returns a pointer to v, for literal tables.
func Float64(v float64) *float64 { return &v }

func String(v string) *string { return &v }

func Int64(v int64) *int64 { return &v }

//Personal.AI order the ending
