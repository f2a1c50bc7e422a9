package compound_resolver

import (
	"strings"

	"github.com/turtacn/AyurChem-Intelligence/internal/domain/compound"
)

// curated holds precomputed records keyed by lowercase herb, then lowercase
// compound name.  They stand in for PubChem when it cannot be reached.
var curated = map[string]map[string]compound.Compound{
	"turmeric": {
		"curcumin": {
			Name:             "curcumin",
			PubChemID:        compound.Int64(969516),
			MolecularFormula: compound.String("C21H20O6"),
			MolecularWeight:  compound.Float64(368.38),
			IUPACName:        "(1E,6E)-1,7-bis(4-hydroxy-3-methoxyphenyl)-1,6-heptadiene-3,5-dione",
			CanonicalSMILES:  "COc1cc(ccc1O)C=CC(=O)CC(=O)C=Cc2ccc(O)c(OC)c2",
			Source:           compound.SourceFallback,
		},
	},
	"black pepper": {
		"piperine": {
			Name:             "piperine",
			PubChemID:        compound.Int64(638024),
			MolecularFormula: compound.String("C17H19NO3"),
			MolecularWeight:  compound.Float64(285.34),
			IUPACName:        "(2E,4E)-5-(1,3-benzodioxol-5-yl)-1-(piperidin-1-yl)penta-2,4-dien-1-one",
			CanonicalSMILES:  "O=C(N1CCCCC1)C=CC=CC2=CC3=C(OCO3)C=C2",
			Source:           compound.SourceFallback,
		},
	},
}

// Fallback returns the curated record for a compound of herb.  The herb's own
// table is consulted first, then every other herb's.
func Fallback(herbName, name string) (compound.Compound, bool) {
	h, n := strings.ToLower(strings.TrimSpace(herbName)), strings.ToLower(strings.TrimSpace(name))
	if c, ok := curated[h][n]; ok {
		return cloneCompound(c), true
	}
	for _, byName := range curated {
		if c, ok := byName[n]; ok {
			return cloneCompound(c), true
		}
	}
	return compound.Compound{}, false
}

func cloneCompound(c compound.Compound) compound.Compound {
	if c.PubChemID != nil {
		c.PubChemID = compound.Int64(*c.PubChemID)
	}
	if c.MolecularFormula != nil {
		c.MolecularFormula = compound.String(*c.MolecularFormula)
	}
	if c.MolecularWeight != nil {
		c.MolecularWeight = compound.Float64(*c.MolecularWeight)
	}
	return c
}

//Personal.AI order the ending
