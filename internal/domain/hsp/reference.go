package hsp

import (
	"strings"

	htypes "github.com/solventworks/hansen/pkg/types/hsp"
)

// ─────────────────────────────────────────────────────────────────────────────
// Experimental reference table
// ─────────────────────────────────────────────────────────────────────────────

type referenceEntry struct {
	deltaD, deltaP, deltaH float64
	molarVolume            float64
}

// ReferenceTable maps substance names to experimentally measured HSP triples.
// Static, in-memory, read-only; lookups are case-insensitive and trimmed, with
// an alias pass covering localised and alternate English spellings.
type ReferenceTable struct {
	entries map[string]referenceEntry
	aliases map[string]string
}

// NewReferenceTable builds the built-in solvent table.
func NewReferenceTable() *ReferenceTable {
	return &ReferenceTable{
		entries: map[string]referenceEntry{
			"water":            {15.5, 16.0, 42.3, 18.0},
			"methanol":         {15.1, 12.3, 22.3, 40.7},
			"ethanol":          {15.8, 8.8, 19.4, 58.5},
			"acetone":          {15.5, 10.4, 7.0, 74.0},
			"benzene":          {18.4, 0.0, 2.0, 89.4},
			"toluene":          {18.0, 1.4, 2.0, 106.8},
			"chloroform":       {17.8, 3.1, 5.7, 80.7},
			"dichloromethane":  {18.2, 6.3, 6.1, 63.9},
			"hexane":           {14.9, 0.0, 0.0, 131.6},
			"ethyl acetate":    {15.8, 5.3, 7.2, 98.5},
			"tetrahydrofuran":  {16.8, 5.7, 8.0, 81.7},
			"acetonitrile":     {15.3, 18.0, 6.1, 52.6},
			"dimethyl sulfoxide": {18.4, 16.4, 10.2, 71.3},
			"dimethylformamide":  {17.4, 13.7, 11.3, 77.0},
		},
		aliases: map[string]string{
			"水":           "water",
			"メタノール":       "methanol",
			"methyl alcohol": "methanol",
			"エタノール":       "ethanol",
			"ethyl alcohol":  "ethanol",
			"アセトン":        "acetone",
			"2-propanone":   "acetone",
			"ベンゼン":        "benzene",
			"トルエン":        "toluene",
			"クロロホルム":      "chloroform",
			"methylene chloride": "dichloromethane",
			"n-hexane":     "hexane",
			"ヘキサン":        "hexane",
			"酢酸エチル":       "ethyl acetate",
			"thf":          "tetrahydrofuran",
			"dmso":         "dimethyl sulfoxide",
			"dimethyl sulphoxide": "dimethyl sulfoxide",
			"dmf":          "dimethylformamide",
			"n,n-dimethylformamide": "dimethylformamide",
		},
	}
}

// Lookup resolves a substance name to its experimental result.  The canonical
// key is tried first, then the alias table.  Each hit returns a fresh Result
// tagged experimental; callers may mutate it freely.
func (t *ReferenceTable) Lookup(name string) (*htypes.Result, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, false
	}
	entry, ok := t.entries[key]
	if !ok {
		canonical, aliased := t.aliases[key]
		if !aliased {
			return nil, false
		}
		entry, ok = t.entries[canonical]
		if !ok {
			return nil, false
		}
	}
	return htypes.NewResult(
		entry.deltaD, entry.deltaP, entry.deltaH, entry.molarVolume,
		htypes.MethodExperimental,
	), true
}

// LookupAny returns the first hit among the given names in order.
func (t *ReferenceTable) LookupAny(names []string) (*htypes.Result, bool) {
	for _, name := range names {
		if r, ok := t.Lookup(name); ok {
			return r, true
		}
	}
	return nil, false
}
