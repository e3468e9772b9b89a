// Package hsp defines the value objects exchanged between the Hansen
// solubility parameter engine and its callers: the Method provenance tag,
// the Result triple with its derived quantities, and the Molecule input
// record.  No computation beyond derived-field bookkeeping lives here.
package hsp

import (
	"fmt"
	"math"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Method — provenance tag for an HSP result
// ─────────────────────────────────────────────────────────────────────────────

// Method identifies which estimation route produced a Result.  The set is
// closed: every switch over Method in the engine enumerates all members, so
// adding a method is a compile-visible change rather than a runtime string
// comparison.
type Method string

const (
	// MethodVanKrevelen is the Hoftyzer–Van Krevelen group-contribution method.
	MethodVanKrevelen Method = "van_krevelen"
	// MethodStefanis is the Stefanis–Panayiotou energy-based group method.
	MethodStefanis Method = "stefanis"
	// MethodEoS is the equation-of-state temperature correction applied on top
	// of the Van Krevelen base result.
	MethodEoS Method = "eos"
	// MethodMarcus is the weight-ratio heuristic for salts and ionic liquids.
	MethodMarcus Method = "marcus"
	// MethodManual marks a hand-entered or placeholder result.
	MethodManual Method = "manual"
	// MethodExperimental marks a value taken from the measured reference table.
	MethodExperimental Method = "experimental"
)

// Methods lists every valid Method in declaration order.
func Methods() []Method {
	return []Method{
		MethodVanKrevelen,
		MethodStefanis,
		MethodEoS,
		MethodMarcus,
		MethodManual,
		MethodExperimental,
	}
}

// IsValid reports whether m is a member of the closed Method set.
func (m Method) IsValid() bool {
	switch m {
	case MethodVanKrevelen, MethodStefanis, MethodEoS, MethodMarcus, MethodManual, MethodExperimental:
		return true
	default:
		return false
	}
}

// String returns the string representation of the method tag.
func (m Method) String() string { return string(m) }

// ParseMethod converts a string (case-insensitive, trimmed) into a Method.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	if m.IsValid() {
		return m, nil
	}
	return "", fmt.Errorf("unknown HSP method %q", s)
}

// ─────────────────────────────────────────────────────────────────────────────
// Result — the central HSP value object
// ─────────────────────────────────────────────────────────────────────────────

// Result holds one complete Hansen solubility parameter estimate.  All delta
// components are in MPa^0.5 and the molar volume in cm³/mol.  DeltaT and
// DeltaV are derived from the three components and are recomputed together by
// NewResult; they are never patched individually.
//
// A Result is immutable once produced for a given method and input.  Changing
// method always replaces the whole object; the engine never merges fields
// from a previous method's result into a new one.
type Result struct {
	DeltaD float64 `json:"delta_d"`
	DeltaP float64 `json:"delta_p"`
	DeltaH float64 `json:"delta_h"`

	// DeltaT is the total parameter sqrt(D²+P²+H²).
	DeltaT float64 `json:"delta_t"`
	// DeltaV is the dispersion-polar plane vector sqrt(D²+P²).
	DeltaV float64 `json:"delta_v"`

	MolarVolume float64 `json:"molar_volume"`

	Method Method `json:"method"`
}

// NewResult builds a Result from the three components, computing both derived
// quantities in the single place they are defined.  Every aggregation method
// in the engine constructs its output through this function so the derived
// fields can never diverge from their defining formulas.
func NewResult(deltaD, deltaP, deltaH, molarVolume float64, method Method) *Result {
	return &Result{
		DeltaD:      deltaD,
		DeltaP:      deltaP,
		DeltaH:      deltaH,
		DeltaT:      math.Sqrt(deltaD*deltaD + deltaP*deltaP + deltaH*deltaH),
		DeltaV:      math.Sqrt(deltaD*deltaD + deltaP*deltaP),
		MolarVolume: molarVolume,
		Method:      method,
	}
}

// ZeroManual returns the zeroed placeholder the selector falls back to when no
// method is viable: renderable, hand-editable, tagged manual.
func ZeroManual() *Result {
	return NewResult(0, 0, 0, 0, MethodManual)
}

// WithMethod returns a copy of r carrying the given method tag and unchanged
// numeric values.  It exists solely for the manual-switch path, where a caller
// takes ownership of the numbers for in-place editing.
func (r *Result) WithMethod(m Method) *Result {
	clone := *r
	clone.Method = m
	return &clone
}

func (r *Result) String() string {
	return fmt.Sprintf("HSP{D=%.2f P=%.2f H=%.2f V=%.1f %s}",
		r.DeltaD, r.DeltaP, r.DeltaH, r.MolarVolume, r.Method)
}

// ─────────────────────────────────────────────────────────────────────────────
// Molecule — the external input record
// ─────────────────────────────────────────────────────────────────────────────

// Molecule is the record external collaborators hand to the engine.  The
// engine reads Connectivity, MolecularWeight and the two names, and attaches
// a Result; it does not own or validate anything else on the record.
type Molecule struct {
	// Connectivity is the SMILES-style line notation.  May be empty, in which
	// case the structure-based methods report "unavailable".
	Connectivity string `json:"connectivity"`

	// MolecularWeight in g/mol; used as the volume-normalisation fallback.
	MolecularWeight float64 `json:"molecular_weight"`

	// Name is the preferred display name, possibly localised.
	Name string `json:"name,omitempty"`

	// EnglishName is the optional alternate spelling used for reference lookup.
	EnglishName string `json:"english_name,omitempty"`

	// HSP is the previously computed result, if any.  The engine overwrites it
	// wholesale on recomputation.
	HSP *Result `json:"hsp,omitempty"`
}

// PreferredNames returns the lookup candidates in priority order, skipping
// empty entries.
func (m *Molecule) PreferredNames() []string {
	names := make([]string, 0, 2)
	if m.Name != "" {
		names = append(names, m.Name)
	}
	if m.EnglishName != "" {
		names = append(names, m.EnglishName)
	}
	return names
}
