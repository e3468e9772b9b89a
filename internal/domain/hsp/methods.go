package hsp

import (
	"math"

	htypes "github.com/solventworks/hansen/pkg/types/hsp"
)

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation methods
// ─────────────────────────────────────────────────────────────────────────────

const (
	// ReferenceTemperatureK is the temperature all group coefficients refer to.
	ReferenceTemperatureK = 298.15

	// thermalExpansivity is the linear expansivity used by the equation-of-state
	// correction, in K⁻¹.
	thermalExpansivity = 1.1e-3

	// minFragmentVolume is the threshold below which a fragment volume sum is
	// considered degenerate and the molecular weight takes over as the
	// normalising volume, in cm³/mol.
	minFragmentVolume = 1.0

	// Marcus heuristic constants: baseline triple for a salt of reference
	// weight, and the bounds of the weight-ratio factor.
	marcusReferenceWeight = 100.0
	marcusDispersionBase  = 17.0
	marcusPolarBase       = 20.0
	marcusHydrogenBase    = 10.0
	marcusRatioFloor      = 0.5
	marcusRatioCap        = 1.5
	marcusIonicDensity    = 1.5
)

// normalizingVolume returns the fragment volume sum, or the molecular weight
// when the sum is degenerate.  Tiny fragment sets can leave the sum near zero
// or negative through branch corrections; weight is an accepted stand-in.
func normalizingVolume(fragmentVolume, molecularWeight float64) float64 {
	if fragmentVolume > minFragmentVolume {
		return fragmentVolume
	}
	return molecularWeight
}

// VanKrevelen aggregates fragments with the Hoftyzer–Van Krevelen group
// contribution formulas:
//
//	δD = ΣFd·n / V      δP = sqrt(Σ Fp²·n) / V      δH = sqrt(ΣEh·n / V)
//
// A nil return means the method is unavailable for this molecule.
func VanKrevelen(fragments []Fragment, molecularWeight float64) *htypes.Result {
	if len(fragments) == 0 {
		return nil
	}
	var fd, fp2, eh, vol float64
	for _, f := range fragments {
		n := float64(f.Count)
		c := f.Group.VanKrevelen
		fd += c.Fd * n
		fp2 += c.Fp * c.Fp * n
		eh += c.Eh * n
		vol += c.V * n
	}
	v := normalizingVolume(vol, molecularWeight)
	if v <= 0 {
		return nil
	}
	return htypes.NewResult(fd/v, math.Sqrt(fp2)/v, math.Sqrt(eh/v), v, htypes.MethodVanKrevelen)
}

// Stefanis aggregates fragments with the energy form: every component is
// sqrt(ΣE·n / V), energies divided by volume before the square root.  The
// volume fallback rule is shared with VanKrevelen.
func Stefanis(fragments []Fragment, molecularWeight float64) *htypes.Result {
	if len(fragments) == 0 {
		return nil
	}
	var ed, ep, eh, vol float64
	for _, f := range fragments {
		n := float64(f.Count)
		c := f.Group.Stefanis
		ed += c.Ed * n
		ep += c.Ep * n
		eh += c.Eh * n
		vol += c.V * n
	}
	v := normalizingVolume(vol, molecularWeight)
	if v <= 0 {
		return nil
	}
	return htypes.NewResult(
		math.Sqrt(ed/v), math.Sqrt(ep/v), math.Sqrt(eh/v), v, htypes.MethodStefanis)
}

// EquationOfState applies a linear temperature correction on top of the group
// contribution base: all three deltas scale by (1 − α·ΔT), the molar volume by
// (1 + α·ΔT).  At the reference temperature it reproduces the base exactly.
func EquationOfState(base *htypes.Result, temperatureK float64) *htypes.Result {
	if base == nil {
		return nil
	}
	deltaT := temperatureK - ReferenceTemperatureK
	scale := 1 - thermalExpansivity*deltaT
	if scale < 0 {
		scale = 0
	}
	return htypes.NewResult(
		base.DeltaD*scale,
		base.DeltaP*scale,
		base.DeltaH*scale,
		base.MolarVolume*(1+thermalExpansivity*deltaT),
		htypes.MethodEoS,
	)
}

// Marcus is the ionic heuristic for salts and ionic liquids.  It never
// fragments: a bounded weight-ratio factor drives δD up and δP/δH down as the
// molecular weight grows, anchored to a baseline triple at the reference
// weight.  All three outputs are strictly positive for a positive weight.
func Marcus(molecularWeight float64) *htypes.Result {
	if molecularWeight <= 0 {
		return nil
	}
	ratio := molecularWeight / marcusReferenceWeight
	if ratio < marcusRatioFloor {
		ratio = marcusRatioFloor
	}
	if ratio > marcusRatioCap {
		ratio = marcusRatioCap
	}
	return htypes.NewResult(
		marcusDispersionBase*ratio,
		marcusPolarBase/ratio,
		marcusHydrogenBase/ratio,
		molecularWeight/marcusIonicDensity,
		htypes.MethodMarcus,
	)
}
