// Package hsp implements the Hansen solubility parameter engine: the
// functional group table, the greedy fragmenter, the aggregation methods,
// the experimental reference table, and the selector that orchestrates them.
package hsp

import (
	"math"

	htypes "github.com/solventworks/hansen/pkg/types/hsp"
)

// Distance returns the Hansen distance Ra between two results:
//
//	Ra = sqrt(4·(Da−Db)² + (Pa−Pb)² + (Ha−Hb)²)
//
// The factor of 4 on the dispersion term comes from Hansen sphere theory and
// is not configurable.  This is the single distance implementation in the
// repository; method-vs-reference ranking and caller-side proximity scoring
// both go through it.
func Distance(a, b *htypes.Result) float64 {
	dd := a.DeltaD - b.DeltaD
	dp := a.DeltaP - b.DeltaP
	dh := a.DeltaH - b.DeltaH
	return math.Sqrt(4*dd*dd + dp*dp + dh*dh)
}
