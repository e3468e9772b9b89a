package hsp

import (
	"sort"
	"strings"

	"github.com/solventworks/hansen/internal/domain/chem"
	"github.com/solventworks/hansen/internal/infrastructure/monitoring/logging"
	htypes "github.com/solventworks/hansen/pkg/types/hsp"
)

// ─────────────────────────────────────────────────────────────────────────────
// Method selector
// ─────────────────────────────────────────────────────────────────────────────

// complexityLengthDefault is the connectivity length beyond which a molecule
// is judged structurally complex and the energy method is preferred.
const complexityLengthDefault = 20

// Estimator runs the applicable aggregation methods for a molecule and picks
// a result by a fixed policy.  It always produces a result: when nothing is
// viable the zeroed manual placeholder comes back, never a nil or an error.
type Estimator struct {
	engine           chem.Engine
	fragmenter       *Fragmenter
	reference        *ReferenceTable
	logger           logging.Logger
	temperature      float64
	complexityLength int
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithTemperature sets the temperature, in kelvin, the equation-of-state
// method corrects to.
func WithTemperature(kelvin float64) Option {
	return func(e *Estimator) { e.temperature = kelvin }
}

// WithComplexityLength sets the connectivity-length threshold of the
// structural complexity heuristic.
func WithComplexityLength(n int) Option {
	return func(e *Estimator) { e.complexityLength = n }
}

// WithReferenceTable replaces the built-in reference table; nil disables
// reference validation entirely.
func WithReferenceTable(t *ReferenceTable) Option {
	return func(e *Estimator) { e.reference = t }
}

// NewEstimator wires a full estimator on top of the given chemistry engine.
// Callers must Close it to release the compiled group patterns.
func NewEstimator(engine chem.Engine, logger logging.Logger, opts ...Option) *Estimator {
	e := &Estimator{
		engine:           engine,
		fragmenter:       NewFragmenter(engine, logger),
		reference:        NewReferenceTable(),
		logger:           logger,
		temperature:      ReferenceTemperatureK,
		complexityLength: complexityLengthDefault,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Close releases the estimator's compiled patterns.
func (e *Estimator) Close() { e.fragmenter.Close() }

// SkippedPatterns reports how many group patterns were dropped at load.
func (e *Estimator) SkippedPatterns() int { return e.fragmenter.SkippedPatterns() }

// methodResults holds everything one estimation pass computed.
type methodResults struct {
	vanKrevelen *htypes.Result
	stefanis    *htypes.Result
	eos         *htypes.Result
	marcus      *htypes.Result
}

func (r methodResults) all() []*htypes.Result {
	out := make([]*htypes.Result, 0, 4)
	for _, res := range []*htypes.Result{r.vanKrevelen, r.stefanis, r.eos, r.marcus} {
		if res != nil {
			out = append(out, res)
		}
	}
	return out
}

// Estimate runs the full selection policy for a molecule and returns the
// authoritative result:
//
//  1. A reference table hit wins outright; computed methods are ranked against
//     it by Hansen distance for diagnostics only.
//  2. Otherwise the ionic heuristic wins when the connectivity is ionic, then
//     the energy method for structurally complex molecules, then group
//     contribution, then the equation-of-state result.
//  3. When nothing is viable the zeroed manual placeholder is returned.
//
// The returned result always replaces any previous one wholesale.
func (e *Estimator) Estimate(mol *htypes.Molecule) *htypes.Result {
	computed := e.computeAll(mol)

	if e.reference != nil {
		if ref, ok := e.reference.LookupAny(mol.PreferredNames()); ok {
			e.reportValidation(mol, ref, computed)
			return ref
		}
	}

	switch {
	case computed.marcus != nil:
		return computed.marcus
	case computed.stefanis != nil && e.isComplex(mol.Connectivity):
		return computed.stefanis
	case computed.vanKrevelen != nil:
		return computed.vanKrevelen
	case computed.eos != nil:
		return computed.eos
	default:
		return htypes.ZeroManual()
	}
}

// EstimateWith bypasses the selection policy and computes exactly the
// requested method.  A nil return means the method is unavailable for this
// molecule.  Switching to manual keeps the molecule's existing numbers and
// changes only the tag, so the caller can hand-edit in place.
func (e *Estimator) EstimateWith(mol *htypes.Molecule, method htypes.Method) *htypes.Result {
	switch method {
	case htypes.MethodVanKrevelen:
		return VanKrevelen(e.fragmenter.Fragment(mol.Connectivity), mol.MolecularWeight)
	case htypes.MethodStefanis:
		return Stefanis(e.fragmenter.Fragment(mol.Connectivity), mol.MolecularWeight)
	case htypes.MethodEoS:
		base := VanKrevelen(e.fragmenter.Fragment(mol.Connectivity), mol.MolecularWeight)
		return EquationOfState(base, e.temperature)
	case htypes.MethodMarcus:
		if !e.isIonic(mol.Connectivity) {
			return nil
		}
		return Marcus(mol.MolecularWeight)
	case htypes.MethodManual:
		if mol.HSP != nil {
			return mol.HSP.WithMethod(htypes.MethodManual)
		}
		return htypes.ZeroManual()
	case htypes.MethodExperimental:
		if e.reference == nil {
			return nil
		}
		if ref, ok := e.reference.LookupAny(mol.PreferredNames()); ok {
			return ref
		}
		return nil
	default:
		return nil
	}
}

// Fragments exposes the fragmentation step on its own, for diagnostics and
// for callers that want to display the group breakdown.
func (e *Estimator) Fragments(connectivity string) []Fragment {
	return e.fragmenter.Fragment(connectivity)
}

func (e *Estimator) computeAll(mol *htypes.Molecule) methodResults {
	fragments := e.fragmenter.Fragment(mol.Connectivity)

	var r methodResults
	r.vanKrevelen = VanKrevelen(fragments, mol.MolecularWeight)
	r.stefanis = Stefanis(fragments, mol.MolecularWeight)
	r.eos = EquationOfState(r.vanKrevelen, e.temperature)
	if e.isIonic(mol.Connectivity) {
		r.marcus = Marcus(mol.MolecularWeight)
	}
	return r
}

// isIonic reports whether the connectivity string denotes a salt or ionic
// liquid: multiple disconnected components or at least one charged atom.
func (e *Estimator) isIonic(connectivity string) bool {
	if connectivity == "" {
		return false
	}
	g, err := e.engine.ParseGraph(connectivity)
	if err != nil {
		return false
	}
	return g.Components() > 1 || g.HasChargedAtom()
}

// isComplex is the structural complexity heuristic: a long connectivity
// string, or one containing both oxygen and nitrogen atoms.  A crude proxy,
// kept as documented behavior.
func (e *Estimator) isComplex(connectivity string) bool {
	if len([]rune(connectivity)) > e.complexityLength {
		return true
	}
	hasO := strings.ContainsAny(connectivity, "Oo")
	hasN := strings.ContainsAny(connectivity, "Nn")
	return hasO && hasN
}

// reportValidation logs how each computed method scored against the reference
// entry, best first.  Diagnostics only; the reference is returned regardless.
func (e *Estimator) reportValidation(mol *htypes.Molecule, ref *htypes.Result, computed methodResults) {
	results := computed.all()
	if len(results) == 0 {
		return
	}
	sort.Slice(results, func(i, j int) bool {
		return Distance(results[i], ref) < Distance(results[j], ref)
	})
	for rank, res := range results {
		e.logger.Info("method validated against reference",
			logging.String("molecule", mol.Name),
			logging.String("method", res.Method.String()),
			logging.Int("rank", rank+1),
			logging.Float64("distance", Distance(res, ref)))
	}
}
