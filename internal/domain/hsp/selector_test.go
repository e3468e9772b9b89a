package hsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solventworks/hansen/internal/domain/chem"
	"github.com/solventworks/hansen/internal/infrastructure/monitoring/logging"
	htypes "github.com/solventworks/hansen/pkg/types/hsp"
)

func newTestEstimator(t *testing.T, opts ...Option) *Estimator {
	t.Helper()
	e := NewEstimator(chem.NewEngine(), logging.NewNopLogger(), opts...)
	t.Cleanup(e.Close)
	return e
}

func TestEstimate_ReferenceAlwaysWins(t *testing.T) {
	e := newTestEstimator(t)

	mol := &htypes.Molecule{
		Connectivity:    "CCO",
		MolecularWeight: 46.07,
		Name:            "エタノール",
		EnglishName:     "Ethanol",
	}
	r := e.Estimate(mol)
	require.NotNil(t, r)

	// Measured data beats whatever the predictive methods compute.
	assert.Equal(t, htypes.MethodExperimental, r.Method)
	assert.Equal(t, 15.8, r.DeltaD)
	assert.Equal(t, 8.8, r.DeltaP)
	assert.Equal(t, 19.4, r.DeltaH)
}

func TestEstimate_NoConnectivityNoReference(t *testing.T) {
	e := newTestEstimator(t)

	mol := &htypes.Molecule{Name: "unobtainium", MolecularWeight: 123.4}

	assert.Nil(t, e.EstimateWith(mol, htypes.MethodVanKrevelen),
		"group contribution is unavailable without a structure")

	r := e.Estimate(mol)
	require.NotNil(t, r, "the selector always produces a result")
	assert.Equal(t, htypes.MethodManual, r.Method)
	assert.Zero(t, r.DeltaD)
	assert.Zero(t, r.DeltaP)
	assert.Zero(t, r.DeltaH)
}

func TestEstimate_IonicRoutesThroughMarcus(t *testing.T) {
	e := newTestEstimator(t)

	mol := &htypes.Molecule{
		Connectivity:    "[Na+].[Cl-]",
		MolecularWeight: 58.44,
		Name:            "sodium chloride",
	}
	r := e.Estimate(mol)
	require.NotNil(t, r)

	assert.Equal(t, htypes.MethodMarcus, r.Method)
	assert.Greater(t, r.DeltaP, 0.0)
	assert.Greater(t, r.DeltaH, 0.0)
}

func TestEstimate_ComplexMoleculePrefersStefanis(t *testing.T) {
	e := newTestEstimator(t)

	// N-methylacetamide: both oxygen and nitrogen, no reference entry.
	mol := &htypes.Molecule{
		Connectivity:    "CC(=O)NC",
		MolecularWeight: 73.09,
		Name:            "n-methylacetamide",
	}
	r := e.Estimate(mol)
	require.NotNil(t, r)
	assert.Equal(t, htypes.MethodStefanis, r.Method)
}

func TestEstimate_SimpleMoleculeUsesVanKrevelen(t *testing.T) {
	e := newTestEstimator(t)

	mol := &htypes.Molecule{
		Connectivity:    "CCC",
		MolecularWeight: 44.1,
		Name:            "propane",
	}
	r := e.Estimate(mol)
	require.NotNil(t, r)
	assert.Equal(t, htypes.MethodVanKrevelen, r.Method)
}

func TestEstimate_LongConnectivityIsComplex(t *testing.T) {
	e := newTestEstimator(t, WithComplexityLength(5))

	mol := &htypes.Molecule{
		Connectivity:    "CCCCCCCC",
		MolecularWeight: 114.2,
		Name:            "octane",
	}
	r := e.Estimate(mol)
	require.NotNil(t, r)
	assert.Equal(t, htypes.MethodStefanis, r.Method)
}

func TestEstimate_ReferenceDisabled(t *testing.T) {
	e := newTestEstimator(t, WithReferenceTable(nil))

	mol := &htypes.Molecule{
		Connectivity:    "CCO",
		MolecularWeight: 46.07,
		Name:            "ethanol",
	}
	r := e.Estimate(mol)
	require.NotNil(t, r)
	assert.Equal(t, htypes.MethodVanKrevelen, r.Method)
}

func TestEstimateWith_ExactMethodNoBlending(t *testing.T) {
	e := newTestEstimator(t)

	mol := &htypes.Molecule{
		Connectivity:    "CCO",
		MolecularWeight: 46.07,
		Name:            "ethanol",
	}

	fragments := e.Fragments(mol.Connectivity)
	require.NotEmpty(t, fragments)

	vkh := e.EstimateWith(mol, htypes.MethodVanKrevelen)
	stef := e.EstimateWith(mol, htypes.MethodStefanis)
	require.NotNil(t, vkh)
	require.NotNil(t, stef)

	// Each result is exactly its method's formula output, never a blend.
	assert.Equal(t, VanKrevelen(fragments, mol.MolecularWeight), vkh)
	assert.Equal(t, Stefanis(fragments, mol.MolecularWeight), stef)
	assert.NotEqual(t, vkh.DeltaD, stef.DeltaD)
}

func TestEstimateWith_EoSAtConfiguredTemperature(t *testing.T) {
	e := newTestEstimator(t, WithTemperature(ReferenceTemperatureK))

	mol := &htypes.Molecule{Connectivity: "CCO", MolecularWeight: 46.07}
	base := e.EstimateWith(mol, htypes.MethodVanKrevelen)
	eos := e.EstimateWith(mol, htypes.MethodEoS)
	require.NotNil(t, base)
	require.NotNil(t, eos)

	assert.Equal(t, base.DeltaD, eos.DeltaD)
	assert.Equal(t, htypes.MethodEoS, eos.Method)
}

func TestEstimateWith_MarcusRequiresIonic(t *testing.T) {
	e := newTestEstimator(t)

	neutral := &htypes.Molecule{Connectivity: "CCO", MolecularWeight: 46.07}
	assert.Nil(t, e.EstimateWith(neutral, htypes.MethodMarcus))

	charged := &htypes.Molecule{Connectivity: "[NH4+]", MolecularWeight: 18.04}
	r := e.EstimateWith(charged, htypes.MethodMarcus)
	require.NotNil(t, r)
	assert.Equal(t, htypes.MethodMarcus, r.Method)
}

func TestEstimateWith_ManualPreservesNumbers(t *testing.T) {
	e := newTestEstimator(t)

	mol := &htypes.Molecule{
		Connectivity:    "CCO",
		MolecularWeight: 46.07,
		HSP:             htypes.NewResult(15.1, 8.4, 18.3, 59.6, htypes.MethodVanKrevelen),
	}
	r := e.EstimateWith(mol, htypes.MethodManual)
	require.NotNil(t, r)

	assert.Equal(t, htypes.MethodManual, r.Method)
	assert.Equal(t, mol.HSP.DeltaD, r.DeltaD)
	assert.Equal(t, mol.HSP.DeltaP, r.DeltaP)
	assert.Equal(t, mol.HSP.DeltaH, r.DeltaH)
	assert.Equal(t, mol.HSP.MolarVolume, r.MolarVolume)

	// Without prior numbers the manual switch yields the zeroed placeholder.
	bare := &htypes.Molecule{Connectivity: "CCO", MolecularWeight: 46.07}
	r = e.EstimateWith(bare, htypes.MethodManual)
	require.NotNil(t, r)
	assert.Equal(t, htypes.MethodManual, r.Method)
	assert.Zero(t, r.DeltaD)
}

func TestEstimateWith_Experimental(t *testing.T) {
	e := newTestEstimator(t)

	known := &htypes.Molecule{Name: "toluene"}
	r := e.EstimateWith(known, htypes.MethodExperimental)
	require.NotNil(t, r)
	assert.Equal(t, htypes.MethodExperimental, r.Method)

	unknown := &htypes.Molecule{Name: "unobtainium"}
	assert.Nil(t, e.EstimateWith(unknown, htypes.MethodExperimental))
}

func TestEstimateWith_InvalidMethod(t *testing.T) {
	e := newTestEstimator(t)
	mol := &htypes.Molecule{Connectivity: "CCO", MolecularWeight: 46.07}
	assert.Nil(t, e.EstimateWith(mol, htypes.Method("divination")))
}
