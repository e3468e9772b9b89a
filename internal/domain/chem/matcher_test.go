package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solventworks/hansen/pkg/errors"
)

func mustGraph(t *testing.T, smiles string) *Graph {
	t.Helper()
	g, err := ParseSMILES(smiles)
	require.NoError(t, err)
	g.AddHydrogens()
	return g
}

func mustMatcher(t *testing.T, pattern string) Matcher {
	t.Helper()
	m, err := NewEngine().CompileMatcher(pattern)
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m
}

func TestMatcher_MethylOnPropane(t *testing.T) {
	g := mustGraph(t, "CCC")
	m := mustMatcher(t, "[CH3]")

	matches := m.FindAll(g)
	require.Len(t, matches, 2, "both terminal carbons, not the CH2")

	// Each match claims the carbon plus its three hydrogens.
	for _, match := range matches {
		assert.Len(t, match, 4)
	}
	// Terminal carbons are atoms 0 and 2.
	assert.Equal(t, 0, matches[0][0])
	assert.Equal(t, 2, matches[1][0])
}

func TestMatcher_CarboxylOnAceticAcid(t *testing.T) {
	g := mustGraph(t, "CC(=O)O")
	m := mustMatcher(t, "C(=O)[OH]")

	matches := m.FindAll(g)
	require.Len(t, matches, 1)
	// Carbonyl C, both oxygens, and the hydroxyl hydrogen.
	assert.Len(t, matches[0], 4)
	assert.Contains(t, matches[0], 1)
	assert.Contains(t, matches[0], 2)
	assert.Contains(t, matches[0], 3)
}

func TestMatcher_EsterOxygenNotHydroxyl(t *testing.T) {
	// Methyl acetate: the ester pattern requires a hydrogen-free oxygen.
	g := mustGraph(t, "CC(=O)OC")
	ester := mustMatcher(t, "C(=O)[O]")
	acid := mustMatcher(t, "C(=O)[OH]")

	assert.Len(t, ester.FindAll(g), 1)
	assert.Empty(t, acid.FindAll(g))
}

func TestMatcher_AromaticRingOnToluene(t *testing.T) {
	g := mustGraph(t, "Cc1ccccc1")
	m := mustMatcher(t, "c1ccccc1")

	matches := m.FindAll(g)
	require.Len(t, matches, 1, "symmetric mappings collapse to one atom set")
	// Six ring carbons plus their five ring hydrogens.
	assert.Len(t, matches[0], 11)
}

func TestMatcher_AromaticDoesNotMatchAliphatic(t *testing.T) {
	g := mustGraph(t, "C1CCCCC1") // cyclohexane
	m := mustMatcher(t, "c1ccccc1")
	assert.Empty(t, m.FindAll(g))
}

func TestMatcher_BondOrderRespected(t *testing.T) {
	alkene := mustMatcher(t, "C=C")
	assert.Len(t, alkene.FindAll(mustGraph(t, "C=C")), 1)
	assert.Empty(t, alkene.FindAll(mustGraph(t, "CC")))

	nitrile := mustMatcher(t, "C#N")
	assert.Len(t, nitrile.FindAll(mustGraph(t, "CC#N")), 1)
}

func TestMatcher_Deterministic(t *testing.T) {
	g := mustGraph(t, "CCCCCC")
	m := mustMatcher(t, "[CH2]")

	first := m.FindAll(g)
	second := m.FindAll(g)
	assert.Equal(t, first, second)
	require.Len(t, first, 4)
	// Ascending anchor order.
	for i := 1; i < len(first); i++ {
		assert.Less(t, first[i-1][0], first[i][0])
	}
}

func TestMatcher_ChargeConstraint(t *testing.T) {
	g := mustGraph(t, "[Na+].[Cl-]")
	sodium := mustMatcher(t, "[Na+]")
	neutralNa := mustMatcher(t, "[Na]")

	assert.Len(t, sodium.FindAll(g), 1)
	assert.Empty(t, neutralNa.FindAll(g))
}

func TestMatcher_ClosedMatcherReturnsNothing(t *testing.T) {
	g := mustGraph(t, "CCO")
	m, err := NewEngine().CompileMatcher("[CH3]")
	require.NoError(t, err)
	m.Close()
	assert.Nil(t, m.FindAll(g))
}

func TestCompileMatcher_Errors(t *testing.T) {
	engine := NewEngine()

	_, err := engine.CompileMatcher("C1CC") // unclosed ring
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodePatternInvalid))

	_, err = engine.CompileMatcher("C.C") // disconnected
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodePatternInvalid))
}
