package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solventworks/hansen/pkg/errors"
)

func TestParseSMILES_Ethanol(t *testing.T) {
	g, err := ParseSMILES("CCO")
	require.NoError(t, err)

	require.Equal(t, 3, g.NumAtoms())
	assert.Equal(t, 2, g.NumBonds())
	assert.Equal(t, 1, g.Components())

	assert.Equal(t, "C", g.Atom(0).Element)
	assert.Equal(t, "O", g.Atom(2).Element)

	// Implicit hydrogens: CH3, CH2, OH.
	assert.Equal(t, 3, g.HydrogenCount(0))
	assert.Equal(t, 2, g.HydrogenCount(1))
	assert.Equal(t, 1, g.HydrogenCount(2))
}

func TestParseSMILES_AddHydrogens(t *testing.T) {
	g, err := ParseSMILES("CCO")
	require.NoError(t, err)

	g.AddHydrogens()
	assert.Equal(t, 9, g.NumAtoms())
	assert.Equal(t, 3, g.NumHeavyAtoms())
	assert.Equal(t, 8, g.NumBonds())

	// Counts survive materialisation.
	assert.Equal(t, 3, g.HydrogenCount(0))
	assert.Equal(t, 1, g.HydrogenCount(2))
	assert.Len(t, g.HydrogenNeighbors(1), 2)

	// Idempotent.
	g.AddHydrogens()
	assert.Equal(t, 9, g.NumAtoms())
}

func TestParseSMILES_Benzene(t *testing.T) {
	g, err := ParseSMILES("c1ccccc1")
	require.NoError(t, err)

	require.Equal(t, 6, g.NumAtoms())
	assert.Equal(t, 6, g.NumBonds(), "ring closure bond present")
	for i := 0; i < 6; i++ {
		assert.True(t, g.Atom(i).Aromatic)
		assert.Equal(t, 1, g.HydrogenCount(i))
	}

	b, ok := g.BondBetween(0, 5)
	require.True(t, ok)
	assert.True(t, b.Aromatic)
}

func TestParseSMILES_AceticAcid(t *testing.T) {
	g, err := ParseSMILES("CC(=O)O")
	require.NoError(t, err)

	require.Equal(t, 4, g.NumAtoms())
	assert.Equal(t, 3, g.HydrogenCount(0), "methyl carbon")
	assert.Equal(t, 0, g.HydrogenCount(1), "carbonyl carbon")
	assert.Equal(t, 0, g.HydrogenCount(2), "carbonyl oxygen")
	assert.Equal(t, 1, g.HydrogenCount(3), "hydroxyl oxygen")

	b, ok := g.BondBetween(1, 2)
	require.True(t, ok)
	assert.Equal(t, 2, b.Order)
}

func TestParseSMILES_IonicPair(t *testing.T) {
	g, err := ParseSMILES("[Na+].[Cl-]")
	require.NoError(t, err)

	require.Equal(t, 2, g.NumAtoms())
	assert.Equal(t, 2, g.Components())
	assert.True(t, g.HasChargedAtom())
	assert.Equal(t, "Na", g.Atom(0).Element)
	assert.Equal(t, 1, g.Atom(0).Charge)
	assert.Equal(t, -1, g.Atom(1).Charge)
	assert.Equal(t, 0, g.NumBonds())
}

func TestParseSMILES_BracketHydrogensAndCharges(t *testing.T) {
	g, err := ParseSMILES("[NH4+]")
	require.NoError(t, err)
	require.Equal(t, 1, g.NumAtoms())
	assert.Equal(t, "N", g.Atom(0).Element)
	assert.Equal(t, 4, g.HydrogenCount(0))
	assert.Equal(t, 1, g.Atom(0).Charge)

	g, err = ParseSMILES("[O-2]")
	require.NoError(t, err)
	assert.Equal(t, -2, g.Atom(0).Charge)

	g, err = ParseSMILES("[N++]")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Atom(0).Charge)
}

func TestParseSMILES_StereoMarkersIgnored(t *testing.T) {
	// trans-2-butene with directional bonds.
	g, err := ParseSMILES("C/C=C/C")
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumAtoms())

	b, ok := g.BondBetween(1, 2)
	require.True(t, ok)
	assert.Equal(t, 2, b.Order)
}

func TestParseSMILES_PercentRingClosure(t *testing.T) {
	g, err := ParseSMILES("C%10CCCCC%10")
	require.NoError(t, err)
	assert.Equal(t, 6, g.NumAtoms())
	assert.Equal(t, 6, g.NumBonds())
}

func TestParseSMILES_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"unclosed branch", "C(CO"},
		{"unmatched close", "CC)O"},
		{"unclosed ring", "C1CCC"},
		{"unterminated bracket", "[NH"},
		{"bogus character", "C?C"},
		{"branch without atom", "(CC)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSMILES(tt.input)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.CodeParseFailed))
		})
	}
}
