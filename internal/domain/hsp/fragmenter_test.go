package hsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solventworks/hansen/internal/domain/chem"
	"github.com/solventworks/hansen/internal/infrastructure/monitoring/logging"
	"github.com/solventworks/hansen/internal/testutil"
)

func newTestFragmenter(t *testing.T) *Fragmenter {
	t.Helper()
	f := NewFragmenter(chem.NewEngine(), logging.NewNopLogger())
	t.Cleanup(f.Close)
	return f
}

func fragmentCounts(fragments []Fragment) map[string]int {
	counts := make(map[string]int, len(fragments))
	for _, f := range fragments {
		counts[f.Group.Name] = f.Count
	}
	return counts
}

func TestFragmenter_Ethanol(t *testing.T) {
	f := newTestFragmenter(t)

	fragments := f.Fragment("CCO")
	require.Len(t, fragments, 3)
	assert.Equal(t, map[string]int{
		"hydroxyl":  1,
		"methyl":    1,
		"methylene": 1,
	}, fragmentCounts(fragments))
}

func TestFragmenter_AceticAcid(t *testing.T) {
	f := newTestFragmenter(t)

	// The acid group outranks hydroxyl, carbonyl and ester, so the three
	// shared atoms are claimed once.
	fragments := f.Fragment("CC(=O)O")
	assert.Equal(t, map[string]int{
		"carboxylic acid": 1,
		"methyl":          1,
	}, fragmentCounts(fragments))
}

func TestFragmenter_MethylAcetate(t *testing.T) {
	f := newTestFragmenter(t)

	fragments := f.Fragment("CC(=O)OC")
	assert.Equal(t, map[string]int{
		"ester":  1,
		"methyl": 2,
	}, fragmentCounts(fragments))
}

func TestFragmenter_Toluene(t *testing.T) {
	f := newTestFragmenter(t)

	fragments := f.Fragment("Cc1ccccc1")
	assert.Equal(t, map[string]int{
		"aromatic ring": 1,
		"methyl":        1,
	}, fragmentCounts(fragments))
}

func TestFragmenter_Hexane(t *testing.T) {
	f := newTestFragmenter(t)

	fragments := f.Fragment("CCCCCC")
	assert.Equal(t, map[string]int{
		"methyl":    2,
		"methylene": 4,
	}, fragmentCounts(fragments))
}

func TestFragmenter_NoFragments(t *testing.T) {
	f := newTestFragmenter(t)

	assert.Nil(t, f.Fragment(""), "empty connectivity")
	assert.Nil(t, f.Fragment("C1CC"), "unparseable connectivity")
	assert.Nil(t, f.Fragment("S"), "no group matches hydrogen sulfide")
}

func TestFragmenter_BadPatternSkipped(t *testing.T) {
	groups := []Group{
		{Name: "broken", Pattern: "C1CC", Priority: 99},
		{Name: "methyl", Pattern: "[CH3]", Priority: 20,
			VanKrevelen: GroupContribution{Fd: 420, V: 33.5}},
	}
	logger := testutil.NewMockLogger()
	f := newFragmenter(chem.NewEngine(), logger, groups)
	defer f.Close()

	require.Len(t, f.matchers, 1, "the broken pattern is dropped, the rest survive")
	assert.Equal(t, 1, f.SkippedPatterns())
	assert.Len(t, logger.MessagesAt("warn"), 1)
	assert.Equal(t, map[string]int{"methyl": 2}, fragmentCounts(f.Fragment("CC")))
}

func TestFragmenter_NoAtomClaimedTwice(t *testing.T) {
	f := newTestFragmenter(t)

	// Vanillin carries overlapping candidate groups (ring, carbonyl, hydroxyl,
	// ether); counting claimed atoms against the graph proves no double claim.
	const vanillin = "O=Cc1ccc(O)c(OC)c1"
	g, err := chem.NewEngine().ParseGraph(vanillin)
	require.NoError(t, err)
	g.AddHydrogens()

	claimed := 0
	for _, frag := range f.Fragment(vanillin) {
		claimed += frag.Count * groupAtomSize(t, frag.Group, g)
	}
	assert.LessOrEqual(t, claimed, g.NumAtoms())
}

// groupAtomSize measures how many atoms one occurrence of the group claims in
// the given graph.
func groupAtomSize(t *testing.T, group Group, g *chem.Graph) int {
	t.Helper()
	m, err := chem.NewEngine().CompileMatcher(group.Pattern)
	require.NoError(t, err)
	defer m.Close()
	matches := m.FindAll(g)
	require.NotEmpty(t, matches)
	return len(matches[0])
}
