package chem

import (
	"fmt"
	"sort"
	"strings"

	"github.com/solventworks/hansen/pkg/errors"
)

// Pattern match semantics, SMARTS-like but deliberately small:
//
//   - An unbracketed pattern atom constrains element and aromaticity only.
//   - A bracketed pattern atom additionally constrains the exact hydrogen
//     count and formal charge of the target atom ([CH2] matches a methylene
//     carbon and nothing else; [O] matches an ether oxygen with no hydrogen).
//   - A pattern bond matches a target bond of the same kind: aromatic to
//     aromatic, otherwise equal order on a non-aromatic target bond.
//
// A match claims the mapped heavy atoms plus every hydrogen attached to
// them, so a group owns its hydrogens for overlap accounting.

// patternAtom is one node of a compiled pattern.
type patternAtom struct {
	element  string
	aromatic bool
	exact    bool // bracket atom: hydrogens and charge are constraints
	hCount   int
	charge   int
}

// patternBond is one edge of a compiled pattern.
type patternBond struct {
	from, to int
	order    int
	aromatic bool
}

// graphMatcher is the in-memory Matcher implementation.
type graphMatcher struct {
	pattern string
	atoms   []patternAtom
	bonds   []patternBond
	// adj holds, per pattern atom, (neighbor, bond index) pairs.
	adj [][]patternEdge
	// visitOrder is a DFS ordering from atom 0; every atom after the first
	// has at least one earlier neighbor, keeping the backtracking anchored.
	visitOrder []int
	closed     bool
}

type patternEdge struct {
	to   int
	bond int
}

// compilePattern parses a pattern string and prepares the matching plan.
func compilePattern(pattern string) (*graphMatcher, error) {
	g, err := ParseSMILES(pattern)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodePatternInvalid, "pattern rejected by parser").
			WithDetail("pattern=" + pattern)
	}
	if g.Components() != 1 {
		return nil, errors.New(errors.CodePatternInvalid, "pattern must be a single connected fragment").
			WithDetail("pattern=" + pattern)
	}

	m := &graphMatcher{pattern: pattern}
	for i := 0; i < g.NumAtoms(); i++ {
		a := g.Atom(i)
		if a.Element == "H" {
			return nil, errors.New(errors.CodePatternInvalid, "explicit hydrogen atoms are not allowed in patterns; use bracket H counts").
				WithDetail("pattern=" + pattern)
		}
		pa := patternAtom{
			element:  a.Element,
			aromatic: a.Aromatic,
			exact:    a.hExplicit,
			hCount:   a.Hydrogens,
			charge:   a.Charge,
		}
		m.atoms = append(m.atoms, pa)
	}
	m.adj = make([][]patternEdge, len(m.atoms))
	for i := 0; i < g.NumBonds(); i++ {
		b := g.Bond(i)
		m.bonds = append(m.bonds, patternBond{
			from: b.From, to: b.To, order: b.Order, aromatic: b.Aromatic,
		})
		bi := len(m.bonds) - 1
		m.adj[b.From] = append(m.adj[b.From], patternEdge{to: b.To, bond: bi})
		m.adj[b.To] = append(m.adj[b.To], patternEdge{to: b.From, bond: bi})
	}

	m.visitOrder = dfsOrder(len(m.atoms), m.adj)
	return m, nil
}

func dfsOrder(n int, adj [][]patternEdge) []int {
	order := make([]int, 0, n)
	seen := make([]bool, n)
	var visit func(int)
	visit = func(i int) {
		seen[i] = true
		order = append(order, i)
		for _, e := range adj[i] {
			if !seen[e.to] {
				visit(e.to)
			}
		}
	}
	visit(0)
	return order
}

// Pattern returns the source pattern string.
func (m *graphMatcher) Pattern() string { return m.pattern }

// Close releases matcher resources.  The in-memory implementation holds no
// native handles, but callers must still pair every CompileMatcher with a
// Close so a native-backed engine can be dropped in.
func (m *graphMatcher) Close() { m.closed = true }

// FindAll returns every distinct occurrence of the pattern in g as a sorted
// atom-index set (mapped heavy atoms plus their attached hydrogens).
// The result order is deterministic: occurrences are reported by ascending
// anchor atom index, then by discovery order of the backtracking walk.
// Symmetric patterns that map onto the same atom set are reported once.
func (m *graphMatcher) FindAll(g *Graph) [][]int {
	if m.closed || g == nil {
		return nil
	}

	var results [][]int
	seen := make(map[string]bool)

	mapping := make([]int, len(m.atoms))
	used := make(map[int]bool)

	var backtrack func(step int) // appends to results on full mappings
	backtrack = func(step int) {
		if step == len(m.visitOrder) {
			m.record(g, mapping, seen, &results)
			return
		}
		pIdx := m.visitOrder[step]
		for _, cand := range m.candidates(g, pIdx, mapping, step) {
			if used[cand] {
				continue
			}
			if !m.atomCompatible(g, pIdx, cand) {
				continue
			}
			mapping[pIdx] = cand
			if !m.bondsConsistent(g, pIdx, mapping, step) {
				continue
			}
			used[cand] = true
			backtrack(step + 1)
			used[cand] = false
		}
	}
	backtrack(0)
	return results
}

// candidates enumerates possible target atoms for pattern atom pIdx.  The
// root ranges over all heavy atoms in index order; later pattern atoms range
// over the neighbors of an already-mapped pattern neighbor, which keeps the
// search local and the iteration order deterministic.
func (m *graphMatcher) candidates(g *Graph, pIdx int, mapping []int, step int) []int {
	if step == 0 {
		out := make([]int, 0, g.NumAtoms())
		for i := 0; i < g.NumAtoms(); i++ {
			if g.Atom(i).Element != "H" {
				out = append(out, i)
			}
		}
		return out
	}
	for _, e := range m.adj[pIdx] {
		if m.placedBefore(e.to, step) {
			return g.Neighbors(mapping[e.to])
		}
	}
	// Unreachable for connected patterns.
	return nil
}

func (m *graphMatcher) placedBefore(pIdx, step int) bool {
	for i := 0; i < step; i++ {
		if m.visitOrder[i] == pIdx {
			return true
		}
	}
	return false
}

func (m *graphMatcher) atomCompatible(g *Graph, pIdx, tIdx int) bool {
	pa := m.atoms[pIdx]
	ta := g.Atom(tIdx)
	if ta.Element == "H" || ta.Element != pa.element || ta.Aromatic != pa.aromatic {
		return false
	}
	if pa.exact {
		if g.HydrogenCount(tIdx) != pa.hCount || ta.Charge != pa.charge {
			return false
		}
	}
	return true
}

// bondsConsistent verifies every pattern bond between pIdx and an
// already-placed pattern atom against the target graph.
func (m *graphMatcher) bondsConsistent(g *Graph, pIdx int, mapping []int, step int) bool {
	for _, e := range m.adj[pIdx] {
		if !m.placedBefore(e.to, step) {
			continue
		}
		tb, ok := g.BondBetween(mapping[pIdx], mapping[e.to])
		if !ok {
			return false
		}
		pb := m.bonds[e.bond]
		if pb.aromatic != tb.Aromatic {
			return false
		}
		if !pb.aromatic && pb.order != tb.Order {
			return false
		}
	}
	return true
}

// record deduplicates the completed mapping by its heavy-atom set and, for a
// new occurrence, appends the claimed set: heavy atoms plus their hydrogens.
func (m *graphMatcher) record(g *Graph, mapping []int, seen map[string]bool, results *[][]int) {
	heavy := make([]int, len(mapping))
	copy(heavy, mapping)
	sort.Ints(heavy)

	var key strings.Builder
	for _, idx := range heavy {
		fmt.Fprintf(&key, "%d,", idx)
	}
	if seen[key.String()] {
		return
	}
	seen[key.String()] = true

	claimed := heavy
	for _, idx := range heavy {
		claimed = append(claimed, g.HydrogenNeighbors(idx)...)
	}
	sort.Ints(claimed)
	*results = append(*results, claimed)
}
