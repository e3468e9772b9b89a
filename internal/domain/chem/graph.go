// Package chem is the molecular graph adapter: it parses connectivity line
// notation (a SMILES subset) into an atom/bond graph, materialises explicit
// hydrogens, and reports substructure-pattern matches as atom-index sets.
//
// The rest of the engine only depends on the Engine, Graph, and Matcher
// capability surface defined in engine.go; the in-memory implementation in
// this package can be replaced by a native toolkit binding without touching
// the fragmenter or aggregation code.
package chem

// Atom is a single node of a molecular graph.
type Atom struct {
	// Element is the atomic symbol with standard capitalisation ("C", "Cl").
	Element string
	// Aromatic is set for atoms written in aromatic (lowercase) notation.
	Aromatic bool
	// Charge is the formal charge parsed from bracket notation.
	Charge int
	// Hydrogens is the hydrogen count attached to this atom: explicit for
	// bracket atoms, computed from standard valence otherwise.  After
	// AddHydrogens this count is also materialised as explicit H atoms.
	Hydrogens int
	// Component is the zero-based index of the disconnected component this
	// atom belongs to ("." separated parts of the connectivity string).
	Component int
	// AddedH marks hydrogen atoms appended by AddHydrogens.
	AddedH bool

	// hExplicit records whether Hydrogens came from bracket notation.
	hExplicit bool
}

// Bond is a single edge of a molecular graph.
type Bond struct {
	From, To int
	// Order is 1, 2 or 3.  Aromatic bonds carry Order 1 with Aromatic set.
	Order    int
	Aromatic bool
}

// Graph is an immutable-after-build molecular graph.  It is not safe for
// concurrent mutation; share only after AddHydrogens (if needed) has run.
type Graph struct {
	atoms []Atom
	bonds []Bond
	// adj holds, per atom, the indices into bonds in insertion order.  The
	// order is deterministic for a given connectivity string, which pins the
	// matcher's candidate iteration order.
	adj [][]int

	components     int
	hydrogensAdded bool
}

// NumAtoms returns the number of atoms, including materialised hydrogens.
func (g *Graph) NumAtoms() int { return len(g.atoms) }

// NumHeavyAtoms returns the number of non-hydrogen atoms.
func (g *Graph) NumHeavyAtoms() int {
	n := 0
	for i := range g.atoms {
		if g.atoms[i].Element != "H" {
			n++
		}
	}
	return n
}

// Atom returns the atom at index i.
func (g *Graph) Atom(i int) Atom { return g.atoms[i] }

// NumBonds returns the number of bonds.
func (g *Graph) NumBonds() int { return len(g.bonds) }

// Bond returns the bond at index i.
func (g *Graph) Bond(i int) Bond { return g.bonds[i] }

// Neighbors returns the atom indices adjacent to atom i, in the deterministic
// insertion order of their bonds.
func (g *Graph) Neighbors(i int) []int {
	out := make([]int, 0, len(g.adj[i]))
	for _, bi := range g.adj[i] {
		b := g.bonds[bi]
		if b.From == i {
			out = append(out, b.To)
		} else {
			out = append(out, b.From)
		}
	}
	return out
}

// BondBetween returns the bond connecting atoms a and b, if any.
func (g *Graph) BondBetween(a, b int) (Bond, bool) {
	for _, bi := range g.adj[a] {
		bond := g.bonds[bi]
		if (bond.From == a && bond.To == b) || (bond.From == b && bond.To == a) {
			return bond, true
		}
	}
	return Bond{}, false
}

// Components returns the number of disconnected components.
func (g *Graph) Components() int { return g.components }

// HasChargedAtom reports whether any atom carries a non-zero formal charge.
func (g *Graph) HasChargedAtom() bool {
	for i := range g.atoms {
		if g.atoms[i].Charge != 0 {
			return true
		}
	}
	return false
}

// HydrogenCount returns the hydrogen count of atom i.  After AddHydrogens it
// counts the materialised neighbors; before, it reads the stored count.
func (g *Graph) HydrogenCount(i int) int {
	if !g.hydrogensAdded {
		return g.atoms[i].Hydrogens
	}
	n := 0
	for _, nb := range g.Neighbors(i) {
		if g.atoms[nb].Element == "H" {
			n++
		}
	}
	return n
}

// HydrogenNeighbors returns the indices of materialised hydrogen atoms
// attached to atom i.
func (g *Graph) HydrogenNeighbors(i int) []int {
	var out []int
	for _, nb := range g.Neighbors(i) {
		if g.atoms[nb].Element == "H" {
			out = append(out, nb)
		}
	}
	return out
}

// AddHydrogens materialises each atom's implicit hydrogen count as explicit H
// atoms bonded by single bonds.  Hydrogens are appended after all heavy
// atoms, per heavy atom in index order, so the resulting indices are
// deterministic.  Calling AddHydrogens twice is a no-op.
func (g *Graph) AddHydrogens() {
	if g.hydrogensAdded {
		return
	}
	heavy := len(g.atoms)
	for i := 0; i < heavy; i++ {
		for h := 0; h < g.atoms[i].Hydrogens; h++ {
			g.atoms = append(g.atoms, Atom{
				Element:   "H",
				Component: g.atoms[i].Component,
				AddedH:    true,
			})
			hIdx := len(g.atoms) - 1
			g.adj = append(g.adj, nil)
			g.addBond(Bond{From: i, To: hIdx, Order: 1})
		}
	}
	g.hydrogensAdded = true
}

func (g *Graph) addBond(b Bond) {
	g.bonds = append(g.bonds, b)
	bi := len(g.bonds) - 1
	g.adj[b.From] = append(g.adj[b.From], bi)
	g.adj[b.To] = append(g.adj[b.To], bi)
}

func (g *Graph) addAtom(a Atom) int {
	g.atoms = append(g.atoms, a)
	g.adj = append(g.adj, nil)
	return len(g.atoms) - 1
}
