package chem

import (
	"fmt"
	"strings"

	"github.com/solventworks/hansen/pkg/errors"
)

// standardValence gives the implicit-hydrogen valence for organic-subset
// atoms written without brackets.  Bracket atoms state their hydrogen count
// explicitly and never consult this table.
var standardValence = map[string]int{
	"B": 3, "C": 4, "N": 3, "O": 2, "P": 3, "S": 2,
	"F": 1, "Cl": 1, "Br": 1, "I": 1,
}

// aromaticSymbols are the lowercase atoms accepted outside brackets.
var aromaticSymbols = map[byte]string{
	'b': "B", 'c': "C", 'n': "N", 'o': "O", 'p': "P", 's': "S",
}

// bondSpec is a pending bond annotation between two atoms.
type bondSpec struct {
	order    int
	aromatic bool
	explicit bool
}

// ringRef records an open ring-closure digit.
type ringRef struct {
	atom int
	spec bondSpec
}

type smilesParser struct {
	s   string
	pos int
	g   *Graph

	prev    int // index of the previous atom, -1 at a component start
	pending bondSpec
	stack   []int
	rings   map[int]ringRef
	comp    int
}

// ParseSMILES parses a connectivity string into a Graph.  The accepted
// subset covers the organic subset atoms, bracket atoms with hydrogen counts
// and formal charges, single/double/triple/aromatic bonds, branches, ring
// closures (including %nn), and "." component separators.  Stereo markers
// (/, \, @) are accepted and ignored.
func ParseSMILES(s string) (*Graph, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New(errors.CodeParseFailed, "empty connectivity string")
	}

	p := &smilesParser{
		s:     s,
		g:     &Graph{},
		prev:  -1,
		rings: make(map[int]ringRef),
	}
	if err := p.run(); err != nil {
		return nil, err
	}

	p.g.components = p.comp + 1
	p.assignImplicitHydrogens()
	return p.g, nil
}

func (p *smilesParser) fail(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return errors.New(errors.CodeParseFailed, msg).
		WithDetail(fmt.Sprintf("pos=%d input=%s", p.pos, p.s))
}

func (p *smilesParser) run() error {
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		switch {
		case c == '(':
			if p.prev < 0 {
				return p.fail("branch open with no preceding atom")
			}
			p.stack = append(p.stack, p.prev)
			p.pos++
		case c == ')':
			if len(p.stack) == 0 {
				return p.fail("unmatched branch close")
			}
			p.prev = p.stack[len(p.stack)-1]
			p.stack = p.stack[:len(p.stack)-1]
			p.pos++
		case c == '-':
			p.pending = bondSpec{order: 1, explicit: true}
			p.pos++
		case c == '=':
			p.pending = bondSpec{order: 2, explicit: true}
			p.pos++
		case c == '#':
			p.pending = bondSpec{order: 3, explicit: true}
			p.pos++
		case c == ':':
			p.pending = bondSpec{order: 1, aromatic: true, explicit: true}
			p.pos++
		case c == '/' || c == '\\':
			// Stereo bond direction: treated as a plain single bond.
			p.pending = bondSpec{order: 1, explicit: true}
			p.pos++
		case c == '.':
			if p.pending.explicit {
				return p.fail("bond before component separator")
			}
			p.prev = -1
			p.comp++
			p.pos++
		case c == '%':
			if p.pos+2 >= len(p.s) || !isDigit(p.s[p.pos+1]) || !isDigit(p.s[p.pos+2]) {
				return p.fail("%% ring closure needs two digits")
			}
			n := int(p.s[p.pos+1]-'0')*10 + int(p.s[p.pos+2]-'0')
			if err := p.closeRing(n); err != nil {
				return err
			}
			p.pos += 3
		case isDigit(c):
			if err := p.closeRing(int(c - '0')); err != nil {
				return err
			}
			p.pos++
		case c == '[':
			if err := p.parseBracketAtom(); err != nil {
				return err
			}
		default:
			if err := p.parseOrganicAtom(); err != nil {
				return err
			}
		}
	}

	if len(p.stack) != 0 {
		return p.fail("unclosed branch")
	}
	if len(p.rings) != 0 {
		return p.fail("unclosed ring bond")
	}
	return nil
}

// closeRing opens or closes ring-closure number n on the current atom.
func (p *smilesParser) closeRing(n int) error {
	if p.prev < 0 {
		return p.fail("ring closure with no preceding atom")
	}
	spec := p.pending
	p.pending = bondSpec{}

	open, ok := p.rings[n]
	if !ok {
		p.rings[n] = ringRef{atom: p.prev, spec: spec}
		return nil
	}
	delete(p.rings, n)

	if open.atom == p.prev {
		return p.fail("ring closure %d bonds an atom to itself", n)
	}
	// The explicit annotation may appear on either side of the closure.
	if !spec.explicit {
		spec = open.spec
	}
	p.bondTo(open.atom, p.prev, spec)
	return nil
}

// attach creates atom a, bonds it to the previous atom if any, and makes it
// the new previous atom.
func (p *smilesParser) attach(a Atom) {
	a.Component = p.comp
	idx := p.g.addAtom(a)
	if p.prev >= 0 {
		p.bondTo(p.prev, idx, p.pending)
	}
	p.pending = bondSpec{}
	p.prev = idx
}

func (p *smilesParser) bondTo(a, b int, spec bondSpec) {
	order := 1
	aromatic := false
	switch {
	case spec.explicit:
		order = spec.order
		aromatic = spec.aromatic
	case p.g.atoms[a].Aromatic && p.g.atoms[b].Aromatic:
		aromatic = true
	}
	p.g.addBond(Bond{From: a, To: b, Order: order, Aromatic: aromatic})
}

func (p *smilesParser) parseOrganicAtom() error {
	c := p.s[p.pos]

	if sym, ok := aromaticSymbols[c]; ok {
		p.attach(Atom{Element: sym, Aromatic: true})
		p.pos++
		return nil
	}

	// Two-letter organic subset symbols first.
	if c == 'C' && p.pos+1 < len(p.s) && p.s[p.pos+1] == 'l' {
		p.attach(Atom{Element: "Cl"})
		p.pos += 2
		return nil
	}
	if c == 'B' && p.pos+1 < len(p.s) && p.s[p.pos+1] == 'r' {
		p.attach(Atom{Element: "Br"})
		p.pos += 2
		return nil
	}

	sym := string(c)
	if _, ok := standardValence[sym]; !ok {
		return p.fail("unexpected character %q", c)
	}
	p.attach(Atom{Element: sym})
	p.pos++
	return nil
}

// parseBracketAtom parses "[<isotope><symbol><@...><H<n>><charge>]".
// Isotope and chirality markers are accepted and discarded.  A bracket atom's
// hydrogen count defaults to zero unless an H specifier is present.
func (p *smilesParser) parseBracketAtom() error {
	p.pos++ // consume '['

	// Isotope digits.
	for p.pos < len(p.s) && isDigit(p.s[p.pos]) {
		p.pos++
	}
	if p.pos >= len(p.s) {
		return p.fail("unterminated bracket atom")
	}

	var a Atom
	a.hExplicit = true

	c := p.s[p.pos]
	switch {
	case c >= 'A' && c <= 'Z':
		sym := string(c)
		p.pos++
		if p.pos < len(p.s) && p.s[p.pos] >= 'a' && p.s[p.pos] <= 'z' && p.s[p.pos] != 'h' {
			// Two-letter symbol; 'h' is never a symbol continuation here
			// because lone H-count specifiers follow the element directly.
			two := sym + string(p.s[p.pos])
			if isKnownTwoLetter(two) {
				sym = two
				p.pos++
			}
		}
		a.Element = sym
	case aromaticSymbols[c] != "":
		a.Element = aromaticSymbols[c]
		a.Aromatic = true
		p.pos++
	case c == 'H':
		// Bare bracket hydrogen, e.g. [H+].
		a.Element = "H"
		p.pos++
	default:
		return p.fail("invalid bracket atom symbol %q", c)
	}

	// Chirality markers, ignored.
	for p.pos < len(p.s) && p.s[p.pos] == '@' {
		p.pos++
	}

	// Hydrogen count.
	if p.pos < len(p.s) && p.s[p.pos] == 'H' && a.Element != "H" {
		p.pos++
		count := 1
		if p.pos < len(p.s) && isDigit(p.s[p.pos]) {
			count = int(p.s[p.pos] - '0')
			p.pos++
		}
		a.Hydrogens = count
	}

	// Formal charge: +, -, ++, --, +2, -3.
	if p.pos < len(p.s) && (p.s[p.pos] == '+' || p.s[p.pos] == '-') {
		sign := 1
		if p.s[p.pos] == '-' {
			sign = -1
		}
		mark := p.s[p.pos]
		magnitude := 1
		p.pos++
		if p.pos < len(p.s) && isDigit(p.s[p.pos]) {
			magnitude = int(p.s[p.pos] - '0')
			p.pos++
		} else {
			for p.pos < len(p.s) && p.s[p.pos] == mark {
				magnitude++
				p.pos++
			}
		}
		a.Charge = sign * magnitude
	}

	if p.pos >= len(p.s) || p.s[p.pos] != ']' {
		return p.fail("unterminated bracket atom")
	}
	p.pos++

	p.attach(a)
	return nil
}

// assignImplicitHydrogens fills the hydrogen count of every non-bracket atom
// from its standard valence minus its bond order sum.  Aromatic bonds count
// as 1.5; the arithmetic is doubled to stay in integers.
func (p *smilesParser) assignImplicitHydrogens() {
	for i := range p.g.atoms {
		a := &p.g.atoms[i]
		if a.hExplicit {
			continue
		}
		valence, ok := standardValence[a.Element]
		if !ok {
			continue
		}
		doubled := 0
		for _, bi := range p.g.adj[i] {
			b := p.g.bonds[bi]
			if b.Aromatic {
				doubled += 3
			} else {
				doubled += 2 * b.Order
			}
		}
		h := (2*valence - doubled) / 2
		if h < 0 {
			h = 0
		}
		a.Hydrogens = h
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// isKnownTwoLetter accepts the two-letter element symbols that appear in
// solvent and ionic-liquid structures.  Unknown symbols are still parsed as
// single letters so exotic bracket atoms degrade gracefully.
func isKnownTwoLetter(sym string) bool {
	switch sym {
	case "Cl", "Br", "Si", "Se", "Na", "Li", "Mg", "Ca", "Zn", "Al", "Fe", "Cu", "Sn":
		return true
	default:
		return false
	}
}
