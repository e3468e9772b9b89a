package hsp

import (
	"sort"

	"github.com/solventworks/hansen/internal/domain/chem"
	"github.com/solventworks/hansen/internal/infrastructure/monitoring/logging"
)

// ─────────────────────────────────────────────────────────────────────────────
// Greedy fragmenter
// ─────────────────────────────────────────────────────────────────────────────

// Fragment is one (group, count) pair of a fragmentation result.
type Fragment struct {
	Group Group
	Count int
}

// Fragmenter decomposes a molecule into functional group counts with no atom
// claimed twice.  Patterns are compiled once at construction; a Fragmenter is
// safe for concurrent use and must be Closed when no longer needed.
type Fragmenter struct {
	logger   logging.Logger
	engine   chem.Engine
	matchers []groupMatcher
	skipped  int
}

type groupMatcher struct {
	group   Group
	matcher chem.Matcher
}

// NewFragmenter compiles the built-in group catalog against the given engine.
// A group whose pattern fails to compile is logged at WARN and skipped; one
// bad pattern never aborts the table.
func NewFragmenter(engine chem.Engine, logger logging.Logger) *Fragmenter {
	return newFragmenter(engine, logger, defaultGroups)
}

func newFragmenter(engine chem.Engine, logger logging.Logger, groups []Group) *Fragmenter {
	f := &Fragmenter{logger: logger, engine: engine}

	ordered := make([]Group, len(groups))
	copy(ordered, groups)
	// Descending priority; equal priorities keep table order.
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	for _, g := range ordered {
		m, err := engine.CompileMatcher(g.Pattern)
		if err != nil {
			f.logger.Warn("skipping group with invalid pattern",
				logging.String("group", g.Name),
				logging.String("pattern", g.Pattern),
				logging.Err(err))
			f.skipped++
			continue
		}
		f.matchers = append(f.matchers, groupMatcher{group: g, matcher: m})
	}
	return f
}

// Fragment decomposes the connectivity string into (group, count) pairs.  It
// returns nil when the string is empty, unparseable, or no group matched:
// callers treat that as "method unavailable", never as an error.
//
// The pass is greedy: groups are evaluated high priority first and each match
// is accepted only if none of its atoms has already been claimed.  A rejected
// match gets no partial credit.
func (f *Fragmenter) Fragment(connectivity string) []Fragment {
	if connectivity == "" {
		return nil
	}
	g, err := f.engine.ParseGraph(connectivity)
	if err != nil {
		f.logger.Debug("connectivity string not parseable, no fragments",
			logging.String("connectivity", connectivity),
			logging.Err(err))
		return nil
	}
	g.AddHydrogens()

	consumed := make(map[int]bool)
	counts := make([]int, len(f.matchers))
	for i, gm := range f.matchers {
		for _, match := range gm.matcher.FindAll(g) {
			if overlaps(match, consumed) {
				continue
			}
			for _, idx := range match {
				consumed[idx] = true
			}
			counts[i]++
		}
	}

	var fragments []Fragment
	for i, n := range counts {
		if n > 0 {
			fragments = append(fragments, Fragment{Group: f.matchers[i].group, Count: n})
		}
	}
	return fragments
}

func overlaps(match []int, consumed map[int]bool) bool {
	for _, idx := range match {
		if consumed[idx] {
			return true
		}
	}
	return false
}

// SkippedPatterns reports how many catalog entries were dropped at
// construction because their pattern failed to compile.
func (f *Fragmenter) SkippedPatterns() int { return f.skipped }

// Close releases every compiled matcher.  Safe to call more than once.
func (f *Fragmenter) Close() {
	for _, gm := range f.matchers {
		gm.matcher.Close()
	}
}
