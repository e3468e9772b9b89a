package chem

import "sync"

// Engine is the capability surface the rest of the engine depends on.  The
// in-memory implementation below is pure Go; a native toolkit binding can be
// substituted behind the same interface.
type Engine interface {
	// ParseGraph parses a connectivity string into a Graph.
	ParseGraph(connectivity string) (*Graph, error)

	// CompileMatcher compiles a substructure pattern.  Callers own the
	// returned Matcher and must Close it when done.
	CompileMatcher(pattern string) (Matcher, error)
}

// Matcher locates occurrences of a compiled pattern in a graph.
type Matcher interface {
	// FindAll returns each occurrence as a sorted atom-index set.  Order is
	// deterministic for a given graph; an empty slice means no occurrence.
	FindAll(g *Graph) [][]int

	// Pattern returns the source pattern string.
	Pattern() string

	// Close releases any resources held by the matcher.  Safe to call more
	// than once.
	Close()
}

type inMemoryEngine struct{}

func (inMemoryEngine) ParseGraph(connectivity string) (*Graph, error) {
	return ParseSMILES(connectivity)
}

func (inMemoryEngine) CompileMatcher(pattern string) (Matcher, error) {
	return compilePattern(pattern)
}

// NewEngine returns a fresh, stateless in-memory engine.  Prefer Default()
// unless a test needs an isolated instance.
func NewEngine() Engine { return inMemoryEngine{} }

var (
	defaultOnce   sync.Once
	defaultEngine Engine
)

// Default returns the process-wide engine instance.  Initialisation is lazy
// and happens at most once; concurrent first callers all receive the same
// instance.
func Default() Engine {
	defaultOnce.Do(func() {
		defaultEngine = NewEngine()
	})
	return defaultEngine
}
