package chem

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_SingleInstance(t *testing.T) {
	const goroutines = 16

	var wg sync.WaitGroup
	engines := make([]Engine, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			engines[i] = Default()
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Equal(t, engines[0], engines[i])
	}
}

func TestEngine_ConcurrentMatching(t *testing.T) {
	engine := Default()
	m, err := engine.CompileMatcher("[OH]")
	require.NoError(t, err)
	defer m.Close()

	g, err := engine.ParseGraph("OCCO") // ethylene glycol
	require.NoError(t, err)
	g.AddHydrogens()

	// A compiled matcher carries no per-call state and may be shared.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Len(t, m.FindAll(g), 2)
		}()
	}
	wg.Wait()
}

func TestEngine_PatternAccessor(t *testing.T) {
	m, err := NewEngine().CompileMatcher("C(=O)[OH]")
	require.NoError(t, err)
	defer m.Close()
	assert.Equal(t, "C(=O)[OH]", m.Pattern())
}
