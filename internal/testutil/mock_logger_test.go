package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solventworks/hansen/internal/infrastructure/monitoring/logging"
)

func TestMockLogger_CapturesLevels(t *testing.T) {
	m := NewMockLogger()

	m.Debug("d")
	m.Info("i", logging.String("k", "v"))
	m.Warn("w")
	m.Error("e")

	require.Len(t, m.Messages(), 4)
	assert.Len(t, m.MessagesAt("warn"), 1)
	assert.Equal(t, "i", m.MessagesAt("info")[0].Message)
	assert.Equal(t, "v", m.MessagesAt("info")[0].Fields[0].Value)
}

func TestMockLogger_WithAndNamedChain(t *testing.T) {
	m := NewMockLogger()

	m.Named("sub").With(logging.Int("n", 1)).Info("chained")
	require.Len(t, m.Messages(), 1)
}

func TestMockLogger_Reset(t *testing.T) {
	m := NewMockLogger()
	m.Info("x")
	m.Reset()
	assert.Empty(t, m.Messages())
}
