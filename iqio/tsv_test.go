package iqio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/roseopicta/cvqkd-iq-synth/iq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSymbolTrace_OneLinePerSymbol(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tsv")
	symbols := []iq.Symbol{{I: 12, Q: -34}, {I: 0, Q: 0}}
	require.NoError(t, WriteSymbolTrace(path, symbols))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "12\t-34\n0\t0\n", string(data))
}

func TestWriteSymbolTrace_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.tsv")
	require.NoError(t, WriteSymbolTrace(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}
