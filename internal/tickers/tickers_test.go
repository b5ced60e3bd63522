package tickers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadParsesList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empresas.txt")
	content := "AAPL\n\n# watchlist below\n  MSFT  \n#GOOG\nACME\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	list, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "MSFT", "ACME"}, list)
}

func TestLoadMissingFileYieldsEmptyList(t *testing.T) {
	list, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.NoError(t, err)
	assert.Empty(t, list)
}
