package monitor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashdist/hashdist/internal/analyzer"
	"github.com/hashdist/hashdist/pkg/hashfn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	r, err := analyzer.Analyze([]string{"a", "a", "b"}, "loselose", hashfn.LoseLose, 10, 5)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "hashdist.prom")
	require.NoError(t, Export(path, r))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `hashdist_collisions{hash="loselose"} 2`)
	assert.Contains(t, out, `hashdist_words{hash="loselose"} 3`)
	assert.Contains(t, out, `hashdist_buckets_used{hash="loselose"} 2`)
	assert.Contains(t, out, `hashdist_range_occurrences{hash="loselose",range="5-10"} 3`)
}

func TestExportDisabled(t *testing.T) {
	assert.NoError(t, Export(""))
}
