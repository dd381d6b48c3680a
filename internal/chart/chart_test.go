package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/hashdist/hashdist/internal/analyzer"
	"github.com/hashdist/hashdist/pkg/hashfn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult(t *testing.T) *analyzer.Result {
	r, err := analyzer.Analyze([]string{"cat", "dog", "bird", "fish", "owl"}, "loselose", hashfn.LoseLose, 26, 5)
	require.NoError(t, err)
	return r
}

func TestNewPicksRenderer(t *testing.T) {
	opts := NewOptions()
	_, ok := New(opts).(*terminal)
	assert.True(t, ok)

	opts.Output = "chart.png"
	_, ok = New(opts).(*image)
	assert.True(t, ok)
}

func TestTerminalRender(t *testing.T) {
	color.NoColor = true
	r := testResult(t)

	var buf bytes.Buffer
	opts := NewOptions()
	opts.Writer = &buf
	opts.Width = 20
	require.NoError(t, New(opts).Render(r))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, len(r.Histogram)+2)
	assert.Equal(t, r.Title(), lines[0])
	assert.Contains(t, lines[1], xLabel)
	assert.Contains(t, lines[1], yLabel)
	for i, rg := range r.Histogram {
		assert.True(t, strings.HasPrefix(lines[i+2], rg.Label), lines[i+2])
	}
	// 最大的一段柱子占满宽度
	assert.Contains(t, out, strings.Repeat("█", 20))
}

func TestImageRender(t *testing.T) {
	r := testResult(t)
	opts := NewOptions()
	opts.Output = filepath.Join(t.TempDir(), "chart.svg")
	require.NoError(t, New(opts).Render(r))

	data, err := os.ReadFile(opts.Output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}
