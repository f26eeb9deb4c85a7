package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aclements/go-censored/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDist(t *testing.T) {
	for in, want := range map[string]stats.Dist{
		"gamma:2,1":          stats.Gamma{Shape: 2, Rate: 1},
		"Exponential:0.5":    stats.Exponential{Rate: 0.5},
		"uniform:0, 1":       stats.Uniform{Min: 0, Max: 1},
		"lognormal:1.5,0.75": stats.LogNormal{Mu: 1.5, Sigma: 0.75},
		"weibull:1.5,2":      stats.Weibull{K: 1.5, Lambda: 2},
		"normal:0,1":         stats.Normal{Mu: 0, Sigma: 1},
		"expgrowth:0,1,0.2":  stats.ExpGrowth{Min: 0, Max: 1, R: 0.2},
	} {
		got, err := parseDist(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"gamma", "gamma:2", "gamma:2,x", "cauchy:0,1", ""} {
		_, err := parseDist(in)
		assert.Error(t, err, in)
	}
}

func TestLoadModel(t *testing.T) {
	m, err := loadModel(strings.NewReader(`
delay: gamma:2,1
primary: uniform:0,1
lower: 1
upper: 8
interval: 0.5
`))
	require.NoError(t, err)
	assert.Equal(t, model{Delay: "gamma:2,1", Primary: "uniform:0,1", Lower: 1, Upper: 8, Interval: 0.5}, m)

	d, err := m.build()
	require.NoError(t, err)
	min, max := d.Support()
	assert.Equal(t, 1.0, min)
	assert.Equal(t, 8.0, max)
	assert.Equal(t, []float64{2, 1, 0, 1, 0.5}, d.Params())

	_, err = loadModel(strings.NewReader("delay: gamma:2,1\nwindow: 3\n"))
	assert.Error(t, err, "unknown key")
}

func TestBuildErrors(t *testing.T) {
	_, err := model{}.build()
	assert.Error(t, err)

	_, err = model{Delay: "gamma:2,1", Interval: 1, Breakpoints: []float64{0, 1}}.build()
	assert.ErrorIs(t, err, stats.ErrConflictingGrid)

	_, err = model{Delay: "gamma:2,1", Primary: "exponential:1"}.build()
	assert.ErrorIs(t, err, stats.ErrUnboundedPrimary)

	_, err = model{Delay: "gamma:2,1", Primary: "uniform"}.build()
	assert.Error(t, err)
}

func TestPrintTable(t *testing.T) {
	d, err := model{Delay: "exponential:1", Interval: 1}.build()
	require.NoError(t, err)
	xs, err := readInput(strings.NewReader("0\n\n1.5\n 3 \n"))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1.5, 3}, xs)

	var buf bytes.Buffer
	printTable(&buf, d, xs)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"x", "pmf", "cdf", "logcdf", "logccdf"}, strings.Fields(lines[0]))
	assert.Equal(t, "1.5", strings.Fields(lines[2])[0])

	_, err = readInput(strings.NewReader("1\nx\n"))
	assert.Error(t, err)
}

func TestPrintTableContinuous(t *testing.T) {
	d, err := model{Delay: "gamma:2,1", Lower: 1, Upper: 8}.build()
	require.NoError(t, err)
	var buf bytes.Buffer
	printTable(&buf, d, []float64{2})
	assert.Equal(t, "pdf", strings.Fields(buf.String())[1])
}
