package main

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netlp/netbasis"
	"github.com/katalvlaran/netlp/network"
)

func loadChain(t *testing.T) *Config {
	t.Helper()
	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromFile("testdata/chain.yaml"))

	return cfg
}

func TestConfig_Load(t *testing.T) {
	cfg := loadChain(t)
	require.Equal(t, 3, cfg.Rows())
	require.Equal(t, []int{0, 1, 2}, cfg.Basis())
	require.True(t, cfg.Checks())
	require.Equal(t, "warn", cfg.LogLevel())

	arcs, err := cfg.Arcs()
	require.NoError(t, err)
	require.Equal(t, network.Arc{From: network.Root, To: 0}, arcs[0])
	require.Len(t, arcs, 4)

	pivots, err := cfg.Pivots()
	require.NoError(t, err)
	require.Equal(t, []pivotConfig{{Enter: 3, Position: 2}}, pivots)
}

func TestConfig_EnvOverridesDefault(t *testing.T) {
	t.Setenv("NETBASIS_LOG_LEVEL", "debug")
	cfg := NewConfig()
	require.Equal(t, "debug", cfg.LogLevel())
	require.Equal(t, zerolog.DebugLevel, cfg.CreateLogger(&bytes.Buffer{}).GetLevel())
}

func TestSolve_ChainBasis(t *testing.T) {
	p, err := loadProblem(loadChain(t))
	require.NoError(t, err)
	b, err := netbasis.Bootstrap(p.basic, 3, netbasis.WithChecks(true))
	require.NoError(t, err)

	s, err := solve(p, b)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 5, 3, 0, 0, 0, 0}, s.flows)
	require.Equal(t, []float64{1, 3, 5}, s.duals)
	require.Equal(t, []float64{0, 0, 0, -1, -1, -3, -5}, s.reduced)
	require.Equal(t, 21.0, s.objective)
	require.Zero(t, s.residual)
}

func TestRun_AppliesPivots(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(loadChain(t), zerolog.Nop(), &out))
	text := out.String()
	require.Contains(t, text, "== initial basis ==\nobjective 21  residual 0\n")
	require.Contains(t, text, "== after pivot 1 ==\nobjective 18  residual 0\n")
}

func TestRun_RejectsBadPivots(t *testing.T) {
	cfg := loadChain(t)
	cfg.Set("pivots", []map[string]int{{"enter": 0, "position": 1}})
	require.ErrorIs(t, run(cfg, zerolog.Nop(), &bytes.Buffer{}), network.ErrDuplicateBasic)

	cfg.Set("pivots", []map[string]int{{"enter": 3, "position": 0}})
	require.ErrorIs(t, run(cfg, zerolog.Nop(), &bytes.Buffer{}), netbasis.ErrPivotNotOnPath)

	cfg.Set("pivots", []map[string]int{{"enter": 3, "position": 7}})
	require.ErrorIs(t, run(cfg, zerolog.Nop(), &bytes.Buffer{}), netbasis.ErrPositionOutOfRange)
}

func TestLoadProblem_Validation(t *testing.T) {
	cfg := loadChain(t)
	cfg.Set("supply", []float64{1})
	_, err := loadProblem(cfg)
	require.ErrorIs(t, err, network.ErrDimensionMismatch)

	cfg = loadChain(t)
	cfg.Set("basis", []int{0, 1, 3, 2})
	_, err = loadProblem(cfg)
	require.ErrorIs(t, err, network.ErrDimensionMismatch)

	cfg = loadChain(t)
	cfg.Set("arcs", []map[string]int{{"from": 0, "to": 0}})
	_, err = loadProblem(cfg)
	require.ErrorIs(t, err, network.ErrLoop)
}
