// Command netbasis loads a network linear program and a starting basis from
// a config file, reports flows, duals and reduced costs through the tree
// basis, then applies the listed pivots and reports after each one.
//
// Usage:
//
//	netbasis -c problem.yaml [--log.level debug] [--checks]
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/netlp/netbasis"
	"github.com/katalvlaran/netlp/network"
	"github.com/katalvlaran/netlp/sparse"
)

func main() {
	flags := pflag.NewFlagSet("netbasis", pflag.ExitOnError)
	path := flags.StringP("config", "c", "", "problem file (yaml, json or toml)")
	flags.String("log.level", "info", "trace, debug, info, warn or error")
	flags.Bool("checks", false, "validate the basis after every pivot")
	_ = flags.Parse(os.Args[1:]) // ExitOnError

	if *path == "" {
		fmt.Fprintln(os.Stderr, "usage: netbasis -c problem.yaml")
		flags.PrintDefaults()
		os.Exit(2)
	}
	cfg := NewConfig()
	if err := cfg.BindFlags(flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := cfg.LoadFromFile(*path); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := cfg.CreateLogger(os.Stderr)
	if err := run(cfg, log, os.Stdout); err != nil {
		log.Fatal().Err(err).Str("config", *path).Msg("run failed")
	}
}

// problem is a network LP with its current basis.
type problem struct {
	matrix *network.Matrix
	basic  *network.Basic
	supply []float64 // per row
	cost   []float64 // per sequence, slacks included
}

// loadProblem builds the matrix and basis described by cfg. An empty basis
// list starts from all slacks.
func loadProblem(cfg *Config) (*problem, error) {
	arcs, err := cfg.Arcs()
	if err != nil {
		return nil, err
	}
	m, err := network.NewMatrix(cfg.Rows(), arcs)
	if err != nil {
		return nil, err
	}
	p := &problem{matrix: m, basic: network.SlackBasis(m)}
	if pivots := cfg.Basis(); len(pivots) > 0 {
		if p.basic, err = network.NewBasic(m, pivots); err != nil {
			return nil, err
		}
	}

	if p.supply, err = cfg.Supply(); err != nil {
		return nil, err
	}
	if p.supply == nil {
		p.supply = make([]float64, m.Rows())
	}
	if len(p.supply) != m.Rows() {
		return nil, fmt.Errorf("supply: %d values for %d rows: %w", len(p.supply), m.Rows(), network.ErrDimensionMismatch)
	}

	cost, err := cfg.Cost()
	if err != nil {
		return nil, err
	}
	if len(cost) != m.Columns() && len(cost) != m.Sequences() && len(cost) != 0 {
		return nil, fmt.Errorf("cost: %d values for %d arcs: %w", len(cost), m.Columns(), network.ErrDimensionMismatch)
	}
	p.cost = make([]float64, m.Sequences())
	copy(p.cost, cost)

	return p, nil
}

// run bootstraps the tree basis, reports, and applies the configured pivots.
func run(cfg *Config, log zerolog.Logger, out io.Writer) error {
	p, err := loadProblem(cfg)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	pivots, err := cfg.Pivots()
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	rows := p.matrix.Rows()
	b, err := netbasis.Bootstrap(p.basic, rows,
		netbasis.WithLogger(log),
		netbasis.WithChecks(cfg.Checks()))
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	log.Info().
		Int("rows", rows).
		Int("arcs", p.matrix.Columns()).
		Ints("basis", p.basic.Pivots()).
		Msg("basis ready")

	if err = report(out, "initial basis", p, b); err != nil {
		return err
	}

	region, err := sparse.NewIndexed(rows)
	if err != nil {
		return err
	}
	for i, pv := range pivots {
		if pv.Enter >= 0 && pv.Enter < p.basic.Sequences() && p.basic.IsBasic(pv.Enter) {
			return fmt.Errorf("pivot %d: sequence %d: %w", i+1, pv.Enter, network.ErrDuplicateBasic)
		}
		leave := -1
		if pv.Position >= 0 && pv.Position < rows {
			leave = p.basic.PivotVariable(pv.Position)
		}
		if err = b.ReplaceColumn(region, pv.Enter, pv.Position); err != nil {
			return fmt.Errorf("pivot %d: %w", i+1, err)
		}
		if err = p.basic.SetPivotVariable(pv.Position, pv.Enter); err != nil {
			return fmt.Errorf("pivot %d: %w", i+1, err)
		}
		log.Info().
			Int("enter", pv.Enter).
			Int("leave", leave).
			Int("position", pv.Position).
			Msg("pivot applied")
		if err = report(out, fmt.Sprintf("after pivot %d", i+1), p, b); err != nil {
			return err
		}
	}

	return nil
}
