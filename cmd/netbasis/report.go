package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/netlp/netbasis"
	"github.com/katalvlaran/netlp/network"
)

// solution is the primal and dual state of a basis.
type solution struct {
	flows     []float64 // per sequence
	duals     []float64 // per row
	reduced   []float64 // per sequence, c - Aᵀy
	objective float64
	residual  float64 // ‖A·x - supply‖₂
}

// solve prices the basis: x_B by FTRAN of the supply, y by BTRAN of the
// basic costs.
func solve(p *problem, b *netbasis.Basis) (solution, error) {
	var s solution
	xB := append([]float64(nil), p.supply...)
	b.UpdateColumnDense(xB)
	x, err := p.basic.Scatter(xB)
	if err != nil {
		return s, fmt.Errorf("solve: %w", err)
	}

	y, err := p.basic.Costs(p.cost)
	if err != nil {
		return s, fmt.Errorf("solve: %w", err)
	}
	b.UpdateColumnTransposeDense(y)
	priced, err := p.matrix.TransMulVec(y)
	if err != nil {
		return s, fmt.Errorf("solve: %w", err)
	}
	reduced := make([]float64, len(priced))
	floats.SubTo(reduced, p.cost, priced)

	ax, err := p.matrix.MulVec(x)
	if err != nil {
		return s, fmt.Errorf("solve: %w", err)
	}
	floats.Sub(ax, p.supply)

	return solution{
		flows:     x,
		duals:     y,
		reduced:   reduced,
		objective: floats.Dot(p.cost, x),
		residual:  floats.Norm(ax, 2),
	}, nil
}

// report prints the solution of the current basis as two tables.
func report(out io.Writer, title string, p *problem, b *netbasis.Basis) error {
	s, err := solve(p, b)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "== %s ==\n", title)
	fmt.Fprintf(out, "objective %g  residual %g\n", s.objective, s.residual)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "seq\tarc\tposition\tflow\treduced")
	positions := make(map[int]int, b.Rows())
	for pos, seq := range p.basic.Pivots() {
		positions[seq] = pos
	}
	for seq := range s.flows {
		a, err := p.matrix.Arc(seq)
		if err != nil {
			return err
		}
		pos := "-"
		if k, ok := positions[seq]; ok {
			pos = fmt.Sprint(k)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%g\t%g\n", seq, arcName(a, p.matrix.IsSlack(seq)), pos, s.flows[seq], s.reduced[seq])
	}
	fmt.Fprintln(tw, "\nrow\tdual\tparent\tdepth")
	for r, y := range s.duals {
		fmt.Fprintf(tw, "%d\t%g\t%s\t%d\n", r, y, nodeName(b, b.Parent(r)), b.Depth(r))
	}

	return tw.Flush()
}

func arcName(a network.Arc, slack bool) string {
	if slack {
		return fmt.Sprintf("slack %d", a.To)
	}

	return fmt.Sprintf("%s→%s", endName(a.From), endName(a.To))
}

func endName(r int) string {
	if r == network.Root {
		return "root"
	}

	return fmt.Sprint(r)
}

func nodeName(b *netbasis.Basis, v int) string {
	if v == b.Root() {
		return "root"
	}

	return fmt.Sprint(v)
}
