// SPDX-License-Identifier: MIT
// Package netbasis: the spanning-forest basis and its constructors.
//
// Representation (n = Rows(), root = n):
//
//	parent[v]        tree parent of node v; parent[root] = -1
//	descendant[v]    first child of v, -1 if none
//	left/rightSibling  doubly linked child list of parent[v]
//	sign[v]          ±1, coefficient of the arc at v in row v
//	depth[v]         hops to the root minus one; depth[root] = -1
//	permuteBack[v]   basis position of the arc stored at v
//	permute[p]       node holding basis position p
//
// The basis column at position permuteBack[v] has +sign[v] in row v and
// -sign[v] in row parent[v] (no entry when the parent is the root).

package netbasis

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/netlp/sparse"
)

// Model supplies column patterns to the basis.
type Model interface {
	// Unpack adds the column of sequence seq into dst (row indexed).
	Unpack(dst *sparse.Indexed, seq int) error
	// PivotVariable returns the sequence basic at position.
	PivotVariable(position int) int
}

// Factorization is the output of a general factorization whose basis turned
// out to be a network. Position i pivots on row PermuteBack[i]; its column
// lists its other row (if any) at IndexRow[StartColumn[i]] in position space.
type Factorization struct {
	PivotRegion    []float64 // pivot value of position i; its sign is the arc sign
	PermuteBack    []int     // position → pivot row
	StartColumn    []int     // start of position i in IndexRow
	NumberInColumn []int     // 0 (root arc) or 1
	IndexRow       []int     // other-end position of each column
}

// Basis is a network basis of a fixed number of rows.
type Basis struct {
	rows int

	parent       []int
	descendant   []int
	leftSibling  []int
	rightSibling []int
	depth        []int
	sign         []float64
	permute      []int
	permuteBack  []int

	model  Model
	ws     *Workspace
	log    zerolog.Logger
	checks bool
}

// newBasis allocates an empty forest with identity position mapping.
func newBasis(model Model, rows int, o options) *Basis {
	b := &Basis{
		rows:         rows,
		parent:       make([]int, rows+1),
		descendant:   make([]int, rows+1),
		leftSibling:  make([]int, rows+1),
		rightSibling: make([]int, rows+1),
		depth:        make([]int, rows+1),
		sign:         make([]float64, rows+1),
		permute:      make([]int, rows+1),
		permuteBack:  make([]int, rows+1),
		model:        model,
		ws:           o.workspace,
		log:          o.logger,
		checks:       o.checks,
	}
	for i := 0; i <= rows; i++ {
		b.parent[i] = -1
		b.descendant[i] = -1
		b.leftSibling[i] = -1
		b.rightSibling[i] = -1
		b.depth[i] = -1
		b.sign[i] = 1
		b.permute[i] = i
		b.permuteBack[i] = i
	}
	b.ws.Reserve(rows + 1)

	return b
}

// NewFromFactorization builds the forest from factorization output.
// Stage 1 (Validate): slice lengths, PermuteBack is a permutation, column
// references in range.
// Stage 2 (Link): node PermuteBack[i] hangs under PermuteBack[IndexRow[...]]
// or the root, with the sign of PivotRegion[i].
// Stage 3 (Depth): relabel depths from the root; unreachable nodes mean a cycle.
// Positions map to nodes by identity.
// Errors: ErrDimensionMismatch, ErrNotATree.
func NewFromFactorization(model Model, f Factorization, opts ...Option) (*Basis, error) {
	rows := len(f.PivotRegion)
	if len(f.PermuteBack) != rows || len(f.StartColumn) != rows || len(f.NumberInColumn) != rows {
		return nil, fmt.Errorf("NewFromFactorization: lengths %d/%d/%d/%d: %w",
			rows, len(f.PermuteBack), len(f.StartColumn), len(f.NumberInColumn), ErrDimensionMismatch)
	}
	seen := make([]bool, rows)
	for i, r := range f.PermuteBack {
		if r < 0 || r >= rows || seen[r] {
			return nil, fmt.Errorf("NewFromFactorization: PermuteBack[%d]=%d: %w", i, r, ErrNotATree)
		}
		seen[r] = true
	}

	b := newBasis(model, rows, gatherOptions(opts))
	root := rows
	for i := rows - 1; i >= 0; i-- {
		node := f.PermuteBack[i]
		other := root
		if f.NumberInColumn[i] > 0 {
			start := f.StartColumn[i]
			if start < 0 || start >= len(f.IndexRow) {
				return nil, fmt.Errorf("NewFromFactorization: StartColumn[%d]=%d: %w", i, start, ErrDimensionMismatch)
			}
			k := f.IndexRow[start]
			if k < 0 || k >= rows {
				return nil, fmt.Errorf("NewFromFactorization: IndexRow[%d]=%d: %w", start, k, ErrNotATree)
			}
			other = f.PermuteBack[k]
		}
		if other == node {
			return nil, fmt.Errorf("NewFromFactorization: node %d is its own parent: %w", node, ErrNotATree)
		}
		sign := -1.0
		if f.PivotRegion[i] > 0 {
			sign = 1
		}
		b.attach(node, other, sign)
	}
	if err := b.relabel(); err != nil {
		return nil, fmt.Errorf("NewFromFactorization: %w", err)
	}

	return b, nil
}

// NewFromForest builds a basis from explicit parent links and signs.
// parent[v] is a node in [0, len(parent)) or -1 / len(parent) for the root.
// Node v holds basis position v.
// Errors: ErrNotATree, ErrInvalidSign, ErrDimensionMismatch.
func NewFromForest(model Model, parent []int, sign []float64, opts ...Option) (*Basis, error) {
	rows := len(parent)
	if len(sign) != rows {
		return nil, fmt.Errorf("NewFromForest: %d parents, %d signs: %w", rows, len(sign), ErrDimensionMismatch)
	}
	b := newBasis(model, rows, gatherOptions(opts))
	for v := rows - 1; v >= 0; v-- {
		p := parent[v]
		if p == -1 {
			p = rows
		}
		if p < 0 || p > rows || p == v {
			return nil, fmt.Errorf("NewFromForest: parent[%d]=%d: %w", v, parent[v], ErrNotATree)
		}
		if sign[v] != 1 && sign[v] != -1 {
			return nil, fmt.Errorf("NewFromForest: sign[%d]=%g: %w", v, sign[v], ErrInvalidSign)
		}
		b.attach(v, p, sign[v])
	}
	if err := b.relabel(); err != nil {
		return nil, fmt.Errorf("NewFromForest: %w", err)
	}

	return b, nil
}

// Bootstrap builds the basis of rows rows from the columns basic at every
// position of model, walking the graph they induce breadth first from the
// root.
// Errors: ErrNotNetworkColumn, ErrSingularBasis, model errors.
// Complexity: O(rows).
func Bootstrap(model Model, rows int, opts ...Option) (*Basis, error) {
	if rows < 0 {
		return nil, fmt.Errorf("Bootstrap: rows=%d: %w", rows, ErrDimensionMismatch)
	}
	b := newBasis(model, rows, gatherOptions(opts))
	root := rows

	region, err := sparse.NewIndexed(rows)
	if err != nil {
		return nil, fmt.Errorf("Bootstrap: %w", err)
	}
	ends := make([][2]int, rows)
	coef := make([]float64, rows) // coefficient at ends[p][0]
	adjacent := make([][]int, rows+1)
	for p := 0; p < rows; p++ {
		seq := model.PivotVariable(p)
		if err = model.Unpack(region, seq); err != nil {
			return nil, fmt.Errorf("Bootstrap: position %d: %w", p, err)
		}
		r0, r1, c0, err := networkColumn(region, root)
		region.Clear()
		if err != nil {
			return nil, fmt.Errorf("Bootstrap: position %d seq %d: %w", p, seq, err)
		}
		ends[p] = [2]int{r0, r1}
		coef[p] = c0
		adjacent[r0] = append(adjacent[r0], p)
		adjacent[r1] = append(adjacent[r1], p)
	}

	visited := make([]bool, rows+1)
	used := make([]bool, rows)
	visited[root] = true
	queue := []int{root}
	reached := 0
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, p := range adjacent[v] {
			if used[p] {
				continue
			}
			used[p] = true
			u, c := ends[p][1], -coef[p]
			if u == v {
				u, c = ends[p][0], coef[p]
			}
			if visited[u] {
				return nil, fmt.Errorf("Bootstrap: position %d closes a cycle at row %d: %w", p, u, ErrSingularBasis)
			}
			visited[u] = true
			reached++
			b.attach(u, v, c)
			b.permuteBack[u] = p
			b.permute[p] = u
			queue = append(queue, u)
		}
	}
	if reached != rows {
		return nil, fmt.Errorf("Bootstrap: %d of %d rows reachable: %w", reached, rows, ErrSingularBasis)
	}
	if err = b.relabel(); err != nil {
		return nil, fmt.Errorf("Bootstrap: %w", err)
	}

	return b, nil
}

// networkColumn reads a unit network column from region: the first row, the
// second row (root for a single entry) and the coefficient at the first.
func networkColumn(region *sparse.Indexed, root int) (int, int, float64, error) {
	idx := region.Indices()
	switch len(idx) {
	case 1:
		c := region.Value(idx[0])
		if c != 1 && c != -1 {
			return 0, 0, 0, fmt.Errorf("coefficient %g: %w", c, ErrNotNetworkColumn)
		}
		if idx[0] >= root {
			return 0, 0, 0, fmt.Errorf("row %d: %w", idx[0], ErrNotNetworkColumn)
		}

		return idx[0], root, c, nil
	case 2:
		c0, c1 := region.Value(idx[0]), region.Value(idx[1])
		if (c0 != 1 && c0 != -1) || c1 != -c0 {
			return 0, 0, 0, fmt.Errorf("coefficients %g,%g: %w", c0, c1, ErrNotNetworkColumn)
		}
		if idx[0] >= root || idx[1] >= root {
			return 0, 0, 0, fmt.Errorf("rows %d,%d: %w", idx[0], idx[1], ErrNotNetworkColumn)
		}

		return idx[0], idx[1], c0, nil
	default:
		return 0, 0, 0, fmt.Errorf("%d entries: %w", len(idx), ErrNotNetworkColumn)
	}
}

// attach makes node the first child of parent.
func (b *Basis) attach(node, parent int, sign float64) {
	b.parent[node] = parent
	b.sign[node] = sign
	b.leftSibling[node] = -1
	first := b.descendant[parent]
	b.rightSibling[node] = first
	if first >= 0 {
		b.leftSibling[first] = node
	}
	b.descendant[parent] = node
}

// detach removes node from its parent's child list.
func (b *Basis) detach(node int) {
	left, right := b.leftSibling[node], b.rightSibling[node]
	if left < 0 {
		b.descendant[b.parent[node]] = right
	} else {
		b.rightSibling[left] = right
	}
	if right >= 0 {
		b.leftSibling[right] = left
	}
	b.leftSibling[node] = -1
	b.rightSibling[node] = -1
}

// relabel recomputes every depth from the root and reports nodes the root
// cannot reach.
func (b *Basis) relabel() error {
	root := b.rows
	b.depth[root] = -1
	if reached := b.relabelBelow(root); reached != b.rows {
		return fmt.Errorf("%d of %d nodes reach the root: %w", reached, b.rows, ErrNotATree)
	}

	return nil
}

// relabelBelow sets depth[c] = depth[parent[c]]+1 for every strict
// descendant of top and returns how many it visited.
func (b *Basis) relabelBelow(top int) int {
	stack := append(b.ws.stack[:0], top)
	visited := 0
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for c := b.descendant[v]; c >= 0; c = b.rightSibling[c] {
			b.depth[c] = b.depth[v] + 1
			visited++
			stack = append(stack, c)
		}
	}
	b.ws.stack = stack[:0]

	return visited
}

// Clone returns a deep copy sharing the model, workspace and logger.
func (b *Basis) Clone() *Basis {
	c := *b
	c.parent = append([]int(nil), b.parent...)
	c.descendant = append([]int(nil), b.descendant...)
	c.leftSibling = append([]int(nil), b.leftSibling...)
	c.rightSibling = append([]int(nil), b.rightSibling...)
	c.depth = append([]int(nil), b.depth...)
	c.sign = append([]float64(nil), b.sign...)
	c.permute = append([]int(nil), b.permute...)
	c.permuteBack = append([]int(nil), b.permuteBack...)

	return &c
}

// Rows returns the number of rows (tree nodes other than the root).
func (b *Basis) Rows() int { return b.rows }

// Root returns the id of the virtual root node, Rows().
func (b *Basis) Root() int { return b.rows }

// Parent returns the parent of node, or -1 for the root.
func (b *Basis) Parent(node int) int { return b.parent[node] }

// Depth returns the depth of node; children of the root have depth 0.
func (b *Basis) Depth(node int) int { return b.depth[node] }

// Sign returns the ±1 orientation of the arc stored at node.
func (b *Basis) Sign(node int) float64 { return b.sign[node] }

// Children returns the children of node in sibling order.
func (b *Basis) Children(node int) []int {
	var out []int
	for c := b.descendant[node]; c >= 0; c = b.rightSibling[c] {
		out = append(out, c)
	}

	return out
}

// PositionOf returns the basis position of the arc stored at node.
func (b *Basis) PositionOf(node int) int { return b.permuteBack[node] }

// NodeAt returns the node whose arc occupies basis position.
func (b *Basis) NodeAt(position int) int { return b.permute[position] }

// Workspace returns the scratch storage in use.
func (b *Basis) Workspace() *Workspace { return b.ws }
