package netbasis

import (
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Check validates the forest and the workspace:
//   - parent[root] = -1, depth[root] = -1, every other parent in [0, root];
//   - each child list is doubly linked and matches parent;
//   - depth[v] = depth[parent[v]]+1 and every node hangs below the root;
//   - sign[v] is ±1;
//   - permute and permuteBack are inverse permutations of [0, Rows());
//   - the workspace is clean.
//
// Complexity: O(Rows() + workspace size).
func (b *Basis) Check() error {
	root := b.rows
	if b.parent[root] != -1 || b.depth[root] != -1 {
		return fmt.Errorf("Check: root parent=%d depth=%d: %w", b.parent[root], b.depth[root], ErrCorrupt)
	}
	for v := 0; v < b.rows; v++ {
		p := b.parent[v]
		if p < 0 || p > root || p == v {
			return fmt.Errorf("Check: parent[%d]=%d: %w", v, p, ErrCorrupt)
		}
		if b.depth[v] != b.depth[p]+1 {
			return fmt.Errorf("Check: depth[%d]=%d, parent depth %d: %w", v, b.depth[v], b.depth[p], ErrCorrupt)
		}
		if b.sign[v] != 1 && b.sign[v] != -1 {
			return fmt.Errorf("Check: sign[%d]=%g: %w", v, b.sign[v], ErrCorrupt)
		}
		back := b.permuteBack[v]
		if back < 0 || back >= b.rows || b.permute[back] != v {
			return fmt.Errorf("Check: permuteBack[%d]=%d not inverted by permute: %w", v, back, ErrCorrupt)
		}
	}

	reached := 0
	for v := 0; v <= root; v++ {
		left := -1
		for c := b.descendant[v]; c >= 0; c = b.rightSibling[c] {
			if b.parent[c] != v || b.leftSibling[c] != left {
				return fmt.Errorf("Check: child %d of %d has parent %d, left %d: %w",
					c, v, b.parent[c], b.leftSibling[c], ErrCorrupt)
			}
			left = c
			reached++
			if reached > b.rows {
				return fmt.Errorf("Check: sibling lists loop: %w", ErrCorrupt)
			}
		}
	}
	if reached != b.rows {
		return fmt.Errorf("Check: %d of %d nodes listed as children: %w", reached, b.rows, ErrCorrupt)
	}
	if err := b.ws.Check(); err != nil {
		return fmt.Errorf("Check: %w", err)
	}

	return nil
}

// Dense reconstructs B (Rows()×Rows()) from the forest: column
// PositionOf(v) has Sign(v) in row v and -Sign(v) in row Parent(v) unless the
// parent is the root. Returns nil for an empty basis.
func (b *Basis) Dense() *mat.Dense {
	if b.rows == 0 {
		return nil
	}
	d := mat.NewDense(b.rows, b.rows, nil)
	for v := 0; v < b.rows; v++ {
		col := b.permuteBack[v]
		d.Set(v, col, b.sign[v])
		if p := b.parent[v]; p != b.rows {
			d.Set(p, col, -b.sign[v])
		}
	}

	return d
}

// Dump writes one line per node, root last:
// node, parent, first child, left and right sibling, sign, depth, position.
func (b *Basis) Dump(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "       parent descendant     left    right   sign    depth  position"); err != nil {
		return err
	}
	for i := 0; i <= b.rows; i++ {
		pos := -1
		if i < b.rows {
			pos = b.permuteBack[i]
		}
		if _, err := fmt.Fprintf(w, "%4d  %7d   %8d  %7d  %7d  %5g  %7d  %8d\n",
			i, b.parent[i], b.descendant[i], b.leftSibling[i], b.rightSibling[i],
			b.sign[i], b.depth[i], pos); err != nil {
			return err
		}
	}

	return nil
}

// String returns the Dump table.
func (b *Basis) String() string {
	var sb strings.Builder
	_ = b.Dump(&sb) // strings.Builder never fails

	return sb.String()
}
