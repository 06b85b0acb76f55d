package netbasis

import "fmt"

// Workspace holds the scratch arrays of FTRAN, BTRAN and ReplaceColumn.
// Between calls mark is all false, head is all -1 and dense is all zero.
// One workspace may serve several bases used sequentially; it is not safe
// for concurrent use.
type Workspace struct {
	mark  []bool    // per node: already bucketed
	link  []int     // per node: next node in the same depth bucket
	head  []int     // per depth: first node of the bucket, -1 when empty
	dense []float64 // per node, root included: accumulated values

	list  []int // active nodes of a solve, relinked chain of a pivot
	stack []int // depth relabelling
}

// NewWorkspace returns a clean workspace for bases with up to size-1 rows.
func NewWorkspace(size int) *Workspace {
	w := &Workspace{}
	w.Reserve(size)

	return w
}

// Size returns the number of node slots (rows+1 of the largest basis served).
func (w *Workspace) Size() int { return len(w.dense) }

// Reserve grows the workspace to at least size node slots, keeping it clean.
func (w *Workspace) Reserve(size int) {
	old := len(w.dense)
	if size <= old {
		return
	}
	w.mark = append(w.mark, make([]bool, size-old)...)
	w.link = append(w.link, make([]int, size-old)...)
	w.dense = append(w.dense, make([]float64, size-old)...)
	for i := old; i < size; i++ {
		w.head = append(w.head, -1)
	}
	if cap(w.list) < size {
		w.list = make([]int, 0, size)
	}
	if cap(w.stack) < size {
		w.stack = make([]int, 0, size)
	}
}

// Check verifies the between-call state.
func (w *Workspace) Check() error {
	for i := range w.dense {
		switch {
		case w.mark[i]:
			return fmt.Errorf("Workspace.Check: mark[%d] set: %w", i, ErrCorrupt)
		case w.head[i] != -1:
			return fmt.Errorf("Workspace.Check: head[%d]=%d: %w", i, w.head[i], ErrCorrupt)
		case w.dense[i] != 0:
			return fmt.Errorf("Workspace.Check: dense[%d]=%g: %w", i, w.dense[i], ErrCorrupt)
		}
	}

	return nil
}
