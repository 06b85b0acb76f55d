package netbasis

// White-box hooks for corrupting a basis or workspace in netbasis_test.

func (b *Basis) SetParent(node, parent int)       { b.parent[node] = parent }
func (b *Basis) SetDepth(node, depth int)         { b.depth[node] = depth }
func (b *Basis) SetSign(node int, sign float64)   { b.sign[node] = sign }
func (b *Basis) SetPosition(node, position int)   { b.permuteBack[node] = position }
func (w *Workspace) Poke(slot int, value float64) { w.dense[slot] = value }
