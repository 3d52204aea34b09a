package zdd

import "context"

// Reduce rebuilds root's reachable subgraph of table into a fresh,
// canonical NodeTable: nodes are visited lowest level first, a node
// whose hi-arc is ⊥ is suppressed in favour of its lo-child,
// and any two nodes that end up sharing (level, lo, hi) are merged. The
// NodeTable's own AddNode already applies both rules at insertion time, so
// Reduce mainly matters for diagrams assembled out-of-band (e.g. the raw
// apply results in ops.go) where duplicate or dead structure can appear
// before this pass runs.
func Reduce(ctx context.Context, table *NodeTable, root NodeID, vars int) (*Diagram, error) {
	if root == Bot || root == Top || root == Null {
		return &Diagram{table: NewNodeTable(0), root: root, vars: vars}, nil
	}

	out := NewNodeTable(0)
	memo := map[NodeID]NodeID{Bot: Bot, Top: Top}

	var visit func(id NodeID) (NodeID, error)
	visit = func(id NodeID) (NodeID, error) {
		if err := ctx.Err(); err != nil {
			return Null, err
		}
		if nid, ok := memo[id]; ok {
			return nid, nil
		}

		node, err := table.Get(id)
		if err != nil {
			return Null, err
		}

		lo, err := visit(node.Lo)
		if err != nil {
			return Null, err
		}
		hi, err := visit(node.Hi)
		if err != nil {
			return Null, err
		}

		nid, err := out.AddNode(node.Level, lo, hi)
		if err != nil {
			return Null, err
		}
		memo[id] = nid
		return nid, nil
	}

	newRoot, err := visit(root)
	if err != nil {
		return nil, err
	}
	return &Diagram{table: out, root: newRoot, vars: vars}, nil
}
