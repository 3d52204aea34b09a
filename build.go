package zdd

import (
	"context"
	"fmt"
)

// Diagram is a reduced ZDD: a root node plus the table it was built into
// and the number of variables (levels) it was built over. Diagrams are
// immutable after Build/Reduce/Change/Union/Intersect return them.
type Diagram struct {
	root  NodeID
	table *NodeTable
	vars  int
}

// Root returns the NodeID of the diagram's root node (Bot or Top for the
// two degenerate families).
func (d *Diagram) Root() NodeID { return d.root }

// Vars returns the number of ground variables (levels 1..Vars) the
// diagram was built over.
func (d *Diagram) Vars() int { return d.vars }

// Size returns the number of nodes reachable from Root (including
// terminals). Build and Reduce always hand back a diagram backed by its
// own freshly reduced table, so this never includes structure left over
// from other diagrams even when WithSharedTable was used during
// construction.
func (d *Diagram) Size() int { return d.table.Size() }

// TopLevel returns the level of the root node, or 0 if the diagram is one
// of the two terminals.
func (d *Diagram) TopLevel() int {
	if d.root == Bot || d.root == Top {
		return 0
	}
	n, err := d.table.Get(d.root)
	if err != nil {
		return 0
	}
	return n.Level
}

// Node looks up a node by ID in the diagram's table.
func (d *Diagram) Node(id NodeID) (Node, error) { return d.table.Get(id) }

// Build constructs a reduced ZDD from spec via top-down, frontier-state
// driven construction, and returns it reduced in canonical form.
func Build(ctx context.Context, spec Spec, opts ...Option) (*Diagram, error) {
	cfg := newConfig(opts...)

	table := cfg.table
	if table == nil {
		table = NewNodeTable(cfg.NodeLimit)
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	width := spec.Width()
	state := make([]int64, width)
	rootLevel := spec.Root(state)

	levels := rootLevel
	if levels < 0 {
		levels = 0
	}
	b := &builder{table: table, uniq: make([]map[string]NodeID, levels+1)}
	for i := range b.uniq {
		b.uniq[i] = make(map[string]NodeID)
	}

	vars := rootLevel
	var root NodeID
	var err error
	switch rootLevel {
	case Reject:
		root = Bot
		vars = 0
	case Accept:
		root = Top
		vars = 0
	default:
		root, err = b.nodeFor(ctx, spec, rootLevel, state)
	}
	if err != nil {
		return nil, fmt.Errorf("zdd: build: %w", err)
	}

	d, err := Reduce(ctx, table, root, vars)
	if err != nil {
		return nil, fmt.Errorf("zdd: build: %w", err)
	}

	return d, nil
}

// builder holds the per-level state->NodeID memoisation tables used during
// a single top-down construction: uniq[level] maps an encoded state to the
// NodeID already built for it, so two branches reaching the same state at
// the same level share one subtree.
type builder struct {
	table *NodeTable
	uniq  []map[string]NodeID
}

func (b *builder) nodeFor(ctx context.Context, spec Spec, level int, state []int64) (NodeID, error) {
	if err := ctx.Err(); err != nil {
		return Null, err
	}

	key := encodeState(state)
	if id, ok := b.uniq[level][key]; ok {
		return id, nil
	}

	loState := append([]int64(nil), state...)
	loCode := spec.Step(loState, level, false)
	lo, err := b.resolve(ctx, spec, level, loCode, loState)
	if err != nil {
		return Null, err
	}

	hiState := append([]int64(nil), state...)
	hiCode := spec.Step(hiState, level, true)
	hi, err := b.resolve(ctx, spec, level, hiCode, hiState)
	if err != nil {
		return Null, err
	}

	id, err := b.table.AddNode(level, lo, hi)
	if err != nil {
		return Null, err
	}
	b.uniq[level][key] = id
	return id, nil
}

func (b *builder) resolve(ctx context.Context, spec Spec, level int, code int, state []int64) (NodeID, error) {
	switch {
	case code == Reject:
		return Bot, nil
	case code == Accept:
		return Top, nil
	case code >= 1 && code < level:
		return b.nodeFor(ctx, spec, code, state)
	default:
		return Null, fmt.Errorf("%w: Step returned %d at level %d", ErrContractViolation, code, level)
	}
}
