package zdd

import (
	"context"
	"fmt"
)

// opKind tags which apply operation an applyMemo key belongs to, so Union
// and Intersect results computed against the same pair of NodeIDs never
// collide in the same memo map.
type opKind int

const (
	opChange opKind = iota
	opUnion
	opIntersect
)

// applyKey is the memoisation key for a single (op, f, g) subproblem.
// Change only ever uses f, leaving g at Null.
type applyKey struct {
	op   opKind
	f, g NodeID
}

// Change returns the family obtained by toggling membership of the ground
// variable at level in every set of d: sets containing it have it removed,
// sets lacking it have it added. It is its own inverse.
func Change(ctx context.Context, d *Diagram, level int) (*Diagram, error) {
	if level < 1 {
		return nil, fmt.Errorf("%w: change level %d out of range", ErrContractViolation, level)
	}

	// Work in a private copy of d's table, so the ids of d's nodes and of
	// the nodes added below live in one table.
	src, err := Reduce(ctx, d.table, d.root, d.vars)
	if err != nil {
		return nil, fmt.Errorf("zdd: change: %w", err)
	}
	out := src.table
	memo := make(map[applyKey]NodeID)

	var visit func(id NodeID) (NodeID, error)
	visit = func(id NodeID) (NodeID, error) {
		if err := ctx.Err(); err != nil {
			return Null, err
		}

		key := applyKey{op: opChange, f: id}
		if nid, ok := memo[key]; ok {
			return nid, nil
		}

		var nid NodeID
		var err error
		switch id {
		case Bot:
			nid = Bot
		case Top:
			nid, err = out.AddNode(level, Bot, Top)
		default:
			node, gerr := out.Get(id)
			if gerr != nil {
				return Null, gerr
			}
			switch {
			case node.Level < level:
				// level does not occur below this node; graft a new
				// singleton node for it under the unchanged subtree.
				nid, err = out.AddNode(level, Bot, id)
			case node.Level == level:
				nid, err = out.AddNode(level, node.Hi, node.Lo)
			default:
				lo, lerr := visit(node.Lo)
				if lerr != nil {
					return Null, lerr
				}
				hi, herr := visit(node.Hi)
				if herr != nil {
					return Null, herr
				}
				nid, err = out.AddNode(node.Level, lo, hi)
			}
		}
		if err != nil {
			return Null, err
		}
		memo[key] = nid
		return nid, nil
	}

	newRoot, err := visit(src.root)
	if err != nil {
		return nil, fmt.Errorf("zdd: change: %w", err)
	}
	res, err := Reduce(ctx, out, newRoot, d.vars)
	if err != nil {
		return nil, fmt.Errorf("zdd: change: %w", err)
	}
	return res, nil
}

// Union returns the family of sets belonging to f or g (or both).
func Union(ctx context.Context, f, g *Diagram) (*Diagram, error) {
	return combine(ctx, f, g, opUnion)
}

// Intersect returns the family of sets belonging to both f and g.
func Intersect(ctx context.Context, f, g *Diagram) (*Diagram, error) {
	return combine(ctx, f, g, opIntersect)
}

func combine(ctx context.Context, f, g *Diagram, op opKind) (*Diagram, error) {
	if f.vars != g.vars {
		return nil, fmt.Errorf("%w: %d vs %d", ErrVariableMismatch, f.vars, g.vars)
	}

	out := NewNodeTable(0)
	memo := make(map[applyKey]NodeID)

	var visit func(a, b NodeID) (NodeID, error)
	visit = func(a, b NodeID) (NodeID, error) {
		if err := ctx.Err(); err != nil {
			return Null, err
		}

		// A non-terminal base result is a node of f's or g's table; it is
		// copied into out by the recursion below instead.
		if base, ok := applyBase(op, a, b); ok && (base == Bot || base == Top) {
			return base, nil
		}
		if a == Top && b == Top {
			return Top, nil
		}

		// a is always drawn from f's node space and b from g's, so the
		// pair (a,b) (never swapped) is already a stable memo key: the two
		// spaces' NodeIDs are not comparable across tables.
		key := applyKey{op: op, f: a, g: b}
		if nid, ok := memo[key]; ok {
			return nid, nil
		}

		na, aLevel, err := nodeOrTerminal(f, a)
		if err != nil {
			return Null, err
		}
		nb, bLevel, err := nodeOrTerminal(g, b)
		if err != nil {
			return Null, err
		}

		var level int
		var aLo, aHi, bLo, bHi NodeID
		switch {
		case aLevel == bLevel:
			level, aLo, aHi, bLo, bHi = aLevel, na.Lo, na.Hi, nb.Lo, nb.Hi
		case aLevel > bLevel:
			level, aLo, aHi, bLo, bHi = aLevel, na.Lo, na.Hi, b, Bot
		default:
			level, aLo, aHi, bLo, bHi = bLevel, a, Bot, nb.Lo, nb.Hi
		}

		loID, err := visit(aLo, bLo)
		if err != nil {
			return Null, err
		}
		hiID, err := visit(aHi, bHi)
		if err != nil {
			return Null, err
		}

		nid, err := out.AddNode(level, loID, hiID)
		if err != nil {
			return Null, err
		}
		memo[key] = nid
		return nid, nil
	}

	newRoot, err := visit(f.root, g.root)
	if err != nil {
		return nil, fmt.Errorf("zdd: combine: %w", err)
	}
	return &Diagram{table: out, root: newRoot, vars: f.vars}, nil
}

// applyBase reports the degenerate terminal-pair results for op, if a, b is
// one of them.
func applyBase(op opKind, a, b NodeID) (NodeID, bool) {
	switch op {
	case opUnion:
		switch {
		case a == Bot:
			return b, true
		case b == Bot:
			return a, true
		}
	case opIntersect:
		if a == Bot || b == Bot {
			return Bot, true
		}
	}
	return Null, false
}

// nodeOrTerminal looks up id in d's table and reports its level (0 for the
// terminals), so combine can compare the two operands' top levels.
func nodeOrTerminal(d *Diagram, id NodeID) (Node, int, error) {
	if id == Bot || id == Top {
		return Node{}, 0, nil
	}
	n, err := d.table.Get(id)
	if err != nil {
		return Node{}, 0, err
	}
	return n, n.Level, nil
}
