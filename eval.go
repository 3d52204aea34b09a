package zdd

import (
	"context"
	"fmt"
	"math/big"
	"sort"
)

// Cardinality returns the number of distinct subsets d represents, computed
// bottom-up with a per-node big.Int memo so it stays exact for diagrams
// whose path count overflows a machine word.
func (d *Diagram) Cardinality(ctx context.Context) (*big.Int, error) {
	memo := map[NodeID]*big.Int{Bot: big.NewInt(0), Top: big.NewInt(1)}

	var count func(id NodeID) (*big.Int, error)
	count = func(id NodeID) (*big.Int, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if v, ok := memo[id]; ok {
			return v, nil
		}
		node, err := d.table.Get(id)
		if err != nil {
			return nil, err
		}
		lo, err := count(node.Lo)
		if err != nil {
			return nil, err
		}
		hi, err := count(node.Hi)
		if err != nil {
			return nil, err
		}
		v := new(big.Int).Add(lo, hi)
		memo[id] = v
		return v, nil
	}

	return count(d.root)
}

// Unfold enumerates every subset d represents as a slice of ground
// variable indices. Variable i sits at level N-i, so the emitted index
// for a node at level ℓ is d.Vars()-ℓ. Traversal is an explicit stack of
// frames rather than function recursion, since an accepted family can be
// large enough that one frame per emitted subset would overflow the
// goroutine stack under naive recursion.
func (d *Diagram) Unfold(ctx context.Context, sorted bool) ([][]int, error) {
	var out [][]int

	type frame struct {
		id     NodeID
		prefix []int
	}
	stack := []frame{{id: d.root}}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch top.id {
		case Bot:
			continue
		case Top:
			set := append([]int{}, top.prefix...)
			out = append(out, set)
			continue
		}

		node, err := d.table.Get(top.id)
		if err != nil {
			return nil, err
		}

		withVar := make([]int, len(top.prefix)+1)
		copy(withVar, top.prefix)
		withVar[len(top.prefix)] = d.vars - node.Level

		// Push hi first so lo is popped and processed first: each subset
		// is emitted with its excluded-variable branch walked before its
		// included-variable branch.
		stack = append(stack, frame{id: node.Hi, prefix: withVar})
		stack = append(stack, frame{id: node.Lo, prefix: top.prefix})
	}

	if sorted {
		sort.Slice(out, func(i, j int) bool {
			a, b := out[i], out[j]
			for k := 0; k < len(a) && k < len(b); k++ {
				if a[k] != b[k] {
					return a[k] < b[k]
				}
			}
			return len(a) < len(b)
		})
	}

	return out, nil
}

// Direction selects whether LinearOptimization maximises or minimises.
type Direction int

const (
	Minimize Direction = iota
	Maximize
)

// sentinel values standing in for "infeasible" on each side of the DP; kept
// well inside int64 range so a handful of additions against real costs
// can't wrap around and masquerade as a competitive value.
const (
	negInf = int64(-1) << 48
	posInf = int64(1) << 48
)

// LinearOptimization runs a bottom-up dynamic program over d that finds the
// best (by dir) subset under a linear objective. cost is indexed by ground
// variable (0..d.Vars()-1, matching Unfold's numbering), not by level. It
// returns the optimal value and a diagram of exactly the subsets achieving
// it; an empty d (no accepted subsets at all) is a vacuous optimum of 0
// over the empty family.
func LinearOptimization(ctx context.Context, d *Diagram, cost []int64, dir Direction) (int64, *Diagram, error) {
	if len(cost) < d.vars {
		return 0, nil, fmt.Errorf("%w: need %d cost entries, have %d", ErrInsufficientCosts, d.vars, len(cost))
	}
	if d.root == Bot {
		return 0, &Diagram{table: NewNodeTable(0), root: Bot, vars: d.vars}, nil
	}

	worse := negInf
	better := func(a, b int64) bool { return a > b }
	if dir == Minimize {
		worse = posInf
		better = func(a, b int64) bool { return a < b }
	}

	out := NewNodeTable(0)
	bestVal := map[NodeID]int64{Bot: worse, Top: 0}
	optID := map[NodeID]NodeID{Bot: Bot, Top: Top}

	var value func(id NodeID) (int64, error)
	value = func(id NodeID) (int64, error) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if v, ok := bestVal[id]; ok {
			return v, nil
		}
		node, err := d.table.Get(id)
		if err != nil {
			return 0, err
		}
		loVal, err := value(node.Lo)
		if err != nil {
			return 0, err
		}
		hiVal, err := value(node.Hi)
		if err != nil {
			return 0, err
		}
		hiVal += cost[d.vars-node.Level]

		v := loVal
		if better(hiVal, loVal) {
			v = hiVal
		}
		bestVal[id] = v
		return v, nil
	}

	var build func(id NodeID) (NodeID, error)
	build = func(id NodeID) (NodeID, error) {
		if err := ctx.Err(); err != nil {
			return Null, err
		}
		if nid, ok := optID[id]; ok {
			return nid, nil
		}

		node, err := d.table.Get(id)
		if err != nil {
			return Null, err
		}
		v, err := value(id)
		if err != nil {
			return Null, err
		}
		loVal, err := value(node.Lo)
		if err != nil {
			return Null, err
		}
		hiVal, err := value(node.Hi)
		if err != nil {
			return Null, err
		}
		hiVal += cost[d.vars-node.Level]

		loBranch := Bot
		if loVal == v {
			loBranch, err = build(node.Lo)
			if err != nil {
				return Null, err
			}
		}
		hiBranch := Bot
		if hiVal == v {
			hiBranch, err = build(node.Hi)
			if err != nil {
				return Null, err
			}
		}

		nid, err := out.AddNode(node.Level, loBranch, hiBranch)
		if err != nil {
			return Null, err
		}
		optID[id] = nid
		return nid, nil
	}

	bestOfRoot, err := value(d.root)
	if err != nil {
		return 0, nil, fmt.Errorf("zdd: optimize: %w", err)
	}
	rootOpt, err := build(d.root)
	if err != nil {
		return 0, nil, fmt.Errorf("zdd: optimize: %w", err)
	}

	return bestOfRoot, &Diagram{table: out, root: rootOpt, vars: d.vars}, nil
}
