package constraints

import (
	"github.com/latticezdd/zdd"
	"github.com/latticezdd/zdd/graph"
)

// ConnectedSpec drives construction of subgraphs whose edge set forms a
// single connected component (optionally acyclic), using the frontier
// "mate" technique: each live frontier slot holds a small integer
// component label, and two live slots sharing a label belong to the same
// partial component.
type ConnectedSpec struct {
	g          *graph.Graph
	nonCyclic  bool
	withVertex bool
}

// NewConnectedSpec returns a spec accepting the edge subsets of g that
// form one connected component. nonCyclic additionally forbids cycles
// (so the accepted family is exactly the spanning-in / sub-trees of g's
// connected subgraphs); withVertex lets callers take vertex-finalisation
// items as explicit elements of the accepted subsets (used to enumerate
// vertex-labelled subgraphs rather than pure edge sets).
func NewConnectedSpec(g *graph.Graph, nonCyclic, withVertex bool) *ConnectedSpec {
	return &ConnectedSpec{g: g, nonCyclic: nonCyclic, withVertex: withVertex}
}

func (s *ConnectedSpec) Width() int {
	return s.g.MaxFrontierSize()
}

func (s *ConnectedSpec) Root(state []int64) int {
	for i := range state {
		state[i] = -1
	}
	n := s.g.NumItems()
	if n == 0 {
		return zdd.Reject
	}
	return n
}

func (s *ConnectedSpec) Step(state []int64, level int, take bool) int {
	i := s.g.ItemOf(level)
	item, err := s.g.Item(i)
	if err != nil {
		return zdd.Reject
	}

	if item.IsVertex {
		return s.stepVertex(state, level, item.Vertex1, take)
	}
	return s.stepEdge(state, level, item.Vertex1, item.Vertex2, take)
}

func (s *ConnectedSpec) stepEdge(state []int64, level, u, v int, take bool) int {
	if take {
		su, _ := s.g.FrontierIndex(u)
		sv, _ := s.g.FrontierIndex(v)

		if state[su] == -1 {
			state[su] = freshLabel(state)
		}
		if state[sv] == -1 {
			state[sv] = freshLabel(state)
		}

		if state[su] == state[sv] {
			if s.nonCyclic {
				return zdd.Reject
			}
		} else {
			old, replacement := state[sv], state[su]
			for i := range state {
				if state[i] == old {
					state[i] = replacement
				}
			}
		}
		densify(state)
	}

	if level == 1 {
		return zdd.Reject
	}
	return level - 1
}

func (s *ConnectedSpec) stepVertex(state []int64, level, v int, take bool) int {
	slot, _ := s.g.FrontierIndex(v)

	if take && !s.withVertex {
		return zdd.Reject
	}
	if s.withVertex {
		if !take && state[slot] != -1 {
			return zdd.Reject
		}
		if take && state[slot] == -1 {
			return zdd.Reject
		}
	}

	if state[slot] != -1 {
		label := state[slot]
		independent := true
		for i := range state {
			if i != slot && state[i] == label {
				independent = false
				break
			}
		}
		state[slot] = -1
		if independent {
			otherLive := false
			for _, v := range state {
				if v != -1 {
					otherLive = true
					break
				}
			}
			if !otherLive {
				return zdd.Accept
			}
			return zdd.Reject
		}
	}

	if level == 1 {
		return zdd.Reject
	}
	return level - 1
}

// freshLabel returns one past the largest label currently live in state.
func freshLabel(state []int64) int64 {
	max := int64(-1)
	for _, v := range state {
		if v > max {
			max = v
		}
	}
	return max + 1
}

// densify renumbers the live (non -1) labels in state to a dense 0..k-1
// range in order of first appearance, so two states that are the same
// partition up to relabelling hash and compare equal.
func densify(state []int64) {
	next := int64(0)
	seen := make(map[int64]int64)
	for i, v := range state {
		if v == -1 {
			continue
		}
		mapped, ok := seen[v]
		if !ok {
			mapped = next
			seen[v] = mapped
			next++
		}
		state[i] = mapped
	}
}
