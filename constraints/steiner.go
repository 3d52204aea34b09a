package constraints

import (
	"github.com/latticezdd/zdd"
	"github.com/latticezdd/zdd/graph"
)

// SteinerSpec accepts edge subsets touching every vertex in terminals at
// least once. Combined with a ConnectedSpec built with nonCyclic=true, the
// conjunction enumerates Steiner trees spanning terminals.
type SteinerSpec struct {
	g          *graph.Graph
	terminals  map[int]bool
	withVertex bool
}

// NewSteinerSpec returns a spec over g requiring every vertex in terminals
// to have at least one incident edge taken.
func NewSteinerSpec(g *graph.Graph, terminals []int, withVertex bool) *SteinerSpec {
	set := make(map[int]bool, len(terminals))
	for _, v := range terminals {
		set[v] = true
	}
	return &SteinerSpec{g: g, terminals: set, withVertex: withVertex}
}

func (s *SteinerSpec) Width() int { return s.g.MaxFrontierSize() }

func (s *SteinerSpec) Root(state []int64) int {
	for i := range state {
		state[i] = 0
	}
	n := s.g.NumItems()
	if n == 0 {
		return zdd.Reject
	}
	return n
}

func (s *SteinerSpec) Step(state []int64, level int, take bool) int {
	i := s.g.ItemOf(level)
	item, err := s.g.Item(i)
	if err != nil {
		return zdd.Reject
	}

	if item.IsVertex {
		v := item.Vertex1
		idx, _ := s.g.FrontierIndex(v)

		if take && !s.withVertex {
			return zdd.Reject
		}
		if s.withVertex {
			if !take && state[idx] > 0 {
				return zdd.Reject
			}
			if take && state[idx] == 0 {
				return zdd.Reject
			}
		}
		if state[idx] == 0 && s.terminals[v] {
			return zdd.Reject
		}
		state[idx] = 0
	} else if take {
		u, v := item.Vertex1, item.Vertex2
		ui, _ := s.g.FrontierIndex(u)
		vi, _ := s.g.FrontierIndex(v)
		state[ui] = 1
		state[vi] = 1
	}

	if level == 1 {
		return zdd.Accept
	}
	return level - 1
}
