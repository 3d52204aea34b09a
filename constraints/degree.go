package constraints

import (
	"fmt"
	"sort"

	"github.com/latticezdd/zdd"
	"github.com/latticezdd/zdd/graph"
)

// Bit layout of a RangeDegreeSpec mate cell: the low 20 bits hold either a
// running degree count or, once saturated, the sentinel degreeMask value
// meaning "already certified within bounds, stop tracking"; bit 30 records
// whether any incident edge has been taken (used only in with_vertex mode).
const (
	degreeMask = int64(1<<20) - 1
	takeFlag   = int64(1) << 30
)

// RangeDegreeSpec accepts edge subsets where every vertex's degree falls
// in [lb[v], ub[v]]. It prunes eagerly using each vertex's remaining
// incident-edge count, so an unsatisfiable lower bound is rejected as
// soon as it becomes unreachable rather than only at finalisation.
type RangeDegreeSpec struct {
	g          *graph.Graph
	lb, ub     map[int]int64
	withVertex bool
	adj        map[int][]int
}

// NewRangeDegreeSpec returns a spec over g with per-vertex bounds lb/ub.
// Every vertex with an lb entry must have a ub entry with lb[v] <= ub[v];
// violating that is a misbuilt call, not a recoverable condition, so it
// panics rather than returning an error.
func NewRangeDegreeSpec(g *graph.Graph, lb, ub map[int]int64, withVertex bool) *RangeDegreeSpec {
	for v, l := range lb {
		u, ok := ub[v]
		if !ok || l > u {
			panic(fmt.Sprintf("NewRangeDegreeSpec: vertex %d has no valid [lb,ub]", v))
		}
	}

	adj := make(map[int][]int)
	for v := range lb {
		items := g.IncidentItems(v)
		sort.Ints(items)
		adj[v] = items
	}

	return &RangeDegreeSpec{g: g, lb: lb, ub: ub, withVertex: withVertex, adj: adj}
}

func (s *RangeDegreeSpec) Width() int { return s.g.MaxFrontierSize() }

func (s *RangeDegreeSpec) Root(state []int64) int {
	for i := range state {
		state[i] = 0
	}
	n := s.g.NumItems()
	if n == 0 {
		return zdd.Reject
	}
	return n
}

func (s *RangeDegreeSpec) Step(state []int64, level int, take bool) int {
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
			if !take && state[idx]&takeFlag != 0 {
				return zdd.Reject
			}
			if take && state[idx]&takeFlag == 0 {
				return zdd.Reject
			}
		}
		state[idx] = 0
	} else {
		u, v := item.Vertex1, item.Vertex2
		ui, _ := s.g.FrontierIndex(u)
		vi, _ := s.g.FrontierIndex(v)

		if take {
			addDegree(state, ui)
			addDegree(state, vi)
		}
		if !s.checkConditions(state, i, ui, u) {
			return zdd.Reject
		}
		if !s.checkConditions(state, i, vi, v) {
			return zdd.Reject
		}
	}

	if level == 1 {
		return zdd.Accept
	}
	return level - 1
}

func addDegree(state []int64, idx int) {
	if state[idx]&degreeMask != degreeMask {
		state[idx]++
	}
	state[idx] |= takeFlag
}

func (s *RangeDegreeSpec) checkConditions(state []int64, item, idx, v int) bool {
	if _, ok := s.lb[v]; !ok {
		return true
	}
	deg := state[idx] & degreeMask
	if deg == degreeMask {
		return true
	}
	if deg > s.ub[v] {
		return false
	}
	remaining := int64(remainingIncident(s.adj[v], item))
	maxDeg := deg + remaining
	if maxDeg < s.lb[v] {
		return false
	}
	if s.lb[v] <= deg && maxDeg <= s.ub[v] {
		state[idx] |= degreeMask
	}
	return true
}

// remainingIncident counts how many of v's incident items still lie ahead
// of item (sorted ascending item indices, strictly greater than item).
func remainingIncident(sortedItems []int, item int) int {
	idx := sort.SearchInts(sortedItems, item+1)
	return len(sortedItems) - idx
}

// SetDegreeSpec accepts edge subsets where every vertex's final degree
// lies in an explicit per-vertex candidate set, rather than a contiguous
// range. Unlike RangeDegreeSpec it only tracks the exact degree and checks
// membership at finalisation; it has no suffix-based early rejection, so
// e.g. an unreachable lower bound isn't caught until the vertex's last
// incident item.
type SetDegreeSpec struct {
	g          *graph.Graph
	accept     map[int]map[int64]bool
	maxDegree  map[int]int64
	withVertex bool
}

// NewSetDegreeSpec returns a spec over g where candidates[v] lists the
// acceptable final degrees for vertex v; every listed vertex must have a
// non-empty candidate set, since an empty one could never be satisfied
// and signals a misbuilt call rather than a legitimately unsatisfiable
// constraint. A vertex absent from candidates is unconstrained.
func NewSetDegreeSpec(g *graph.Graph, candidates map[int][]int64, withVertex bool) *SetDegreeSpec {
	accept := make(map[int]map[int64]bool, len(candidates))
	maxDegree := make(map[int]int64, len(candidates))

	for v, degs := range candidates {
		if len(degs) == 0 {
			panic(fmt.Sprintf("NewSetDegreeSpec: vertex %d has no acceptable degree", v))
		}
		set := make(map[int64]bool, len(degs))
		max := degs[0]
		for _, d := range degs {
			set[d] = true
			if d > max {
				max = d
			}
		}
		accept[v] = set
		maxDegree[v] = max
	}

	return &SetDegreeSpec{g: g, accept: accept, maxDegree: maxDegree, withVertex: withVertex}
}

func (s *SetDegreeSpec) Width() int { return s.g.MaxFrontierSize() }

func (s *SetDegreeSpec) Root(state []int64) int {
	for i := range state {
		state[i] = 0
	}
	n := s.g.NumItems()
	if n == 0 {
		return zdd.Reject
	}
	return n
}

func (s *SetDegreeSpec) Step(state []int64, level int, take bool) int {
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
		if set, ok := s.accept[v]; ok && !set[state[idx]] {
			return zdd.Reject
		}
		state[idx] = 0
	} else if take {
		u, v := item.Vertex1, item.Vertex2
		ui, _ := s.g.FrontierIndex(u)
		vi, _ := s.g.FrontierIndex(v)
		state[ui]++
		state[vi]++
		if max, ok := s.maxDegree[u]; ok && state[ui] > max {
			return zdd.Reject
		}
		if max, ok := s.maxDegree[v]; ok && state[vi] > max {
			return zdd.Reject
		}
	}

	if level == 1 {
		return zdd.Accept
	}
	return level - 1
}
