package constraints

import (
	"context"

	"github.com/latticezdd/zdd"
	"github.com/latticezdd/zdd/graph"
)

// LinearInequalities builds the diagram of 0/1 assignments satisfying
// A x ⟂ b (one sense per row).
func LinearInequalities(ctx context.Context, a [][]int64, sense []Sense, b []int64, opts ...zdd.Option) (*zdd.Diagram, error) {
	return zdd.Build(ctx, NewLinearIneqSpec(a, sense, b), opts...)
}

// DegreeConstraints builds the diagram of edge subsets of g satisfying
// lb[v] <= deg(v) <= ub[v] for every vertex with an entry in lb/ub.
// Vertices absent from lb are unconstrained.
func DegreeConstraints(ctx context.Context, g *graph.Graph, lb, ub map[int]int64, withVertex bool, opts ...zdd.Option) (*zdd.Diagram, error) {
	return zdd.Build(ctx, NewRangeDegreeSpec(g, lb, ub, withVertex), opts...)
}

// ConnectedComponents builds the diagram of non-empty edge subsets of g
// that form a single connected subgraph (not necessarily spanning all of
// g's vertices). withVertex additionally requires each touched vertex's
// finalisation marker to be present as an explicit member of the subset.
func ConnectedComponents(ctx context.Context, g *graph.Graph, withVertex bool, opts ...zdd.Option) (*zdd.Diagram, error) {
	return zdd.Build(ctx, NewConnectedSpec(g, false, withVertex), opts...)
}

// Trees builds the diagram of edge subsets of g that form a single
// connected, acyclic subgraph.
func Trees(ctx context.Context, g *graph.Graph, withVertex bool, opts ...zdd.Option) (*zdd.Diagram, error) {
	return zdd.Build(ctx, NewConnectedSpec(g, true, withVertex), opts...)
}

// SpanningTrees builds the diagram of edge subsets of g that form a
// spanning tree: connected, acyclic, and touching every vertex. The
// degree-lower-bound of 1 on every vertex is what forces full coverage;
// ConnectedSpec alone only guarantees that whatever is touched forms one
// component.
//
// A graph of 0 or 1 vertices has no edges to choose between, and its only
// spanning tree is the empty one: ConnectedSpec can't express that (it
// always requires a non-empty edge set), so that case is special-cased
// directly to the diagram containing only the empty set. A graph of 2 or
// more vertices where some vertex has no incident edge at all can never
// be spanned by anything, so that case short-circuits to the empty
// diagram rather than asking RangeDegreeSpec for the contradictory bound
// lb=1, ub=0.
func SpanningTrees(ctx context.Context, g *graph.Graph, withVertex bool, opts ...zdd.Option) (*zdd.Diagram, error) {
	if g.NumVertices() <= 1 {
		return zdd.Reduce(ctx, zdd.NewNodeTable(0), zdd.Top, g.NumItems())
	}

	lb := make(map[int]int64)
	ub := make(map[int]int64)
	for _, v := range g.Vertices() {
		if _, err := g.VarOfVertex(v); err != nil {
			continue
		}
		if len(g.IncidentItems(v)) == 0 {
			return zdd.Reduce(ctx, zdd.NewNodeTable(0), zdd.Bot, g.NumItems())
		}
		lb[v] = 1
		ub[v] = int64(g.NumEdges())
	}

	degree := NewRangeDegreeSpec(g, lb, ub, withVertex)
	tree := NewConnectedSpec(g, true, withVertex)
	return zdd.Build(ctx, zdd.NewIntersection(tree, degree), opts...)
}

// Cycles builds the diagram of edge subsets of g that form a single
// simple cycle: every touched vertex has degree exactly 2, and no vertex
// degree exceeds that.
func Cycles(ctx context.Context, g *graph.Graph, withVertex bool, opts ...zdd.Option) (*zdd.Diagram, error) {
	candidates := make(map[int][]int64)
	for _, v := range g.Vertices() {
		if _, err := g.VarOfVertex(v); err != nil {
			continue
		}
		candidates[v] = []int64{0, 2}
	}

	degree := NewSetDegreeSpec(g, candidates, withVertex)
	component := NewConnectedSpec(g, false, withVertex)
	return zdd.Build(ctx, zdd.NewIntersection(component, degree), opts...)
}

// STPaths builds the diagram of edge subsets of g that form a single
// simple path between s and t: s and t have degree exactly 1, every other
// touched vertex has degree exactly 2, and the whole thing is one acyclic
// component.
func STPaths(ctx context.Context, g *graph.Graph, s, t int, withVertex bool, opts ...zdd.Option) (*zdd.Diagram, error) {
	candidates := make(map[int][]int64)
	for _, v := range g.Vertices() {
		if _, err := g.VarOfVertex(v); err != nil {
			continue
		}
		switch v {
		case s, t:
			candidates[v] = []int64{1}
		default:
			candidates[v] = []int64{0, 2}
		}
	}

	degree := NewSetDegreeSpec(g, candidates, withVertex)
	path := NewConnectedSpec(g, true, withVertex)
	return zdd.Build(ctx, zdd.NewIntersection(path, degree), opts...)
}

// SteinerTrees builds the diagram of edge subsets of g that form a single
// connected, acyclic subgraph touching every vertex in terminals.
func SteinerTrees(ctx context.Context, g *graph.Graph, terminals []int, withVertex bool, opts ...zdd.Option) (*zdd.Diagram, error) {
	tree := NewConnectedSpec(g, true, withVertex)
	steiner := NewSteinerSpec(g, terminals, withVertex)
	return zdd.Build(ctx, zdd.NewIntersection(tree, steiner), opts...)
}
