package constraints_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticezdd/zdd/constraints"
	"github.com/latticezdd/zdd/graph"
)

// triangle returns a setup 3-cycle on vertices 0,1,2.
func triangle(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.Setup())
	return g
}

func TestConnectedComponentsCountsAllConnectedNonEmptySubgraphs(t *testing.T) {
	ctx := context.Background()
	g := triangle(t)

	d, err := constraints.ConnectedComponents(ctx, g, false)
	require.NoError(t, err)

	count, err := d.Cardinality(ctx)
	require.NoError(t, err)
	require.Equal(t, "7", count.String(), "3 single edges + 3 pairs + the full triangle")
}

func TestTreesExcludesTheCycle(t *testing.T) {
	ctx := context.Background()
	g := triangle(t)

	d, err := constraints.Trees(ctx, g, false)
	require.NoError(t, err)

	count, err := d.Cardinality(ctx)
	require.NoError(t, err)
	require.Equal(t, "6", count.String(), "3 single edges + 3 two-edge paths, not the 3-cycle")
}

func TestSpanningTreesOfK3(t *testing.T) {
	ctx := context.Background()
	g := triangle(t)

	d, err := constraints.SpanningTrees(ctx, g, false)
	require.NoError(t, err)

	count, err := d.Cardinality(ctx)
	require.NoError(t, err)
	require.Equal(t, "3", count.String(), "Cayley's formula: K3 has 3^(3-2) = 3 spanning trees")
}
