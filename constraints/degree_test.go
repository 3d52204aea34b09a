package constraints_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticezdd/zdd"
	"github.com/latticezdd/zdd/constraints"
)

func TestRangeDegreeSpecZeroBoundAcceptsOnlyEmptySet(t *testing.T) {
	ctx := context.Background()
	g := triangle(t)

	lb := map[int]int64{0: 0, 1: 0, 2: 0}
	ub := map[int]int64{0: 0, 1: 0, 2: 0}
	d, err := constraints.DegreeConstraints(ctx, g, lb, ub, false)
	require.NoError(t, err)

	count, err := d.Cardinality(ctx)
	require.NoError(t, err)
	require.Equal(t, "1", count.String())
}

func TestRangeDegreeSpecExactDegreeTwoIsTheFullTriangle(t *testing.T) {
	ctx := context.Background()
	g := triangle(t)

	lb := map[int]int64{0: 2, 1: 2, 2: 2}
	ub := map[int]int64{0: 2, 1: 2, 2: 2}
	d, err := constraints.DegreeConstraints(ctx, g, lb, ub, false)
	require.NoError(t, err)

	count, err := d.Cardinality(ctx)
	require.NoError(t, err)
	require.Equal(t, "1", count.String())
}

func TestRangeDegreeSpecAtMostOneIsAMatching(t *testing.T) {
	ctx := context.Background()
	g := triangle(t)

	lb := map[int]int64{0: 0, 1: 0, 2: 0}
	ub := map[int]int64{0: 1, 1: 1, 2: 1}
	d, err := constraints.DegreeConstraints(ctx, g, lb, ub, false)
	require.NoError(t, err)

	count, err := d.Cardinality(ctx)
	require.NoError(t, err)
	require.Equal(t, "4", count.String(), "empty set plus each of the 3 single edges; no two edges of a triangle are independent")
}

func TestNewRangeDegreeSpecPanicsOnInvertedBounds(t *testing.T) {
	g := triangle(t)
	require.Panics(t, func() {
		constraints.NewRangeDegreeSpec(g, map[int]int64{0: 2}, map[int]int64{0: 1}, false)
	})
}

func TestSetDegreeSpecEvenDegreeOnTriangle(t *testing.T) {
	ctx := context.Background()
	g := triangle(t)

	candidates := map[int][]int64{0: {0, 2}, 1: {0, 2}, 2: {0, 2}}
	spec := constraints.NewSetDegreeSpec(g, candidates, false)

	d, err := zdd.Build(ctx, spec)
	require.NoError(t, err)

	count, err := d.Cardinality(ctx)
	require.NoError(t, err)
	require.Equal(t, "2", count.String(), "only the empty set and the full triangle give every vertex even degree")
}

func TestNewSetDegreeSpecPanicsOnEmptyCandidates(t *testing.T) {
	g := triangle(t)
	require.Panics(t, func() {
		constraints.NewSetDegreeSpec(g, map[int][]int64{0: {}}, false)
	})
}
