package constraints_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticezdd/zdd/constraints"
)

func TestLinearInequalitiesLE(t *testing.T) {
	ctx := context.Background()
	// x0 + x1 + x2 <= 1: at most one of three variables set.
	d, err := constraints.LinearInequalities(ctx,
		[][]int64{{1, 1, 1}}, []constraints.Sense{constraints.LE}, []int64{1})
	require.NoError(t, err)

	count, err := d.Cardinality(ctx)
	require.NoError(t, err)
	require.Equal(t, "4", count.String(), "{}, {0}, {1}, {2}")
}

func TestLinearInequalitiesEQ(t *testing.T) {
	ctx := context.Background()
	// x0 + x1 + x2 == 2.
	d, err := constraints.LinearInequalities(ctx,
		[][]int64{{1, 1, 1}}, []constraints.Sense{constraints.EQ}, []int64{2})
	require.NoError(t, err)

	sets, err := d.Unfold(ctx, true)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1}, {0, 2}, {1, 2}}, sets)
}

func TestLinearInequalitiesGE(t *testing.T) {
	ctx := context.Background()
	// 2*x0 + x1 >= 2: either x0 set, or x0 unset and x1 set is not enough
	// on its own unless weighted 2, so only x0=1 satisfies it regardless
	// of x1.
	d, err := constraints.LinearInequalities(ctx,
		[][]int64{{2, 1}}, []constraints.Sense{constraints.GE}, []int64{2})
	require.NoError(t, err)

	sets, err := d.Unfold(ctx, true)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0}, {0, 1}}, sets)
}

func TestLinearInequalitiesMultipleRows(t *testing.T) {
	ctx := context.Background()
	// x0+x1 <= 1 and x1+x2 <= 1: no two adjacent variables both set.
	d, err := constraints.LinearInequalities(ctx,
		[][]int64{{1, 1, 0}, {0, 1, 1}},
		[]constraints.Sense{constraints.LE, constraints.LE},
		[]int64{1, 1})
	require.NoError(t, err)

	sets, err := d.Unfold(ctx, true)
	require.NoError(t, err)
	require.Equal(t, [][]int{{}, {0}, {0, 2}, {1}, {2}}, sets)
}

func TestNewLinearIneqSpecPanicsOnMismatchedRows(t *testing.T) {
	require.Panics(t, func() {
		constraints.NewLinearIneqSpec([][]int64{{1, 1}}, []constraints.Sense{constraints.LE, constraints.LE}, []int64{1})
	})
}

func TestNewLinearIneqSpecPanicsOnRaggedMatrix(t *testing.T) {
	require.Panics(t, func() {
		constraints.NewLinearIneqSpec([][]int64{{1, 1}, {1}}, []constraints.Sense{constraints.LE, constraints.LE}, []int64{1, 1})
	})
}

func TestNewLinearIneqSpecPanicsOnEmptyMatrix(t *testing.T) {
	require.Panics(t, func() {
		constraints.NewLinearIneqSpec(nil, nil, nil)
	})
}

func TestLinearInequalitiesZeroVariableRowRejectsUnsatisfiableBound(t *testing.T) {
	ctx := context.Background()
	// one row, zero variables: 0 >= 5 never holds, so the family is empty
	// rather than vacuously accepting {}.
	d, err := constraints.LinearInequalities(ctx, [][]int64{{}}, []constraints.Sense{constraints.GE}, []int64{5})
	require.NoError(t, err)

	count, err := d.Cardinality(ctx)
	require.NoError(t, err)
	require.Equal(t, "0", count.String())
}

func TestLinearInequalitiesZeroVariableRowAcceptsSatisfiableBound(t *testing.T) {
	ctx := context.Background()
	// one row, zero variables: 0 <= 5 always holds, so {} is accepted.
	d, err := constraints.LinearInequalities(ctx, [][]int64{{}}, []constraints.Sense{constraints.LE}, []int64{5})
	require.NoError(t, err)

	count, err := d.Cardinality(ctx)
	require.NoError(t, err)
	require.Equal(t, "1", count.String())
}
