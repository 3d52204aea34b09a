package zdd_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticezdd/zdd"
)

// containsElemSpec accepts every subset of {0..n-1} that includes elem.
type containsElemSpec struct {
	n, elem int
}

func (s *containsElemSpec) Width() int          { return 0 }
func (s *containsElemSpec) Root(state []int64) int { return s.n }

func (s *containsElemSpec) Step(state []int64, level int, take bool) int {
	if level == s.n-s.elem && !take {
		return zdd.Reject
	}
	if level == 1 {
		return zdd.Accept
	}
	return level - 1
}

func setsToStrings(sets [][]int) []string {
	out := make([]string, len(sets))
	for i, s := range sets {
		out[i] = sortedIntsKey(s)
	}
	sort.Strings(out)
	return out
}

func sortedIntsKey(s []int) string {
	sorted := append([]int(nil), s...)
	sort.Ints(sorted)
	b := make([]byte, 0, len(sorted)*2)
	for _, v := range sorted {
		b = append(b, byte('0'+v), ',')
	}
	return string(b)
}

func TestIntersectionMatchesSetIntersection(t *testing.T) {
	ctx := context.Background()

	a := &chooseKSpec{n: 4, k: 2}
	b := &containsElemSpec{n: 4, elem: 0}

	combined := zdd.NewIntersection(a, b)
	d, err := zdd.Build(ctx, combined)
	require.NoError(t, err)

	got, err := d.Unfold(ctx, true)
	require.NoError(t, err)

	want := [][]int{{0, 1}, {0, 2}, {0, 3}}
	require.Equal(t, setsToStrings(want), setsToStrings(got))
}

func TestIntersectionOfDisjointSpecsIsEmpty(t *testing.T) {
	ctx := context.Background()
	combined := zdd.NewIntersection(&chooseKSpec{n: 3, k: 0}, &chooseKSpec{n: 3, k: 3})
	d, err := zdd.Build(ctx, combined)
	require.NoError(t, err)

	count, err := d.Cardinality(ctx)
	require.NoError(t, err)
	require.Equal(t, "0", count.String())
}

func TestIntersectionWidthIsSumOfParts(t *testing.T) {
	a := &chooseKSpec{n: 3, k: 1}
	b := &containsElemSpec{n: 5, elem: 2}
	combined := zdd.NewIntersection(a, b)
	require.Equal(t, a.Width()+b.Width()+4, combined.Width())
}
