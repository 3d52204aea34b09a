// Package constraints provides the concrete zdd.Spec implementations for
// the constraint families this engine targets: linear inequalities over
// 0/1 variables, and graph subgraph constraints (connectivity, degree
// bounds, Steiner terminal coverage) built against a *graph.Graph.
package constraints

import (
	"fmt"

	"github.com/latticezdd/zdd"
)

// Sense is the relational operator of one row of a linear system.
type Sense int

const (
	LE Sense = iota // ≤
	EQ              // =
	GE              // ≥
)

// LinearIneqSpec drives construction of the 0/1 assignments satisfying
// A x ⟂ b, row-wise. Variable i decides at level N-i (the most significant
// variable decides first), and each row's best/worst remaining-contribution
// suffix sums let infeasible partial assignments be rejected as soon as
// they're determined, rather than only at the end.
type LinearIneqSpec struct {
	a     [][]int64
	sense []Sense
	b     []int64
	n     int

	posSuffix [][]int64
	negSuffix [][]int64
}

// NewLinearIneqSpec validates and returns a spec for A x ⟂ b. Every row of
// a must have the same length, which becomes the number of variables;
// sense and b must each have one entry per row. Mismatched dimensions are
// a misbuilt call, not a recoverable condition, so they panic rather than
// return an error.
func NewLinearIneqSpec(a [][]int64, sense []Sense, b []int64) *LinearIneqSpec {
	r := len(a)
	if r == 0 {
		panic("NewLinearIneqSpec: empty coefficient matrix")
	}
	if len(sense) != r || len(b) != r {
		panic(fmt.Sprintf("NewLinearIneqSpec: %d rows but %d senses and %d bounds", r, len(sense), len(b)))
	}

	n := len(a[0])
	for _, row := range a {
		if len(row) != n {
			panic("NewLinearIneqSpec: ragged coefficient matrix")
		}
	}

	s := &LinearIneqSpec{a: a, sense: sense, b: b, n: n}
	s.posSuffix = make([][]int64, r)
	s.negSuffix = make([][]int64, r)
	for row := 0; row < r; row++ {
		pos := make([]int64, n+1)
		neg := make([]int64, n+1)
		for i := n - 1; i >= 0; i-- {
			c := a[row][i]
			pos[i] = pos[i+1]
			neg[i] = neg[i+1]
			if c > 0 {
				pos[i] += c
			} else if c < 0 {
				neg[i] += c
			}
		}
		s.posSuffix[row] = pos
		s.negSuffix[row] = neg
	}
	return s
}

func (s *LinearIneqSpec) Width() int {
	return len(s.a)
}

func (s *LinearIneqSpec) Root(state []int64) int {
	for i := range state {
		state[i] = 0
	}
	if s.n == 0 {
		for row := range s.a {
			if !rowSatisfied(s.sense[row], 0, s.b[row]) {
				return zdd.Reject
			}
		}
		return zdd.Accept
	}
	return s.n
}

// rowSatisfied reports whether val ⟂ bound holds under sense.
func rowSatisfied(sense Sense, val, bound int64) bool {
	switch sense {
	case LE:
		return val <= bound
	case GE:
		return val >= bound
	case EQ:
		return val == bound
	default:
		return false
	}
}

func (s *LinearIneqSpec) Step(state []int64, level int, take bool) int {
	i := s.n - level

	for row := range s.a {
		if take {
			state[row] += s.a[row][i]
		}
		acc := state[row]

		switch s.sense[row] {
		case LE:
			if acc+s.negSuffix[row][i+1] > s.b[row] {
				return zdd.Reject
			}
		case GE:
			if acc+s.posSuffix[row][i+1] < s.b[row] {
				return zdd.Reject
			}
		case EQ:
			if acc+s.negSuffix[row][i+1] > s.b[row] {
				return zdd.Reject
			}
			if acc+s.posSuffix[row][i+1] < s.b[row] {
				return zdd.Reject
			}
		}
	}

	if level == 1 {
		return zdd.Accept
	}
	return level - 1
}
