package zdd

// Intersection composes two specs by conjunction: it exposes the ordinary
// Spec contract over the concatenation of A's and B's state,
// plus four bookkeeping cells that let one side finish accepting while the
// other keeps transitioning. Unfold(Build(Intersection(A, B))) equals the
// set intersection of unfold(Build(A)) and unfold(Build(B)), without ever
// materialising either side's diagram.
type Intersection struct {
	A, B           Spec
	widthA, widthB int
}

// NewIntersection returns the conjunction of a and b.
func NewIntersection(a, b Spec) *Intersection {
	return &Intersection{A: a, B: b, widthA: a.Width(), widthB: b.Width()}
}

// Layout of the composed state, past the widthA+widthB cells owned by A
// and B themselves:
//
//	[widthA+widthB+0] frozenA (0/1): A has already accepted, so every
//	                  later level is omitted on A's side.
//	[widthA+widthB+1] pendingA: the level A is next due to transition at;
//	                  levels A skipped over are omitted on A's side.
//	[widthA+widthB+2] frozenB
//	[widthA+widthB+3] pendingB
const (
	offFrozenA = 0
	offPendingA = 1
	offFrozenB = 2
	offPendingB = 3
	bookkeepingWidth = 4
)

func (ab *Intersection) Width() int {
	return ab.widthA + ab.widthB + bookkeepingWidth
}

func (ab *Intersection) split(state []int64) (aState, bState []int64, tail []int64) {
	aState = state[:ab.widthA]
	bState = state[ab.widthA : ab.widthA+ab.widthB]
	tail = state[ab.widthA+ab.widthB:]
	return
}

func (ab *Intersection) Root(state []int64) int {
	aState, bState, tail := ab.split(state)

	rA := ab.A.Root(aState)
	rB := ab.B.Root(bState)

	return ab.combine(tail, rA, rB)
}

func (ab *Intersection) Step(state []int64, level int, take bool) int {
	aState, bState, tail := ab.split(state)

	// A side that has accepted or skipped past level has no set containing
	// level, so taking it rejects.
	var codeA int
	switch {
	case tail[offFrozenA] == 0 && tail[offPendingA] == int64(level):
		codeA = ab.A.Step(aState, level, take)
	case take:
		codeA = Reject
	case tail[offFrozenA] != 0:
		codeA = Accept
	default:
		codeA = int(tail[offPendingA])
	}

	var codeB int
	switch {
	case tail[offFrozenB] == 0 && tail[offPendingB] == int64(level):
		codeB = ab.B.Step(bState, level, take)
	case take:
		codeB = Reject
	case tail[offFrozenB] != 0:
		codeB = Accept
	default:
		codeB = int(tail[offPendingB])
	}

	return ab.combine(tail, codeA, codeB)
}

// combine applies the conjunction's return-code algebra and records each
// side's frozen/pending bookkeeping into tail for the next call.
func (ab *Intersection) combine(tail []int64, codeA, codeB int) int {
	if codeA == Reject || codeB == Reject {
		return Reject
	}
	if codeA == Accept && codeB == Accept {
		return Accept
	}
	if codeA == Accept {
		tail[offFrozenA] = 1
		tail[offPendingB] = int64(codeB)
		return codeB
	}
	if codeB == Accept {
		tail[offFrozenB] = 1
		tail[offPendingA] = int64(codeA)
		return codeA
	}
	tail[offPendingA] = int64(codeA)
	tail[offPendingB] = int64(codeB)
	if codeA > codeB {
		return codeA
	}
	return codeB
}
