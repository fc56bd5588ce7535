// This file provides the semilattice law checkers, run once at instance
// registration over a finite sample universe.
package semilattice

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ordlath/order"
)

// Sentinel errors for semilattice law violations.
var (
	// ErrNotUpperBound indicates Op(l,r) does not dominate an argument.
	ErrNotUpperBound = errors.New("semilattice: join is not an upper bound")

	// ErrNotLeast indicates Op(l,r) exceeds some common upper bound.
	ErrNotLeast = errors.New("semilattice: join is not least among upper bounds")

	// ErrNotLowerBound indicates Op(l,r) does not sit below an argument.
	ErrNotLowerBound = errors.New("semilattice: meet is not a lower bound")

	// ErrNotGreatest indicates Op(l,r) is below some common lower bound.
	ErrNotGreatest = errors.New("semilattice: meet is not greatest among lower bounds")

	// ErrOpNotCongruent indicates the operation distinguishes Eq-equal arguments.
	ErrOpNotCongruent = errors.New("semilattice: operation is not a congruence for eq")

	// ErrMorphismOp indicates a morphism fails to preserve the operation.
	ErrMorphismOp = errors.New("semilattice: morphism does not preserve the operation")
)

// CheckJoin vets the join laws over every pair drawn from xs: the
// underlying partial-order laws, both bound clauses, the least clause, and
// congruence. Complexity: O(|xs|³) relation calls.
func CheckJoin[T any](j Join[T], xs []T) error {
	if err := order.CheckPartial(j.PartialOrder, xs); err != nil {
		return err
	}
	for _, l := range xs {
		for _, r := range xs {
			m := j.Op(l, r)
			if !j.Le(l, m) || !j.Le(r, m) {
				return fmt.Errorf("%w: op(%v,%v) = %v", ErrNotUpperBound, l, r, m)
			}
			for _, u := range xs {
				if j.Le(l, u) && j.Le(r, u) && !j.Le(m, u) {
					return fmt.Errorf("%w: op(%v,%v) = %v exceeds bound %v", ErrNotLeast, l, r, m, u)
				}
			}
		}
	}

	return checkOpCongruent(j.PartialOrder, j.Op, xs)
}

// CheckMeet vets the meet laws over every pair drawn from xs, dually to
// CheckJoin.
func CheckMeet[T any](mt Meet[T], xs []T) error {
	if err := order.CheckPartial(mt.PartialOrder, xs); err != nil {
		return err
	}
	for _, l := range xs {
		for _, r := range xs {
			m := mt.Op(l, r)
			if !mt.Le(m, l) || !mt.Le(m, r) {
				return fmt.Errorf("%w: op(%v,%v) = %v", ErrNotLowerBound, l, r, m)
			}
			for _, u := range xs {
				if mt.Le(u, l) && mt.Le(u, r) && !mt.Le(u, m) {
					return fmt.Errorf("%w: op(%v,%v) = %v below bound %v", ErrNotGreatest, l, r, m, u)
				}
			}
		}
	}

	return checkOpCongruent(mt.PartialOrder, mt.Op, xs)
}

func checkOpCongruent[T any](po order.PartialOrder[T], op func(a, b T) T, xs []T) error {
	for _, a := range xs {
		for _, a2 := range xs {
			if !po.Eq(a, a2) {
				continue
			}
			for _, b := range xs {
				if !po.Eq(op(a, b), op(a2, b)) || !po.Eq(op(b, a), op(b, a2)) {
					return fmt.Errorf("%w: arguments %v == %v", ErrOpNotCongruent, a, a2)
				}
			}
		}
	}

	return nil
}

// CheckJoinMorphism vets operation preservation of m over pairs from xs.
func CheckJoinMorphism[A, B any](m JoinMorphism[A, B], xs []A) error {
	for _, a := range xs {
		for _, b := range xs {
			if !m.Cod.Eq(m.F(m.Dom.Op(a, b)), m.Cod.Op(m.F(a), m.F(b))) {
				return fmt.Errorf("%w: at (%v, %v)", ErrMorphismOp, a, b)
			}
		}
	}

	return nil
}

// CheckMeetMorphism vets operation preservation of m over pairs from xs.
func CheckMeetMorphism[A, B any](m MeetMorphism[A, B], xs []A) error {
	for _, a := range xs {
		for _, b := range xs {
			if !m.Cod.Eq(m.F(m.Dom.Op(a, b)), m.Cod.Op(m.F(a), m.F(b))) {
				return fmt.Errorf("%w: at (%v, %v)", ErrMorphismOp, a, b)
			}
		}
	}

	return nil
}
