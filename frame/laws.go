// This file provides the registration-time law checker for frames and the
// sentinel errors shared with the morphism builders.
package frame

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ordlath/lattice"
	"github.com/katalvlaran/ordlath/order"
)

// Sentinel errors for frame law violations.
var (
	// ErrTopNotGreatest indicates Top fails to dominate a sample element.
	ErrTopNotGreatest = errors.New("frame: top is not the greatest element")

	// ErrSupNotBound indicates Sup(fam) fails the upper-bound clause.
	ErrSupNotBound = errors.New("frame: sup is not an upper bound")

	// ErrSupNotLeast indicates Sup(fam) exceeds some upper bound.
	ErrSupNotLeast = errors.New("frame: sup is not least among upper bounds")

	// ErrDistributivity indicates the frame law failed for some x and family.
	ErrDistributivity = errors.New("frame: meet does not distribute over sup")

	// ErrBottomNotLeast indicates Sup(nil) fails to sit below a sample element.
	ErrBottomNotLeast = errors.New("frame: empty sup is not the least element")

	// ErrJoinSupMismatch indicates binary Join disagrees with Sup of the pair.
	ErrJoinSupMismatch = errors.New("frame: binary join disagrees with pair sup")

	// ErrMorphismMeet indicates a morphism fails meet preservation.
	ErrMorphismMeet = errors.New("frame: morphism does not preserve meet")

	// ErrMorphismSup indicates a morphism fails supremum preservation.
	ErrMorphismSup = errors.New("frame: morphism does not preserve sup")

	// ErrMorphismTop indicates a morphism fails top preservation.
	ErrMorphismTop = errors.New("frame: morphism does not preserve top")

	// ErrMorphismCongruence indicates a morphism distinguishes Eq-equal elements.
	ErrMorphismCongruence = errors.New("frame: morphism is not a congruence for eq")
)

// Check vets the frame laws over xs and the finite families drawn from it:
// the lattice laws, Top as greatest, Sup realizing the supremum relation,
// the distributive law in both directions, Bottom below everything, and
// agreement of the binary Join with the Sup of a two-element family.
//
// Sup congruence under pointwise-Eq families needs no separate sweep: two
// pointwise-Eq families share their upper bounds, so the realized-sup
// clauses already pin both suprema down to the same Eq class.
//
// Complexity: O(|xs|⁴) relation calls — registration-time only.
func Check[T any](f Frame[T], xs []T) error {
	if err := lattice.Check(f.Lattice, xs); err != nil {
		return err
	}
	if !order.IsTop(f.Preorder, f.Top, xs) {
		return ErrTopNotGreatest
	}
	if !order.IsBottom(f.Preorder, f.Bottom(), xs) {
		return ErrBottomNotLeast
	}
	for _, fam := range familiesFrom(xs) {
		m := f.Sup(fam)
		if !order.IsUpperBound(f.Preorder, fam, m) {
			return fmt.Errorf("%w: family of %d elements", ErrSupNotBound, len(fam))
		}
		for _, u := range xs {
			if order.IsUpperBound(f.Preorder, fam, u) && !f.Le(m, u) {
				return fmt.Errorf("%w: bound %v", ErrSupNotLeast, u)
			}
		}
		for _, x := range xs {
			lhs := f.Meet(x, m)
			cut := make([]T, len(fam))
			for i, v := range fam {
				cut[i] = f.Meet(x, v)
			}
			if !f.Eq(lhs, f.Sup(cut)) {
				return fmt.Errorf("%w: x = %v, family of %d elements",
					ErrDistributivity, x, len(fam))
			}
		}
	}
	for _, u := range xs {
		for _, v := range xs {
			if !f.Eq(f.Join(u, v), f.Sup([]T{u, v})) {
				return fmt.Errorf("%w: join(%v, %v)", ErrJoinSupMismatch, u, v)
			}
		}
	}

	return nil
}
