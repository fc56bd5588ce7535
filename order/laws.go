// This file provides the law checkers run at instance-registration time.
// A violation is a construction-time contract failure: the instance must
// not be used, and no later operation will re-detect the breakage.
package order

import (
	"errors"
	"fmt"
)

// Sentinel errors for order law violations.
var (
	// ErrNotReflexive indicates Le(x, x) failed for some sample element.
	ErrNotReflexive = errors.New("order: relation is not reflexive")

	// ErrNotTransitive indicates Le(x,y) and Le(y,z) held without Le(x,z).
	ErrNotTransitive = errors.New("order: relation is not transitive")

	// ErrNotAntisymmetric indicates mutual Le without derived equivalence.
	ErrNotAntisymmetric = errors.New("order: relation is not antisymmetric")

	// ErrNotCongruent indicates Le distinguishes Eq-equal elements.
	ErrNotCongruent = errors.New("order: relation is not a congruence for eq")
)

// Check vets the preorder laws over every element, pair and triple of xs.
// Complexity: O(|xs|³) calls to Le.
func Check[T any](p Preorder[T], xs []T) error {
	for _, x := range xs {
		if !p.Le(x, x) {
			return fmt.Errorf("%w: le(%v, %v) = false", ErrNotReflexive, x, x)
		}
	}
	for _, x := range xs {
		for _, y := range xs {
			if !p.Le(x, y) {
				continue
			}
			for _, z := range xs {
				if p.Le(y, z) && !p.Le(x, z) {
					return fmt.Errorf("%w: le(%v,%v), le(%v,%v), but not le(%v,%v)",
						ErrNotTransitive, x, y, y, z, x, z)
				}
			}
		}
	}

	return nil
}

// CheckPartial vets the partial-order laws over xs: the preorder laws,
// antisymmetry, and congruence of Le for the derived Eq. The equivalence
// laws of Eq itself (reflexivity via le_refl twice, symmetry, transitivity)
// follow from the preorder laws and are exercised by the same sweeps.
func CheckPartial[T any](po PartialOrder[T], xs []T) error {
	if err := Check(po.Preorder, xs); err != nil {
		return err
	}
	for _, x := range xs {
		for _, y := range xs {
			if po.Le(x, y) && po.Le(y, x) && !po.Eq(x, y) {
				return fmt.Errorf("%w: %v and %v are mutually ordered but not eq",
					ErrNotAntisymmetric, x, y)
			}
		}
	}
	// Congruence: eq-equal elements are interchangeable inside Le.
	for _, a := range xs {
		for _, x := range xs {
			if !po.Eq(a, x) {
				continue
			}
			for _, b := range xs {
				if po.Le(a, b) != po.Le(x, b) || po.Le(b, a) != po.Le(b, x) {
					return fmt.Errorf("%w: substituting %v for %v changes an ordering fact",
						ErrNotCongruent, x, a)
				}
			}
		}
	}

	return nil
}
