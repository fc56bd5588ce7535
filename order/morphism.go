// This file declares monotone morphisms between orders, with identity and
// composition, plus the sample-based monotonicity and congruence checks.
package order

// Monotone is a structure-preserving map between two ordered carriers:
// Le(a, b) in Dom implies Le(F(a), F(b)) in Cod.
//
// At the partial-order layer a morphism must additionally be Eq-congruent;
// that property is derivable (Eq is mutual Le, and F preserves both
// directions), so the same record serves both layers. IsCongruent is still
// provided for vetting hand-rolled instances.
type Monotone[A, B any] struct {
	Dom Preorder[A]
	Cod Preorder[B]
	F   func(A) B
}

// Apply evaluates the morphism at a.
func (m Monotone[A, B]) Apply(a A) B { return m.F(a) }

// Identity returns the identity morphism on p. Trivially monotone.
func Identity[A any](p Preorder[A]) Monotone[A, A] {
	return Monotone[A, A]{Dom: p, Cod: p, F: func(a A) A { return a }}
}

// Compose returns g after f. Monotonicity composes; identity is a left and
// right unit and composition is associative, all up to Eq on the codomain.
func Compose[A, B, C any](g Monotone[B, C], f Monotone[A, B]) Monotone[A, C] {
	return Monotone[A, C]{
		Dom: f.Dom,
		Cod: g.Cod,
		F:   func(a A) C { return g.F(f.F(a)) },
	}
}

// IsMonotone reports whether m preserves Le over every pair drawn from xs.
func IsMonotone[A, B any](m Monotone[A, B], xs []A) bool {
	for _, a := range xs {
		for _, b := range xs {
			if m.Dom.Le(a, b) && !m.Cod.Le(m.F(a), m.F(b)) {
				return false
			}
		}
	}

	return true
}

// IsCongruent reports whether m sends Eq-equal arguments from xs to
// Eq-equal results.
func IsCongruent[A, B any](m Monotone[A, B], xs []A) bool {
	for _, a := range xs {
		for _, b := range xs {
			if m.Dom.Eq(a, b) && !m.Cod.Eq(m.F(a), m.F(b)) {
				return false
			}
		}
	}

	return true
}
