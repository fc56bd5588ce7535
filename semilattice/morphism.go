// This file declares operation-preserving morphisms between semilattices.
package semilattice

// JoinMorphism maps one join semilattice into another, preserving the
// operation up to Eq: F(Op(a,b)) == Op(F(a), F(b)). Operation preservation
// implies monotonicity (a ≤ b gives Op(a,b) == b, hence
// F(b) == Op(F(a), F(b)), hence F(a) ≤ F(b)).
type JoinMorphism[A, B any] struct {
	Dom Join[A]
	Cod Join[B]
	F   func(A) B
}

// Apply evaluates the morphism at a.
func (m JoinMorphism[A, B]) Apply(a A) B { return m.F(a) }

// IdentityJoin returns the identity morphism on j.
func IdentityJoin[A any](j Join[A]) JoinMorphism[A, A] {
	return JoinMorphism[A, A]{Dom: j, Cod: j, F: func(a A) A { return a }}
}

// ComposeJoin returns g after f; preservation composes.
func ComposeJoin[A, B, C any](g JoinMorphism[B, C], f JoinMorphism[A, B]) JoinMorphism[A, C] {
	return JoinMorphism[A, C]{
		Dom: f.Dom,
		Cod: g.Cod,
		F:   func(a A) C { return g.F(f.F(a)) },
	}
}

// MeetMorphism maps one meet semilattice into another, preserving the
// operation up to Eq: F(Op(a,b)) == Op(F(a), F(b)).
type MeetMorphism[A, B any] struct {
	Dom Meet[A]
	Cod Meet[B]
	F   func(A) B
}

// Apply evaluates the morphism at a.
func (m MeetMorphism[A, B]) Apply(a A) B { return m.F(a) }

// IdentityMeet returns the identity morphism on mt.
func IdentityMeet[A any](mt Meet[A]) MeetMorphism[A, A] {
	return MeetMorphism[A, A]{Dom: mt, Cod: mt, F: func(a A) A { return a }}
}

// ComposeMeet returns g after f; preservation composes.
func ComposeMeet[A, B, C any](g MeetMorphism[B, C], f MeetMorphism[A, B]) MeetMorphism[A, C] {
	return MeetMorphism[A, C]{
		Dom: f.Dom,
		Cod: g.Cod,
		F:   func(a A) C { return g.F(f.F(a)) },
	}
}
