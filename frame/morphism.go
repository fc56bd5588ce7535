// This file declares frame morphisms with the full and the weak builder,
// identity, composition, and the cover-pushing helper the point protocol
// relies on.
package frame

import (
	"fmt"

	"github.com/katalvlaran/ordlath/lattice"
	"github.com/katalvlaran/ordlath/order"
)

// Morphism maps one frame into another. Required laws, all up to Eq on the
// codomain:
//
//	meet: F(Meet(a,b)) == Meet(F(a), F(b))
//	sup:  F(Sup(g))    == Sup(i ↦ F(g[i]))
//	top:  F(Top)       == Top
//
// Monotonicity and Bottom preservation are consequences: a ≤ b means
// Meet(a,b) == a, so F(a) == Meet(F(a), F(b)) ≤ F(b); and Bottom is the
// empty Sup, which the sup law sends to the empty Sup.
type Morphism[A, B any] struct {
	Dom Frame[A]
	Cod Frame[B]
	F   func(A) B
}

// Apply evaluates the morphism at a.
func (m Morphism[A, B]) Apply(a A) B { return m.F(a) }

// AsLattice projects the lattice-morphism view.
func (m Morphism[A, B]) AsLattice() lattice.Morphism[A, B] {
	return lattice.Morphism[A, B]{Dom: m.Dom.Lattice, Cod: m.Cod.Lattice, F: m.F}
}

// Monotone projects the order-morphism view; monotonicity is implied by
// meet preservation.
func (m Morphism[A, B]) Monotone() order.Monotone[A, B] {
	return order.Monotone[A, B]{Dom: m.Dom.Preorder, Cod: m.Cod.Preorder, F: m.F}
}

// Push maps a family through the morphism. Morphisms send covers to
// covers: if U ≤ Sup(fam) then F(U) ≤ Sup(Push(fam)), by monotonicity and
// the sup law. Package cover leans on exactly this.
func (m Morphism[A, B]) Push(fam []A) []B {
	out := make([]B, len(fam))
	for i, a := range fam {
		out[i] = m.F(a)
	}

	return out
}

// Identity returns the identity morphism on f. Every law holds on the
// nose, hence in particular up to Eq.
func Identity[A any](f Frame[A]) Morphism[A, A] {
	return Morphism[A, A]{Dom: f, Cod: f, F: func(a A) A { return a }}
}

// Compose returns g after f. Each preservation law composes; identity is a
// unit and composition is associative, up to Eq on the codomain.
func Compose[A, B, C any](g Morphism[B, C], f Morphism[A, B]) Morphism[A, C] {
	return Morphism[A, C]{
		Dom: f.Dom,
		Cod: g.Cod,
		F:   func(a A) C { return g.F(f.F(a)) },
	}
}

// New builds a morphism and verifies the full contract — meet, sup and top
// preservation plus Eq-congruence — over samples and the finite families
// drawn from them. The first violated law is reported as a sentinel error
// and the morphism must not be used.
func New[A, B any](dom Frame[A], cod Frame[B], f func(A) B, samples []A) (Morphism[A, B], error) {
	m := Morphism[A, B]{Dom: dom, Cod: cod, F: f}
	if err := checkMorphism(m, samples); err != nil {
		return Morphism[A, B]{}, err
	}

	return m, nil
}

// NewFromParts is the weak builder: it demands only the four obligations
// that are cheap to establish directly — Eq-congruence, top preservation,
// binary-meet preservation and sup preservation — and derives the full
// record from them (monotonicity and bottom preservation need no separate
// evidence). Prefer it when proving finite-meet preservation in full
// generality is awkward; the result satisfies the same contract as one
// built by New.
func NewFromParts[A, B any](dom Frame[A], cod Frame[B], f func(A) B, samples []A) (Morphism[A, B], error) {
	m := Morphism[A, B]{Dom: dom, Cod: cod, F: f}
	if !order.IsCongruent(m.Monotone(), samples) {
		return Morphism[A, B]{}, ErrMorphismCongruence
	}
	if !cod.Eq(f(dom.Top), cod.Top) {
		return Morphism[A, B]{}, ErrMorphismTop
	}
	for _, a := range samples {
		for _, b := range samples {
			if !cod.Eq(f(dom.Meet(a, b)), cod.Meet(f(a), f(b))) {
				return Morphism[A, B]{}, fmt.Errorf("%w: at (%v, %v)", ErrMorphismMeet, a, b)
			}
		}
	}
	if err := checkMorphismSup(m, samples); err != nil {
		return Morphism[A, B]{}, err
	}

	return m, nil
}

func checkMorphism[A, B any](m Morphism[A, B], samples []A) error {
	if err := lattice.CheckMorphism(m.AsLattice(), samples); err != nil {
		return fmt.Errorf("%w: %v", ErrMorphismMeet, err)
	}
	if !m.Cod.Eq(m.F(m.Dom.Top), m.Cod.Top) {
		return ErrMorphismTop
	}
	if !order.IsCongruent(m.Monotone(), samples) {
		return ErrMorphismCongruence
	}

	return checkMorphismSup(m, samples)
}

func checkMorphismSup[A, B any](m Morphism[A, B], samples []A) error {
	for _, fam := range familiesFrom(samples) {
		if !m.Cod.Eq(m.F(m.Dom.Sup(fam)), m.Cod.Sup(m.Push(fam))) {
			return fmt.Errorf("%w: family of %d elements", ErrMorphismSup, len(fam))
		}
	}

	return nil
}

// familiesFrom enumerates the empty family, all singletons, all pairs and
// all triples over samples — the shapes every family-quantified law is
// vetted against.
func familiesFrom[T any](samples []T) [][]T {
	fams := [][]T{nil}
	for _, a := range samples {
		fams = append(fams, []T{a})
		for _, b := range samples {
			fams = append(fams, []T{a, b})
			for _, c := range samples {
				fams = append(fams, []T{a, b, c})
			}
		}
	}

	return fams
}
