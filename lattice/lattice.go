// This file declares the Lattice record, its semilattice projections,
// combinators, canonical instances and morphisms.
package lattice

import (
	"github.com/katalvlaran/ordlath/order"
	"github.com/katalvlaran/ordlath/prop"
	"github.com/katalvlaran/ordlath/semilattice"
)

// Lattice carries both semilattice operations over one shared partial
// order. Every Lattice is simultaneously a join semilattice and a meet
// semilattice; see AsJoin and AsMeet.
type Lattice[T any] struct {
	order.PartialOrder[T]

	// Join returns a least upper bound of its arguments.
	Join func(a, b T) T

	// Meet returns a greatest lower bound of its arguments.
	Meet func(a, b T) T
}

// AsJoin projects the join-semilattice view. Pure structural projection:
// the returned instance shares the lattice's order and operation values.
func (l Lattice[T]) AsJoin() semilattice.Join[T] {
	return semilattice.Join[T]{PartialOrder: l.PartialOrder, Op: l.Join}
}

// AsMeet projects the meet-semilattice view.
func (l Lattice[T]) AsMeet() semilattice.Meet[T] {
	return semilattice.Meet[T]{PartialOrder: l.PartialOrder, Op: l.Meet}
}

// Product threads both operations componentwise through pairs.
func Product[A, B any](p Lattice[A], q Lattice[B]) Lattice[order.Pair[A, B]] {
	return Lattice[order.Pair[A, B]]{
		PartialOrder: order.ProductPartial(p.PartialOrder, q.PartialOrder),
		Join: func(a, b order.Pair[A, B]) order.Pair[A, B] {
			return order.Pair[A, B]{Fst: p.Join(a.Fst, b.Fst), Snd: q.Join(a.Snd, b.Snd)}
		},
		Meet: func(a, b order.Pair[A, B]) order.Pair[A, B] {
			return order.Pair[A, B]{Fst: p.Meet(a.Fst, b.Fst), Snd: q.Meet(a.Snd, b.Snd)}
		},
	}
}

// Pointwise threads both operations argument-wise over the probe domain.
func Pointwise[X, B any](dom []X, q Lattice[B]) Lattice[func(X) B] {
	return Lattice[func(X) B]{
		PartialOrder: order.PointwisePartial(dom, q.PartialOrder),
		Join: func(f, g func(X) B) func(X) B {
			return func(x X) B { return q.Join(f(x), g(x)) }
		},
		Meet: func(f, g func(X) B) func(X) B {
			return func(x X) B { return q.Meet(f(x), g(x)) }
		},
	}
}

// Bool returns the boolean lattice: or as join, and as meet.
func Bool() Lattice[bool] {
	return Lattice[bool]{
		PartialOrder: order.TwoPartial(),
		Join:         func(a, b bool) bool { return a || b },
		Meet:         func(a, b bool) bool { return a && b },
	}
}

// Props returns the lattice of decided propositions under entailment.
func Props() Lattice[prop.Prop] {
	return Lattice[prop.Prop]{
		PartialOrder: order.FromPreorder(order.Preorder[prop.Prop]{Le: prop.Implies}),
		Join:         prop.Or,
		Meet:         prop.And,
	}
}

// One returns the trivial lattice on the one-element carrier.
func One() Lattice[order.Unit] {
	pick := func(order.Unit, order.Unit) order.Unit { return order.Unit{} }

	return Lattice[order.Unit]{
		PartialOrder: order.OnePartial(),
		Join:         pick,
		Meet:         pick,
	}
}

// Morphism maps one lattice into another, preserving both operations up to
// Eq on the codomain.
type Morphism[A, B any] struct {
	Dom Lattice[A]
	Cod Lattice[B]
	F   func(A) B
}

// Apply evaluates the morphism at a.
func (m Morphism[A, B]) Apply(a A) B { return m.F(a) }

// AsJoin projects the join-semilattice morphism view.
func (m Morphism[A, B]) AsJoin() semilattice.JoinMorphism[A, B] {
	return semilattice.JoinMorphism[A, B]{Dom: m.Dom.AsJoin(), Cod: m.Cod.AsJoin(), F: m.F}
}

// AsMeet projects the meet-semilattice morphism view.
func (m Morphism[A, B]) AsMeet() semilattice.MeetMorphism[A, B] {
	return semilattice.MeetMorphism[A, B]{Dom: m.Dom.AsMeet(), Cod: m.Cod.AsMeet(), F: m.F}
}

// Identity returns the identity morphism on l.
func Identity[A any](l Lattice[A]) Morphism[A, A] {
	return Morphism[A, A]{Dom: l, Cod: l, F: func(a A) A { return a }}
}

// Compose returns g after f; preservation of both operations composes.
func Compose[A, B, C any](g Morphism[B, C], f Morphism[A, B]) Morphism[A, C] {
	return Morphism[A, C]{
		Dom: f.Dom,
		Cod: g.Cod,
		F:   func(a A) C { return g.F(f.F(a)) },
	}
}

// Check vets the lattice laws over xs by checking both projections.
func Check[T any](l Lattice[T], xs []T) error {
	if err := semilattice.CheckJoin(l.AsJoin(), xs); err != nil {
		return err
	}

	return semilattice.CheckMeet(l.AsMeet(), xs)
}

// CheckMorphism vets preservation of both operations over pairs from xs.
func CheckMorphism[A, B any](m Morphism[A, B], xs []A) error {
	if err := semilattice.CheckJoinMorphism(m.AsJoin(), xs); err != nil {
		return err
	}

	return semilattice.CheckMeetMorphism(m.AsMeet(), xs)
}
