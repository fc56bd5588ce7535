// This file declares the join-semilattice record and its combinators.
package semilattice

import "github.com/katalvlaran/ordlath/order"

// Join is a partial order together with a total binary operation Op that
// realizes the least-upper-bound relation for every pair of elements.
//
// Required laws (vetted by CheckJoin):
//   - bound:      Le(l, Op(l,r)) and Le(r, Op(l,r))
//   - least:      Le(l, u) && Le(r, u) ⇒ Le(Op(l,r), u)
//   - congruence: Eq(a,a') && Eq(b,b') ⇒ Eq(Op(a,b), Op(a',b'))
//
// Commutativity, idempotence and associativity (all up to Eq) follow.
type Join[T any] struct {
	order.PartialOrder[T]

	// Op returns a least upper bound of its arguments.
	Op func(a, b T) T
}

// Order returns the underlying partial order of the semilattice.
func (j Join[T]) Order() order.PartialOrder[T] { return j.PartialOrder }

// ProductJoin joins pairs componentwise. The bound and least clauses hold
// per component, so the product operation realizes the product bound.
func ProductJoin[A, B any](p Join[A], q Join[B]) Join[order.Pair[A, B]] {
	return Join[order.Pair[A, B]]{
		PartialOrder: order.ProductPartial(p.PartialOrder, q.PartialOrder),
		Op: func(a, b order.Pair[A, B]) order.Pair[A, B] {
			return order.Pair[A, B]{Fst: p.Op(a.Fst, b.Fst), Snd: q.Op(a.Snd, b.Snd)}
		},
	}
}

// PointwiseJoin joins functions argument-wise over the probe domain dom.
func PointwiseJoin[X, B any](dom []X, q Join[B]) Join[func(X) B] {
	return Join[func(X) B]{
		PartialOrder: order.PointwisePartial(dom, q.PartialOrder),
		Op: func(f, g func(X) B) func(X) B {
			return func(x X) B { return q.Op(f(x), g(x)) }
		},
	}
}
