// This file declares the meet-semilattice record and its combinators,
// dual to join.go.
package semilattice

import "github.com/katalvlaran/ordlath/order"

// Meet is a partial order together with a total binary operation Op that
// realizes the greatest-lower-bound relation for every pair of elements.
//
// Required laws (vetted by CheckMeet):
//   - bound:      Le(Op(l,r), l) and Le(Op(l,r), r)
//   - greatest:   Le(u, l) && Le(u, r) ⇒ Le(u, Op(l,r))
//   - congruence: Eq(a,a') && Eq(b,b') ⇒ Eq(Op(a,b), Op(a',b'))
type Meet[T any] struct {
	order.PartialOrder[T]

	// Op returns a greatest lower bound of its arguments.
	Op func(a, b T) T
}

// Order returns the underlying partial order of the semilattice.
func (m Meet[T]) Order() order.PartialOrder[T] { return m.PartialOrder }

// ProductMeet meets pairs componentwise.
func ProductMeet[A, B any](p Meet[A], q Meet[B]) Meet[order.Pair[A, B]] {
	return Meet[order.Pair[A, B]]{
		PartialOrder: order.ProductPartial(p.PartialOrder, q.PartialOrder),
		Op: func(a, b order.Pair[A, B]) order.Pair[A, B] {
			return order.Pair[A, B]{Fst: p.Op(a.Fst, b.Fst), Snd: q.Op(a.Snd, b.Snd)}
		},
	}
}

// PointwiseMeet meets functions argument-wise over the probe domain dom.
func PointwiseMeet[X, B any](dom []X, q Meet[B]) Meet[func(X) B] {
	return Meet[func(X) B]{
		PartialOrder: order.PointwisePartial(dom, q.PartialOrder),
		Op: func(f, g func(X) B) func(X) B {
			return func(x X) B { return q.Op(f(x), g(x)) }
		},
	}
}
