// This file provides the generic order combinators and the canonical small
// instances. Each combinator returns a fresh instance whose laws follow
// from the components' laws; nothing is re-proved at runtime.
package order

// Product orders pairs componentwise: (a,b) ≤ (x,y) iff a ≤ x and b ≤ y.
// Reflexivity and transitivity hold per component.
func Product[A, B any](p Preorder[A], q Preorder[B]) Preorder[Pair[A, B]] {
	return Preorder[Pair[A, B]]{
		Le: func(a, b Pair[A, B]) bool {
			return p.Le(a.Fst, b.Fst) && q.Le(a.Snd, b.Snd)
		},
	}
}

// Pointwise orders functions argument-wise over a finite probe domain:
// f ≤ g iff f(x) ≤ g(x) for every x in dom. With dom enumerating the whole
// carrier of X this is exactly the function-space order; with a sample it
// is the order observable through those probes.
func Pointwise[X, B any](dom []X, q Preorder[B]) Preorder[func(X) B] {
	probes := append([]X(nil), dom...)

	return Preorder[func(X) B]{
		Le: func(f, g func(X) B) bool {
			for _, x := range probes {
				if !q.Le(f(x), g(x)) {
					return false
				}
			}

			return true
		},
	}
}

// Pullback transports an order on B back along f: a ≤ a' iff f(a) ≤ f(a').
// Reflexivity and transitivity are inherited from q through f.
func Pullback[A, B any](f func(A) B, q Preorder[B]) Preorder[A] {
	return Preorder[A]{
		Le: func(a, b A) bool { return q.Le(f(a), f(b)) },
	}
}

// One returns the trivial order on the one-element carrier.
func One() Preorder[Unit] {
	return Preorder[Unit]{Le: func(Unit, Unit) bool { return true }}
}

// Two returns the boolean order with false below true.
func Two() Preorder[bool] {
	return Preorder[bool]{Le: func(a, b bool) bool { return !a || b }}
}

// Nat returns the standard arithmetic order on machine integers.
func Nat() Preorder[int] {
	return Preorder[int]{Le: func(a, b int) bool { return a <= b }}
}

// Discrete returns the discrete order: equality as ordering. Every element
// is comparable only to itself.
func Discrete[T comparable]() Preorder[T] {
	return Preorder[T]{Le: func(a, b T) bool { return a == b }}
}

// ProductPartial is Product at the partial-order layer. Congruence of the
// product Le for the product Eq follows componentwise from the components'
// congruence; the test suite additionally sweeps it.
func ProductPartial[A, B any](p PartialOrder[A], q PartialOrder[B]) PartialOrder[Pair[A, B]] {
	return PartialOrder[Pair[A, B]]{Preorder: Product(p.Preorder, q.Preorder)}
}

// PointwisePartial is Pointwise at the partial-order layer.
func PointwisePartial[X, B any](dom []X, q PartialOrder[B]) PartialOrder[func(X) B] {
	return PartialOrder[func(X) B]{Preorder: Pointwise(dom, q.Preorder)}
}

// PullbackPartial is Pullback at the partial-order layer.
func PullbackPartial[A, B any](f func(A) B, q PartialOrder[B]) PartialOrder[A] {
	return PartialOrder[A]{Preorder: Pullback(f, q.Preorder)}
}

// OnePartial returns the trivial partial order.
func OnePartial() PartialOrder[Unit] { return PartialOrder[Unit]{Preorder: One()} }

// TwoPartial returns the boolean partial order.
func TwoPartial() PartialOrder[bool] { return PartialOrder[bool]{Preorder: Two()} }

// NatPartial returns the arithmetic partial order on machine integers.
func NatPartial() PartialOrder[int] { return PartialOrder[int]{Preorder: Nat()} }

// DiscretePartial returns the discrete partial order.
func DiscretePartial[T comparable]() PartialOrder[T] {
	return PartialOrder[T]{Preorder: Discrete[T]()}
}
