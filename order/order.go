// This file declares the Preorder and PartialOrder records, the Pair and
// Unit carriers, and the derived equivalence.
package order

// Preorder is a reflexive, transitive ordering Le over the carrier T,
// packaged as an immutable value.
//
// Invariants (vetted by Check, preserved by every combinator):
//
//	Le(x, x)                          for all x
//	Le(x, y) && Le(y, z) ⇒ Le(x, z)   for all x, y, z
type Preorder[T any] struct {
	// Le reports whether a precedes b. Must be reflexive and transitive.
	Le func(a, b T) bool
}

// Eq is the equivalence derived from the ordering: mutual Le. It is never
// an independently chosen relation; every notion of "equality" above the
// preorder layer — uniqueness of bounds, morphism laws, frame laws — means
// Eq, not literal identity.
func (p Preorder[T]) Eq(a, b T) bool { return p.Le(a, b) && p.Le(b, a) }

// PartialOrder is a Preorder whose Le respects the derived Eq: substituting
// Eq-equal elements never changes an ordering fact. Antisymmetry
// (mutual Le implies Eq) holds definitionally, since Eq is mutual Le;
// congruence is the real obligation and is vetted by CheckPartial.
type PartialOrder[T any] struct {
	Preorder[T]
}

// FromPreorder lifts a preorder to a partial order on the same carrier.
// The lift changes no data: it records the claim that Le is congruent for
// the derived Eq. That claim is not checkable here; run CheckPartial over
// a sample universe before trusting a lifted instance.
func FromPreorder[T any](p Preorder[T]) PartialOrder[T] {
	return PartialOrder[T]{Preorder: p}
}

// Pair is the carrier of product orders: componentwise data, componentwise
// ordering.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Unit is the one-element carrier of the trivial order.
type Unit struct{}
