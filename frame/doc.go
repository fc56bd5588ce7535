// Package frame implements frames — complete lattices in which finite meet
// distributes over arbitrary join — and the structure-preserving morphisms
// between them. Frames are the algebra of open sets of a space; package
// cover builds the point/cover protocol on top of them.
//
// 🚀 What is a frame instance?
//
//	A Frame[T] is a lattice.Lattice plus a greatest element Top and a
//	supremum Sup over whole families at once, subject to the frame law:
//
//		Meet(x, Sup(f)) == Sup(i ↦ Meet(x, f[i]))
//
//	in both directions, up to Eq. Bottom is not primitive: it is Sup of
//	the empty family. Sup takes the realized family []T — a supremum
//	depends only on the family's image, so index bookkeeping lives in
//	package cover, which maps arbitrary keyed branches onto positional
//	families.
//
// ✨ What the package offers:
//   - Frame records with derived Bottom
//   - Instances: Trivial (decided propositions; Sup is the existential
//     Any, the frame law is ∃ distributing over ∧), Pointwise (function
//     spaces), Subset (predicates into the trivial frame, i.e. subsets
//     of a finite carrier) with the SetOf helper, and the Product
//     combinator threading everything componentwise
//   - Morphisms preserving meet, Sup and Top, with Identity and Compose;
//     monotonicity and Bottom preservation fall out as consequences
//   - Two builders: New verifies the full contract on samples, while
//     NewFromParts accepts the four weaker obligations (congruence, top,
//     binary meet, sup) and derives the rest — use it when a direct
//     finite-meet argument is awkward
//   - Check, the registration-time law checker
//
// Errors:
//
//	ErrTopNotGreatest     - Top fails to dominate a sample element.
//	ErrSupNotBound        - Sup(fam) fails the upper-bound clause.
//	ErrSupNotLeast        - Sup(fam) exceeds some upper bound.
//	ErrDistributivity     - the frame law fails for some x and family.
//	ErrBottomNotLeast     - Sup(nil) fails to sit below a sample element.
//	ErrJoinSupMismatch    - binary Join disagrees with Sup of the pair.
//	ErrMorphismMeet       - morphism fails binary-meet preservation.
//	ErrMorphismSup        - morphism fails supremum preservation.
//	ErrMorphismTop        - morphism fails top preservation.
//	ErrMorphismCongruence - morphism distinguishes Eq-equal elements.
package frame
