// Package semilattice equips partial orders with total binary bound
// operations: Join carries a least-upper-bound operation, Meet a
// greatest-lower-bound operation.
//
// 🚀 What is a semilattice instance?
//
//	A Join[T] is a partial order plus one concrete, total, deterministic
//	function Op realizing the max bound relation for every pair: Op(l,r)
//	dominates both arguments and sits below every other common upper
//	bound. Meet[T] is the dual. The classic equations — commutativity,
//	idempotence, associativity — are consequences of that characterization
//	and hold up to Eq, never up to literal identity.
//
// ✨ What the package offers:
//   - Join / Meet records over any order.PartialOrder
//   - Combinators: ProductJoin/ProductMeet (componentwise) and
//     PointwiseJoin/PointwiseMeet (argument-wise on function carriers)
//   - Instances: booleans (or/and), machine naturals (arithmetic max),
//     propositions (Or/And), and the one-element carrier
//   - Morphisms preserving the operation up to Eq, with Identity/Compose
//   - Law checkers (CheckJoin, CheckMeet, CheckJoinMorphism,
//     CheckMeetMorphism) for vetting hand-rolled instances at
//     registration time
//
// Errors:
//
//	ErrNotUpperBound  - join result fails the upper-bound clause.
//	ErrNotLeast       - join result is not below some common upper bound.
//	ErrNotLowerBound  - meet result fails the lower-bound clause.
//	ErrNotGreatest    - meet result is not above some common lower bound.
//	ErrOpNotCongruent - the operation distinguishes Eq-equal arguments.
//	ErrMorphismOp     - a morphism fails to preserve the operation.
package semilattice
