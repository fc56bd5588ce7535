// Package lattice pairs join- and meet-semilattice structure on a single
// carrier with a single shared ordering.
//
// 🚀 What is a lattice instance?
//
//	A Lattice[T] is one order.PartialOrder plus two total binary
//	operations, Join and Meet, each realizing its bound relation. The
//	two semilattice views are obtained by structural projection (AsJoin,
//	AsMeet) — the same order value flows into both, no law is re-proved
//	and nothing is duplicated.
//
// ✨ What the package offers:
//   - Lattice records with AsJoin / AsMeet projections
//   - Combinators Product and Pointwise, threading both operations
//     simultaneously
//   - Instances: Bool (or/and), Props (Or/And on decided propositions),
//     One (trivial)
//   - Morphisms preserving both operations, with Identity and Compose
//   - Check / CheckMorphism, delegating to the semilattice checkers on
//     the two projections
//
// Errors surface from package semilattice (and order underneath); lattice
// adds no sentinels of its own.
package lattice
