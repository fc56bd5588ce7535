// Package order provides preorders and partial orders as immutable,
// value-level instances, together with the generic combinators and
// morphisms every higher layer (semilattice, lattice, frame) builds on.
//
// 🚀 What is an order instance?
//
//	A Preorder[T] is nothing more than a reflexive, transitive relation
//	Le over a carrier T, packaged as a value so that instances can be
//	combined: ordered pairs (Product), ordered function spaces
//	(Pointwise), orders pulled back along a map (Pullback), and the
//	canonical small orders One, Two, Nat and Discrete.
//
//	A PartialOrder[T] is a Preorder whose derived equivalence
//	Eq(a,b) := Le(a,b) && Le(b,a) is respected by Le itself. Antisymmetry
//	comes for free from that definition; congruence of Le is a genuine
//	obligation, discharged by CheckPartial.
//
// ✨ What the package offers:
//   - Preorder / PartialOrder records with a derived Eq
//   - Bound relations: IsTop, IsBottom, IsMax, IsMin, IsSup, IsInf —
//     each an upper/lower-bound clause plus a least/greatest clause,
//     quantified over a caller-supplied finite universe
//   - Directed families and Scott continuity checks
//   - Combinators: Product, Pointwise, Pullback, One, Two, Nat, Discrete
//   - Monotone morphisms with Identity and Compose
//   - Law checkers (Check, CheckPartial) returning sentinel errors, run
//     once at instance-registration time
//
// Laws cannot be enforced by the type system, so the contract is split the
// way the rest of this library splits it: combinators preserve laws by
// construction, hand-rolled instances are vetted by the checkers, and the
// test suite sweeps every shipped instance.
//
// Everything is pure: instances are built once and never mutated, and all
// relations are total, deterministic functions of their arguments.
//
// Errors:
//
//	ErrNotReflexive     - Le(x,x) failed for a sample element.
//	ErrNotTransitive    - Le(x,y) and Le(y,z) without Le(x,z).
//	ErrNotAntisymmetric - mutual Le without derived equivalence.
//	ErrNotCongruent     - Le distinguishes Eq-equal elements.
package order
