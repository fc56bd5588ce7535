// Package ordlath is a compositional algebra of ordered structures —
// preorders, partial orders, semilattices, lattices and frames — with
// structure-preserving morphisms and a constructive cover-splitting
// algorithm ("overlapping pattern matching") on top.
//
// 🚀 What is ordlath?
//
//	A pure, immutable, generics-based library that assembles order
//	theory bottom-up:
//		• order/       — preorders & partial orders, bound relations,
//		  directedness, Scott continuity, combinators, monotone maps
//		• semilattice/ — join/meet operations realizing least/greatest
//		  bounds, with morphisms and instances
//		• lattice/     — both operations on one carrier, by projection
//		• frame/       — Top, family suprema, the distributive law,
//		  frame morphisms (full and weak builders), the trivial,
//		  pointwise and subset frames
//		• cover/       — points, covers, membership evidence and the
//		  total branch-resolution algorithm
//		• prop/        — the decided-proposition carrier of the trivial
//		  frame, with existential witnesses
//
// ✨ Why choose ordlath?
//
//   - Law-governed — every layer's contract is explicit, vetted by
//     registration-time checkers and swept by the test suite
//   - Compositional — product, pointwise and pullback combinators thread
//     laws through instead of re-proving them
//   - Total by construction — cover resolution demands its covering proof
//     up front, so "no match" is unrepresentable rather than handled
//   - Pure Go — immutable values, no goroutines, no hidden deps
//
// Typical use: build a frame for your space of interest (or take Subset
// over a finite carrier), register points with cover.NewPoint, construct
// a jointly exhaustive family with cover.Whole, and let ResolveWhole pick
// the branch each point belongs to — overlapping branches welcome.
//
//	go get github.com/katalvlaran/ordlath
package ordlath
