// Package cover implements the point/cover protocol on top of package
// frame: overlapping pattern matching made total.
//
// 🚀 The idea
//
//	A Point of a frame is, operationally, the preimage map of a location
//	in the space: a frame morphism sending every open of the frame to the
//	decided proposition "the point lies in this open". A Cover is an
//	indexed family of opens whose supremum dominates a target open,
//	established once, at construction, by the checking constructor.
//
//	Given a point known to lie in the target, Resolve produces one branch
//	of the cover the point actually lies in:
//
//	 1. Push the cover through the point's morphism — morphisms send
//	    covers to covers, so the preimage of the target entails the
//	    existential supremum of the branch preimages.
//	 2. The preimage of the target holds (that is the Membership
//	    evidence), so the existential holds.
//	 3. Split eliminates the existential and hands back the witness index.
//
// ✨ Why "overlapping pattern matching"?
//
//	The branches are conditions that are jointly exhaustive over the
//	target but free to overlap: a point may lie in several. Resolve
//	returns some branch that holds — callers must not rely on which one.
//	There is no "no match" outcome to handle: the cover proof is demanded
//	up front (New/Whole fail with ErrNotACover otherwise) and membership
//	evidence is demanded at the call site (Locate fails with
//	ErrOutsideTarget otherwise), so by the time Resolve runs the branch
//	is guaranteed to exist.
//
// Every operation is a stateless, pure, total function of its arguments;
// covers and points are immutable after construction.
//
// Errors:
//
//	ErrNotACover      - the branches do not cover the target.
//	ErrOutsideTarget  - the point does not lie in the cover's target.
//	ErrDuplicateKey   - two branches share an index key.
package cover
