// This file implements the cover-splitting algorithm: existential
// elimination on the trivial frame, lifted to arbitrary frames through a
// point's morphism.
package cover

import "github.com/katalvlaran/ordlath/prop"

// Split eliminates the existential in a covering family of propositions:
// given that prop.Any(ps) holds (the precondition every caller owes), it
// returns an index whose proposition holds.
//
// In the trivial frame "Top entails Sup(ps)" is, up to unfolding, exactly
// an existential witness, and Any records that witness as it decides; this
// function is the matching elimination form.
//
// Split panics when no branch holds. That can only happen when the
// precondition was asserted for an instance that broke its verified laws —
// a construction-time contract violation, deliberately not an error value:
// the protocol has no "no match" outcome.
func Split(ps []prop.Prop) int {
	if w, ok := prop.Any(ps).Witness(); ok {
		return w
	}
	panic("cover: no branch holds; a lawful cover and point cannot reach this")
}

// Resolve produces a branch of the cover the point lies in. It is total:
// the Membership evidence (from Locate) supplies "the point is in the
// target", the cover was constructed with "target ≤ Sup(branches)", and
// the point's morphism pushes that cover relation into the trivial frame,
// where Split extracts the witness.
//
// Branches may overlap; Resolve returns the first holding branch in key
// order, but callers must not rely on which overlapping branch they get.
func (m Membership[I, T]) Resolve() I {
	pushed := m.pt.Morphism().Push(m.cov.opens)

	return m.cov.keys[Split(pushed)]
}

// ResolveWhole is the common entry point — overlapping pattern matching
// against a cover of the whole frame: for a Whole-built cover every lawful
// point lies in the target (Top is preserved), so no membership evidence
// needs to be presented.
//
// ResolveWhole panics when the point is outside the target, which for a
// Whole cover and a verified point cannot happen; for covers of a smaller
// target use Locate and Membership.Resolve instead.
func ResolveWhole[I comparable, T any](c *Cover[I, T], pt Point[T]) I {
	m, err := c.Locate(pt)
	if err != nil {
		panic("cover: point outside a whole-frame cover; the point violates top preservation")
	}

	return m.Resolve()
}
