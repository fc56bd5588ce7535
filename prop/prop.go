// Package prop implements the decided-proposition carrier of the trivial
// frame. This file declares Prop, its constructors, the entailment order,
// and the family connectives All / Any.
package prop

// Prop is a decided proposition. The zero value is the false proposition.
//
// A Prop produced by Any additionally remembers which family index decided
// it; see Witness. The witness never participates in Implies or Iff.
type Prop struct {
	holds   bool
	witness int
	hasWit  bool
}

// True returns the proposition that holds. It is the top element of the
// trivial frame.
func True() Prop { return Prop{holds: true} }

// False returns the proposition that does not hold. It equals Any(nil), the
// empty supremum, and is therefore the bottom element of the trivial frame.
func False() Prop { return Prop{} }

// Of lifts a decided boolean into a Prop with no witness.
func Of(v bool) Prop { return Prop{holds: v} }

// Holds reports whether p holds.
func (p Prop) Holds() bool { return p.holds }

// Witness returns the family index that decided p, when p was produced by
// Any and holds. The second result is false for every other Prop.
func (p Prop) Witness() (int, bool) {
	if p.hasWit && p.holds {
		return p.witness, true
	}

	return 0, false
}

// Implies reports entailment: p ≤ q in the trivial frame's ordering.
// Reflexive and transitive by truth-table inspection.
func Implies(p, q Prop) bool { return !p.holds || q.holds }

// Iff reports mutual entailment, the derived equivalence of the order.
func Iff(p, q Prop) bool { return p.holds == q.holds }

// Not returns the complement of p.
func Not(p Prop) Prop { return Prop{holds: !p.holds} }

// And returns the binary meet of p and q.
func And(p, q Prop) Prop { return Prop{holds: p.holds && q.holds} }

// Or returns the binary join of p and q.
func Or(p, q Prop) Prop { return Prop{holds: p.holds || q.holds} }

// All returns the finite infimum of ps. All(nil) is True, the empty meet.
func All(ps []Prop) Prop {
	for _, p := range ps {
		if !p.holds {
			return Prop{}
		}
	}

	return Prop{holds: true}
}

// Any returns the existential supremum of ps, recording the first holding
// index as the witness. Any(nil) is False, the empty join; this is how the
// trivial frame derives its bottom element.
func Any(ps []Prop) Prop {
	for i, p := range ps {
		if p.holds {
			return Prop{holds: true, witness: i, hasWit: true}
		}
	}

	return Prop{}
}
