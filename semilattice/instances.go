// This file provides the canonical semilattice instances, exposed as pure
// factory functions rather than shared singletons.
package semilattice

import (
	"github.com/katalvlaran/ordlath/order"
	"github.com/katalvlaran/ordlath/prop"
)

// BoolJoin returns the boolean join semilattice: false ≤ true, Op = or.
func BoolJoin() Join[bool] {
	return Join[bool]{
		PartialOrder: order.TwoPartial(),
		Op:           func(a, b bool) bool { return a || b },
	}
}

// BoolMeet returns the boolean meet semilattice: Op = and.
func BoolMeet() Meet[bool] {
	return Meet[bool]{
		PartialOrder: order.TwoPartial(),
		Op:           func(a, b bool) bool { return a && b },
	}
}

// NatJoin returns the machine-integer join semilattice under arithmetic
// max. No canonical meet instance is shipped for this carrier.
func NatJoin() Join[int] {
	return Join[int]{
		PartialOrder: order.NatPartial(),
		Op: func(a, b int) int {
			if a >= b {
				return a
			}

			return b
		},
	}
}

// propOrder is the entailment partial order on decided propositions.
func propOrder() order.PartialOrder[prop.Prop] {
	return order.FromPreorder(order.Preorder[prop.Prop]{Le: prop.Implies})
}

// PropJoin returns the join semilattice of propositions under Or.
func PropJoin() Join[prop.Prop] {
	return Join[prop.Prop]{PartialOrder: propOrder(), Op: prop.Or}
}

// PropMeet returns the meet semilattice of propositions under And.
func PropMeet() Meet[prop.Prop] {
	return Meet[prop.Prop]{PartialOrder: propOrder(), Op: prop.And}
}

// OneJoin returns the join semilattice on the one-element carrier.
func OneJoin() Join[order.Unit] {
	return Join[order.Unit]{
		PartialOrder: order.OnePartial(),
		Op:           func(order.Unit, order.Unit) order.Unit { return order.Unit{} },
	}
}

// OneMeet returns the meet semilattice on the one-element carrier.
func OneMeet() Meet[order.Unit] {
	return Meet[order.Unit]{
		PartialOrder: order.OnePartial(),
		Op:           func(order.Unit, order.Unit) order.Unit { return order.Unit{} },
	}
}
