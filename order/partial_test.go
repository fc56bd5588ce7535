package order_test

import (
	"testing"

	"github.com/katalvlaran/ordlath/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// byAbs orders integers by absolute value: a genuinely quotiented partial
// order, where Eq identifies x and -x without them being identical.
func byAbs() order.PartialOrder[int] {
	return order.PullbackPartial(func(x int) int {
		if x < 0 {
			return -x
		}

		return x
	}, order.NatPartial())
}

// TestCheckPartial_CanonicalInstances verifies the partial-order laws —
// equivalence structure, congruence, antisymmetry — for every shipped
// partial instance.
func TestCheckPartial_CanonicalInstances(t *testing.T) {
	assert.NoError(t, order.CheckPartial(order.OnePartial(), []order.Unit{{}}),
		"trivial partial order must be lawful")
	assert.NoError(t, order.CheckPartial(order.TwoPartial(), []bool{false, true}),
		"boolean partial order must be lawful")
	assert.NoError(t, order.CheckPartial(order.NatPartial(), randomInts(4, 24)),
		"integer partial order must be lawful")
	assert.NoError(t, order.CheckPartial(order.DiscretePartial[string](), []string{"", "x", "y"}),
		"discrete partial order must be lawful")
}

// TestCheckPartial_ProductAndLift verifies the two constructions whose
// obligations are easiest to get wrong: the product of partial orders and
// the lift of a preorder both satisfy congruence and antisymmetry over a
// quotiented sample (elements equivalent without being identical).
func TestCheckPartial_ProductAndLift(t *testing.T) {
	qs := []int{-3, -2, -1, 0, 1, 2, 3}
	require.NoError(t, order.CheckPartial(byAbs(), qs),
		"preorder-to-partial-order lift must be lawful on a quotient order")

	p := order.ProductPartial(byAbs(), order.TwoPartial())
	pairs := make([]order.Pair[int, bool], 0, len(qs)*2)
	for _, x := range qs {
		pairs = append(pairs,
			order.Pair[int, bool]{Fst: x, Snd: false},
			order.Pair[int, bool]{Fst: x, Snd: true})
	}
	assert.NoError(t, order.CheckPartial(p, pairs),
		"product must preserve congruence and antisymmetry")
}

// TestEq_IsEquivalence re-derives reflexivity, symmetry and transitivity
// of the derived Eq from the preorder laws on a quotient order.
func TestEq_IsEquivalence(t *testing.T) {
	po := byAbs()
	xs := []int{-2, -1, 0, 1, 2}
	for _, x := range xs {
		assert.True(t, po.Eq(x, x), "eq must be reflexive")
		for _, y := range xs {
			assert.Equal(t, po.Eq(x, y), po.Eq(y, x), "eq must be symmetric")
			for _, z := range xs {
				if po.Eq(x, y) && po.Eq(y, z) {
					assert.True(t, po.Eq(x, z), "eq must be transitive")
				}
			}
		}
	}
	assert.True(t, po.Eq(2, -2), "a quotient order must identify distinct representatives")
}

// TestMonotone_IdentityAndCompose verifies the morphism laws: identity is
// monotone, composition of monotone maps is monotone and Eq-congruent.
func TestMonotone_IdentityAndCompose(t *testing.T) {
	xs := randomInts(5, 16)
	nat := order.Nat()

	id := order.Identity(nat)
	assert.True(t, order.IsMonotone(id, xs), "identity must be monotone")
	assert.True(t, order.IsCongruent(id, xs), "identity must be eq-congruent")

	double := order.Monotone[int, int]{Dom: nat, Cod: nat, F: func(x int) int { return 2 * x }}
	succ := order.Monotone[int, int]{Dom: nat, Cod: nat, F: func(x int) int { return x + 1 }}
	comp := order.Compose(succ, double)
	assert.True(t, order.IsMonotone(comp, xs), "composites of monotone maps must be monotone")
	assert.True(t, order.IsCongruent(comp, xs), "composites must stay eq-congruent")
	assert.Equal(t, 7, comp.Apply(3), "composition must apply right-to-left")

	neg := order.Monotone[int, int]{Dom: nat, Cod: nat, F: func(x int) int { return -x }}
	assert.False(t, order.IsMonotone(neg, []int{0, 1}), "negation must fail monotonicity")
}

// TestMonotone_CongruenceOnQuotient verifies that a map constant on Eq
// classes passes IsCongruent on a quotient order while a class-splitting
// map fails it.
func TestMonotone_CongruenceOnQuotient(t *testing.T) {
	xs := []int{-2, -1, 0, 1, 2}
	abs := func(x int) int {
		if x < 0 {
			return -x
		}

		return x
	}

	respect := order.Monotone[int, int]{Dom: byAbs().Preorder, Cod: order.Nat(), F: abs}
	assert.True(t, order.IsCongruent(respect, xs), "abs respects the abs quotient")
	assert.True(t, order.IsMonotone(respect, xs), "abs is monotone for the abs order")

	split := order.Monotone[int, int]{Dom: byAbs().Preorder, Cod: order.Nat(), F: func(x int) int { return x }}
	assert.False(t, order.IsCongruent(split, xs), "the identity splits the abs quotient")
}
