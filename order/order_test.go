package order_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ordlath/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomInts returns a fixed-seed random sample, so law sweeps are
// reproducible across runs.
func randomInts(seed int64, n int) []int {
	rng := rand.New(rand.NewSource(seed))
	xs := make([]int, n)
	for i := range xs {
		xs[i] = rng.Intn(21) - 10
	}

	return xs
}

// TestCheck_CanonicalInstances verifies the preorder laws for every
// shipped small instance over exhaustive or random samples.
func TestCheck_CanonicalInstances(t *testing.T) {
	assert.NoError(t, order.Check(order.One(), []order.Unit{{}}), "one-point order must be lawful")
	assert.NoError(t, order.Check(order.Two(), []bool{false, true}), "boolean order must be lawful")
	assert.NoError(t, order.Check(order.Nat(), randomInts(1, 24)), "integer order must be lawful")
	assert.NoError(t, order.Check(order.Discrete[string](), []string{"a", "b", "ab", ""}),
		"discrete order must be lawful")
}

// TestCheck_RejectsLawlessRelations verifies the checker reports the
// precise broken law for hand-rolled relations.
func TestCheck_RejectsLawlessRelations(t *testing.T) {
	strict := order.Preorder[int]{Le: func(a, b int) bool { return a < b }}
	assert.ErrorIs(t, order.Check(strict, []int{0, 1}), order.ErrNotReflexive,
		"strict less-than must fail reflexivity")

	within := order.Preorder[int]{Le: func(a, b int) bool { return b-a >= -1 }}
	assert.ErrorIs(t, order.Check(within, []int{0, 1, 2}), order.ErrNotTransitive,
		"tolerance relation must fail transitivity")
}

// TestProduct_OrdersComponentwise verifies the product combinator's laws
// and its componentwise behavior.
func TestProduct_OrdersComponentwise(t *testing.T) {
	p := order.Product(order.Nat(), order.Two())
	xs := []order.Pair[int, bool]{
		{Fst: 0, Snd: false},
		{Fst: 0, Snd: true},
		{Fst: 3, Snd: false},
		{Fst: 3, Snd: true},
	}
	require.NoError(t, order.Check(p, xs), "product of lawful orders must be lawful")

	assert.True(t, p.Le(xs[0], xs[3]), "both components below means pair below")
	assert.False(t, p.Le(xs[1], xs[2]), "incomparable second components must break the pair order")
}

// TestPointwise_OrdersByProbes verifies the function-space order holds iff
// it holds at every probe argument.
func TestPointwise_OrdersByProbes(t *testing.T) {
	dom := []int{0, 1, 2}
	p := order.Pointwise(dom, order.Two())

	none := func(int) bool { return false }
	some := func(x int) bool { return x > 0 }
	all := func(int) bool { return true }
	fs := []func(int) bool{none, some, all}

	require.NoError(t, order.Check(p, fs), "pointwise order must be lawful")
	assert.True(t, p.Le(none, some), "constant false is below everything")
	assert.True(t, p.Le(some, all), "dominated at every probe means below")
	assert.False(t, p.Le(all, some), "a failing probe must break the order")
}

// TestPullback_TransportsOrder verifies pulling the integer order back
// along string length.
func TestPullback_TransportsOrder(t *testing.T) {
	byLen := order.Pullback(func(s string) int { return len(s) }, order.Nat())
	words := []string{"", "a", "b", "ab", "abc"}
	require.NoError(t, order.Check(byLen, words), "pulled-back order must be lawful")

	assert.True(t, byLen.Le("a", "ab"), "shorter sorts below longer")
	assert.True(t, byLen.Eq("a", "b"), "equal lengths are equivalent, not identical")
}

// TestEq_IsDerivedMutualLe verifies the derived equivalence agrees with
// mutual ordering on a random sample.
func TestEq_IsDerivedMutualLe(t *testing.T) {
	p := order.Nat()
	for _, x := range randomInts(2, 16) {
		for _, y := range randomInts(3, 16) {
			assert.Equal(t, p.Le(x, y) && p.Le(y, x), p.Eq(x, y),
				"eq must be exactly mutual le")
		}
	}
}
