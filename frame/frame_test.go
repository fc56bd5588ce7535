package frame_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ordlath/frame"
	"github.com/katalvlaran/ordlath/lattice"
	"github.com/katalvlaran/ordlath/order"
	"github.com/katalvlaran/ordlath/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chainFrame returns the frame of integers 0..top under min/max: meets and
// joins of a total order, Sup as the running maximum, bottom 0.
func chainFrame(top int) frame.Frame[int] {
	return frame.Frame[int]{
		Lattice: lattice.Lattice[int]{
			PartialOrder: order.NatPartial(),
			Join: func(a, b int) int {
				if a >= b {
					return a
				}

				return b
			},
			Meet: func(a, b int) int {
				if a <= b {
					return a
				}

				return b
			},
		},
		Top: top,
		Sup: func(fam []int) int {
			m := 0
			for _, v := range fam {
				if v > m {
					m = v
				}
			}

			return m
		},
	}
}

// subsetSamples returns a spanning sample of subsets of {1,2,3}: empty,
// singletons, two overlapping pairs and the whole carrier.
func subsetSamples() []func(int) prop.Prop {
	return []func(int) prop.Prop{
		frame.SetOf[int](),
		frame.SetOf(1),
		frame.SetOf(2),
		frame.SetOf(1, 2),
		frame.SetOf(2, 3),
		frame.SetOf(1, 2, 3),
	}
}

// TestCheck_CanonicalInstances verifies the full frame contract — top,
// realized suprema, distributivity, derived bottom, join/sup agreement —
// for the trivial, chain and subset frames.
func TestCheck_CanonicalInstances(t *testing.T) {
	props := []prop.Prop{prop.True(), prop.False(), prop.Any(nil)}
	assert.NoError(t, frame.Check(frame.Trivial(), props), "trivial frame must be lawful")
	assert.NoError(t, frame.Check(chainFrame(9), []int{0, 2, 5, 9}), "chain frame must be lawful")
	assert.NoError(t, frame.Check(frame.Subset([]int{1, 2, 3}), subsetSamples()),
		"subset frame must be lawful")

	prod := frame.Product(chainFrame(9), frame.Trivial())
	pairs := []order.Pair[int, prop.Prop]{
		{Fst: 0, Snd: prop.False()},
		{Fst: 2, Snd: prop.True()},
		{Fst: 9, Snd: prop.True()},
	}
	assert.NoError(t, frame.Check(prod, pairs), "product frame must be lawful")
}

// TestCheck_RejectsBrokenFrames verifies the checker names the violated
// law: a non-dominating top, and a sum posing as a supremum.
func TestCheck_RejectsBrokenFrames(t *testing.T) {
	low := chainFrame(4)
	assert.ErrorIs(t, frame.Check(low, []int{0, 2, 7}), frame.ErrTopNotGreatest,
		"an element above top must be detected")

	bad := chainFrame(9)
	bad.Sup = func(fam []int) int {
		s := 0
		for _, v := range fam {
			s += v
		}

		return s
	}
	assert.ErrorIs(t, frame.Check(bad, []int{1, 2}), frame.ErrSupNotLeast,
		"a sum exceeds the least upper bound")
}

// TestBottom_IsEmptySup verifies the derived bottom: Sup(nil) sits below
// every element of every instance.
func TestBottom_IsEmptySup(t *testing.T) {
	fr := frame.Subset([]int{1, 2, 3})
	empty := fr.Bottom()
	for _, u := range subsetSamples() {
		assert.True(t, fr.Le(empty, u), "the empty sup must be below every open")
	}
	assert.True(t, fr.Eq(empty, frame.SetOf[int]()), "the empty sup must be the empty set")
}

// TestFrameLaw_RandomFamilies sweeps the distributive law over random
// subsets of {1,2,3} with a fixed seed: Meet(x, Sup(f)) == Sup(Meet(x, f_i))
// in both directions (Eq is symmetric, so one Eq covers both).
func TestFrameLaw_RandomFamilies(t *testing.T) {
	fr := frame.Subset([]int{1, 2, 3})
	rng := rand.New(rand.NewSource(11))
	randomSet := func() func(int) prop.Prop {
		members := make([]int, 0, 3)
		for _, m := range []int{1, 2, 3} {
			if rng.Intn(2) == 1 {
				members = append(members, m)
			}
		}

		return frame.SetOf(members...)
	}

	for trial := 0; trial < 200; trial++ {
		x := randomSet()
		fam := make([]func(int) prop.Prop, rng.Intn(4))
		for i := range fam {
			fam[i] = randomSet()
		}

		lhs := fr.Meet(x, fr.Sup(fam))
		cut := make([]func(int) prop.Prop, len(fam))
		for i, v := range fam {
			cut[i] = fr.Meet(x, v)
		}
		require.True(t, fr.Eq(lhs, fr.Sup(cut)), "frame law must hold for trial %d", trial)
	}
}

// TestJoin_AgreesWithPairSup verifies binary joins interoperate with
// arbitrary-arity suprema: Join(u,v) == Sup([u,v]) in every instance.
func TestJoin_AgreesWithPairSup(t *testing.T) {
	fr := frame.Subset([]int{1, 2, 3})
	for _, u := range subsetSamples() {
		for _, v := range subsetSamples() {
			assert.True(t, fr.Eq(fr.Join(u, v), fr.Sup([]func(int) prop.Prop{u, v})),
				"binary join must agree with the two-element sup")
		}
	}

	ch := chainFrame(9)
	assert.True(t, ch.Eq(ch.Join(3, 7), ch.Sup([]int{3, 7})), "chain join must agree with pair sup")
}
