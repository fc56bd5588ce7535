// This file declares the Frame record, the derived bottom element, and the
// canonical instances: Trivial, Pointwise and Subset.
package frame

import (
	"github.com/katalvlaran/ordlath/lattice"
	"github.com/katalvlaran/ordlath/order"
	"github.com/katalvlaran/ordlath/prop"
)

// Frame is a lattice with a greatest element and a family supremum,
// subject to the frame distributive law (see Check):
//
//	Meet(x, Sup(f)) == Sup(i ↦ Meet(x, f[i]))
//
// Sup must realize the supremum bound relation for every family and be
// congruent under pointwise-Eq families; Top must dominate everything.
type Frame[T any] struct {
	lattice.Lattice[T]

	// Top is the greatest element of the frame.
	Top T

	// Sup returns a least upper bound of the whole family at once.
	// Sup(nil) is the bottom element.
	Sup func(fam []T) T
}

// Bottom returns the derived least element: the supremum of the empty
// family. It is below every element of a lawful frame.
func (f Frame[T]) Bottom() T { return f.Sup(nil) }

// Trivial returns the frame of decided propositions under entailment:
// Top is the true proposition and Sup is the existential Any. The frame
// law reduces to distributing an existential over a conjunction. Points of
// an arbitrary frame evaluate their opens into this one.
func Trivial() Frame[prop.Prop] {
	return Frame[prop.Prop]{
		Lattice: lattice.Props(),
		Top:     prop.True(),
		Sup:     prop.Any,
	}
}

// Pointwise lifts a frame to the function space func(X) B, with every
// operation applied argument-wise and the order probed over dom.
func Pointwise[X, B any](dom []X, q Frame[B]) Frame[func(X) B] {
	return Frame[func(X) B]{
		Lattice: lattice.Pointwise(dom, q.Lattice),
		Top:     func(X) B { return q.Top },
		Sup: func(fam []func(X) B) func(X) B {
			fixed := make([]func(X) B, len(fam))
			copy(fixed, fam)

			return func(x X) B {
				vals := make([]B, len(fixed))
				for i, f := range fixed {
					vals[i] = f(x)
				}

				return q.Sup(vals)
			}
		},
	}
}

// Product pairs two frames componentwise: the product lattice, the pair of
// tops, and suprema taken per component. The frame law holds per component.
func Product[A, B any](p Frame[A], q Frame[B]) Frame[order.Pair[A, B]] {
	return Frame[order.Pair[A, B]]{
		Lattice: lattice.Product(p.Lattice, q.Lattice),
		Top:     order.Pair[A, B]{Fst: p.Top, Snd: q.Top},
		Sup: func(fam []order.Pair[A, B]) order.Pair[A, B] {
			fs := make([]A, len(fam))
			ss := make([]B, len(fam))
			for i, v := range fam {
				fs[i] = v.Fst
				ss[i] = v.Snd
			}

			return order.Pair[A, B]{Fst: p.Sup(fs), Snd: q.Sup(ss)}
		},
	}
}

// Subset returns the frame of subsets of dom, modeled as predicates into
// the trivial frame: Pointwise(dom, Trivial()). Meet is intersection, Sup
// is union, Top is the whole of dom, Bottom is the empty set.
func Subset[X any](dom []X) Frame[func(X) prop.Prop] {
	return Pointwise(dom, Trivial())
}

// SetOf builds the characteristic predicate of a finite set of members,
// for use with Subset frames.
func SetOf[X comparable](members ...X) func(X) prop.Prop {
	set := make(map[X]struct{}, len(members))
	for _, m := range members {
		set[m] = struct{}{}
	}

	return func(x X) prop.Prop {
		_, ok := set[x]

		return prop.Of(ok)
	}
}
