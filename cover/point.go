// This file declares points: frame morphisms into the trivial frame,
// modeling "evaluate this open at one location".
package cover

import (
	"github.com/katalvlaran/ordlath/frame"
	"github.com/katalvlaran/ordlath/prop"
)

// Point is a location of the space described by a frame: the record wraps
// the preimage map of the point, a frame morphism from the frame of opens
// into the trivial frame of decided propositions. (Viewed through the
// locale glasses the arrow goes the other way — from the one-point space
// into the space — but the computable content is always the preimage.)
type Point[T any] struct {
	mor frame.Morphism[T, prop.Prop]
}

// NewPoint builds a point from its preimage map and verifies the frame
// morphism laws over samples. The returned point satisfies the full
// contract Resolve depends on: in particular it sends covers to covers
// and sends Top to a holding proposition.
func NewPoint[T any](dom frame.Frame[T], preimage func(T) prop.Prop, samples []T) (Point[T], error) {
	m, err := frame.New(dom, frame.Trivial(), preimage, samples)
	if err != nil {
		return Point[T]{}, err
	}

	return Point[T]{mor: m}, nil
}

// FromMorphism wraps an already-verified frame morphism as a point.
func FromMorphism[T any](m frame.Morphism[T, prop.Prop]) Point[T] {
	return Point[T]{mor: m}
}

// Contains reports whether the point lies in the open u: it evaluates the
// preimage proposition.
func (p Point[T]) Contains(u T) bool { return p.mor.Apply(u).Holds() }

// Morphism returns the underlying frame morphism.
func (p Point[T]) Morphism() frame.Morphism[T, prop.Prop] { return p.mor }
