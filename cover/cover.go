// This file declares covers and membership evidence, with the checking
// constructors that make "no match" unrepresentable at resolution time.
package cover

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ordlath/frame"
)

// Sentinel errors for cover construction and location.
var (
	// ErrNotACover indicates the branches' supremum does not dominate the target.
	ErrNotACover = errors.New("cover: branches do not cover the target")

	// ErrOutsideTarget indicates the point does not lie in the cover's target.
	ErrOutsideTarget = errors.New("cover: point lies outside the target")

	// ErrDuplicateKey indicates two branches share an index key.
	ErrDuplicateKey = errors.New("cover: duplicate branch key")
)

// Cover is an indexed family of opens dominating a target open of a frame.
// The covering fact Le(target, Sup(branches)) is established once by New
// and never re-checked; covers are pure data, immutable after
// construction. Branch order follows the keys slice given to New, so
// resolution is deterministic for a given cover value.
type Cover[I comparable, T any] struct {
	fr     frame.Frame[T]
	target T
	keys   []I
	opens  []T
}

// New builds a cover of target by the family i ↦ open(i) over keys.
// Fails with ErrNotACover when the branches do not dominate the target —
// the covering proof is a construction requirement, not a call-site
// concern.
func New[I comparable, T any](fr frame.Frame[T], target T, keys []I, open func(I) T) (*Cover[I, T], error) {
	seen := make(map[I]struct{}, len(keys))
	ks := make([]I, 0, len(keys))
	opens := make([]T, 0, len(keys))
	for _, k := range keys {
		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, k)
		}
		seen[k] = struct{}{}
		ks = append(ks, k)
		opens = append(opens, open(k))
	}
	if !fr.Le(target, fr.Sup(opens)) {
		return nil, ErrNotACover
	}

	return &Cover[I, T]{fr: fr, target: target, keys: ks, opens: opens}, nil
}

// Whole builds a cover of the entire frame: the target is Top, so the
// branches must be jointly exhaustive. This is the cover shape behind
// ResolveWhole, the overlapping-pattern-matching entry point.
func Whole[I comparable, T any](fr frame.Frame[T], keys []I, open func(I) T) (*Cover[I, T], error) {
	return New(fr, fr.Top, keys, open)
}

// Target returns the covered open.
func (c *Cover[I, T]) Target() T { return c.target }

// Keys returns the branch keys in construction order.
func (c *Cover[I, T]) Keys() []I { return append([]I(nil), c.keys...) }

// Open returns the branch open at key k. The second result is false when
// k is not a key of the cover.
func (c *Cover[I, T]) Open(k I) (T, bool) {
	for i, key := range c.keys {
		if key == k {
			return c.opens[i], true
		}
	}
	var zero T

	return zero, false
}

// Membership is evidence that a point lies in a cover's target. The only
// way to obtain one is Locate, which decides the membership proposition;
// holding a Membership is what entitles a caller to Resolve.
type Membership[I comparable, T any] struct {
	cov *Cover[I, T]
	pt  Point[T]
}

// Locate decides whether pt lies in the cover's target and, if so, returns
// the membership evidence. Fails with ErrOutsideTarget otherwise — this is
// the protocol's only representable failure.
func (c *Cover[I, T]) Locate(pt Point[T]) (Membership[I, T], error) {
	if !pt.Contains(c.target) {
		return Membership[I, T]{}, ErrOutsideTarget
	}

	return Membership[I, T]{cov: c, pt: pt}, nil
}
