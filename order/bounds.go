// This file defines the bound relations (top, bottom, max, min, sup, inf),
// directed families, and Scott continuity.
//
// Carriers may be infinite, so the least/greatest clauses of each relation
// are quantified over a caller-supplied finite universe of sample elements.
// Over that universe the relations are decided exactly; the library's own
// instances are additionally law-checked by construction.
package order

// IsUpperBound reports whether b dominates every element of fam.
func IsUpperBound[T any](p Preorder[T], fam []T, b T) bool {
	for _, x := range fam {
		if !p.Le(x, b) {
			return false
		}
	}

	return true
}

// IsLowerBound reports whether b is below every element of fam.
func IsLowerBound[T any](p Preorder[T], fam []T, b T) bool {
	for _, x := range fam {
		if !p.Le(b, x) {
			return false
		}
	}

	return true
}

// IsTop reports whether t dominates every element of universe.
func IsTop[T any](p Preorder[T], t T, universe []T) bool {
	return IsUpperBound(p, universe, t)
}

// IsBottom reports whether b is below every element of universe.
func IsBottom[T any](p Preorder[T], b T, universe []T) bool {
	return IsLowerBound(p, universe, b)
}

// IsSup reports whether m is a supremum of fam: an upper bound that is
// below every upper bound drawn from universe. Suprema are unique only up
// to Eq — two elements satisfying IsSup for the same family are mutually
// ordered, never necessarily identical.
func IsSup[T any](p Preorder[T], fam []T, m T, universe []T) bool {
	if !IsUpperBound(p, fam, m) {
		return false
	}
	for _, u := range universe {
		if IsUpperBound(p, fam, u) && !p.Le(m, u) {
			return false
		}
	}

	return true
}

// IsInf reports whether m is an infimum of fam: a lower bound dominating
// every lower bound drawn from universe.
func IsInf[T any](p Preorder[T], fam []T, m T, universe []T) bool {
	if !IsLowerBound(p, fam, m) {
		return false
	}
	for _, u := range universe {
		if IsLowerBound(p, fam, u) && !p.Le(u, m) {
			return false
		}
	}

	return true
}

// IsMax reports whether m is a least upper bound of the pair {l, r},
// with the least clause quantified over universe.
func IsMax[T any](p Preorder[T], l, r, m T, universe []T) bool {
	return IsSup(p, []T{l, r}, m, universe)
}

// IsMin reports whether m is a greatest lower bound of the pair {l, r},
// with the greatest clause quantified over universe.
func IsMin[T any](p Preorder[T], l, r, m T, universe []T) bool {
	return IsInf(p, []T{l, r}, m, universe)
}

// Directed reports whether fam is directed: every two members have a common
// upper bound within fam itself. The empty family is not directed.
func Directed[T any](p Preorder[T], fam []T) bool {
	if len(fam) == 0 {
		return false
	}
	for i := range fam {
		for j := range fam {
			if !hasCommonBound(p, fam, fam[i], fam[j]) {
				return false
			}
		}
	}

	return true
}

func hasCommonBound[T any](p Preorder[T], fam []T, a, b T) bool {
	for _, k := range fam {
		if p.Le(a, k) && p.Le(b, k) {
			return true
		}
	}

	return false
}

// ScottContinuous reports whether f commutes with directed suprema: for
// every directed family in fams that has a supremum m within uniA, the
// image family has f(m) as a supremum within uniB. Families that are not
// directed, or whose supremum does not occur in uniA, are skipped — they
// impose no obligation.
func ScottContinuous[A, B any](
	p Preorder[A],
	q Preorder[B],
	f func(A) B,
	fams [][]A,
	uniA []A,
	uniB []B,
) bool {
	for _, fam := range fams {
		if !Directed(p, fam) {
			continue
		}
		for _, m := range uniA {
			if !IsSup(p, fam, m, uniA) {
				continue
			}
			img := make([]B, len(fam))
			for i, x := range fam {
				img[i] = f(x)
			}
			if !IsSup(q, img, f(m), uniB) {
				return false
			}
		}
	}

	return true
}
