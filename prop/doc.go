// Package prop provides the decidable proposition type that carries the
// trivial ("one-point") frame: the algebra of truth values every point of a
// space evaluates its opens into.
//
// 🚀 What is a Prop?
//
//	A Prop is a proposition that has already been decided — it either holds
//	or it does not — together with, when the decision came from an
//	existential supremum (Any), the index of the witness that decided it.
//	Keeping the witness is what turns "there exists a branch containing the
//	point" into "here is branch i": the cover-splitting algorithm in package
//	cover is, at bottom, Witness() on an Any-built Prop.
//
// ✨ The algebra:
//   - Implies(p, q) — entailment, the ordering of the trivial frame
//   - Iff(p, q)     — derived equivalence (mutual entailment)
//   - And, Or, Not  — finite connectives (meet, join, complement)
//   - All, Any      — finite infimum and existential supremum over families
//
// The frame law for this carrier is the familiar distribution of an
// existential over a conjunction:
//
//	x ∧ (∃i. f[i])  ⟺  ∃i. (x ∧ f[i])
//
// Witnesses are bookkeeping, not identity: Iff and Implies ignore them, so
// two Props deciding the same way are equivalent regardless of how they were
// built. Equality of Props is only ever meaningful up to Iff.
//
// All values are immutable; every function is pure and total.
package prop
