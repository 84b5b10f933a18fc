// SPDX-License-Identifier: MIT
// Package survexpr: AddHazards — additive-hazards (competing risks) constructor.

package survexpr

// minAddHazardsMembers: hazard summation is defined for any non-empty set of
// non-negative hazard functions, so a single member is structurally valid —
// unlike Join/Mix, which need at least two.
const minAddHazardsMembers = 1

// AddHazards builds a flat additive-hazards node summing the member hazards
// (independent competing-risks combination).
//
// A single member yields an AdditiveHazards node with one member; it is NOT
// collapsed to the member itself, so the evaluator always sees the variant
// it was given.
//
// Errors: ErrTooFewMembers (zero members), ErrNilExpr.
// Complexity: O(N), one node allocated.
func AddHazards(xs ...Expr) (Expr, error) {
	if err := requireMembers(methodAddHazards, xs, minAddHazardsMembers); err != nil {
		return nil, err
	}

	members := make([]Expr, len(xs))
	copy(members, xs)

	return &AdditiveHazards{Members: members}, nil
}
