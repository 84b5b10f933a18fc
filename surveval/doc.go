// Package surveval evaluates composite survival expression trees built by
// survexpr, turning a tree plus a time grid into survival or conditional
// event-probability values.
//
// 🚀 What is surveval?
//
//	survexpr fixes the shape of a composite tree; surveval is the
//	collaborator that walks it. One recursive entrypoint, ComputeSurv,
//	dispatches exhaustively over the closed variant set:
//	  • Base                   — delegate to the opaque Distribution handle
//	  • Projection             — early curve before the cutpoint, re-based
//	    continuation S_early(at)·S_late(t−at) after it
//	  • Pooled                 — weighted sum, weights normalized by their sum
//	  • ProportionalHazards    — S(t)^hr
//	  • AcceleratedFailureTime — S(t/af)
//	  • ProportionalOdds       — S / (S + or·(1−S))
//	  • Shift                  — S_base(t−shift), survival 1 before the
//	    shifted origin
//	  • AdditiveHazards        — product of member survivals (summed hazards)
//	  • CovariateModel         — per-row evaluation, mean across rows
//
// ✨ Guarantees it relies on (and never re-checks):
//   - Persisted ratio nodes never carry the identity 1, persisted shifts
//     never carry 0, and no chain of same-kind wrappers exists — survexpr's
//     collapse rule normalized them away.
//   - Trees are immutable, so evaluation never takes a lock and many
//     goroutines may evaluate the same tree concurrently.
//
// ⚙️ Usage:
//
//	s, err := surveval.ComputeSurv(tree, []float64{0, 1, 2, 5})
//	p, err := surveval.ComputeSurv(tree, times, surveval.WithKind(surveval.ConditionalProb))
//
// The distribution mathematics stays external: leaves evaluate through the
// survexpr.Distribution handle, and covariate rows reach leaves implementing
// CovariateDistribution.
package surveval
