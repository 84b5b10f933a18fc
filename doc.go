// Package survkit is a toolkit for composing and evaluating parametric
// survival distributions in health-economic decision models.
//
// 🚀 What is survkit?
//
//	Time-to-event models in practice are composites: trial data projected
//	onto registry data at a cutpoint, mixed cohorts, hazard ratios layered
//	on treatment arms, shifted time origins, competing risks, covariate
//	conditioning. survkit represents such a model as an immutable
//	expression tree and keeps the algebra honest:
//		• survexpr/ — operator constructors (Join, Mix, ApplyHR/AF/OR,
//		  ApplyShift, AddHazards, SetCovariates), eager validation with
//		  sentinel errors, and the collapse rules that stop chained
//		  same-kind operators from growing the tree
//		• surveval/ — the recursive evaluator: survival and conditional
//		  event-probability curves, join-boundary and summary hooks
//
// ✨ Why survkit?
//
//   - Fail-fast construction — a partially built tree is never observable
//   - Immutable values — share sub-trees across goroutines freely, no locks
//   - Normalized structure — ApplyHR(ApplyHR(e, 2), 3) IS ApplyHR(e, 6),
//     and identity applications return the expression untouched
//   - Pure Go — the distribution mathematics stays behind one small
//     Distribution interface you implement (or generate from a fitter)
//
// Quick sketch:
//
//	d1, d2 := survexpr.MustBase(fitA), survexpr.MustBase(fitB)
//	tree, _ := survexpr.Join([]survexpr.Expr{d1, d2}, []float64{10})
//	tree, _ = survexpr.ApplyHR(tree, 0.7)
//	s, _ := surveval.ComputeSurv(tree, []float64{0, 5, 10, 15})
//
// Dive into the package docs of survexpr and surveval for the full
// contracts, and the example tests for worked scenarios.
//
//	go get github.com/katalvlaran/survkit
package survkit
