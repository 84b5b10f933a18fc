// Package survexpr is a small algebra for composing parametric survival
// distributions into immutable expression trees, as used in health-economic
// decision modeling.
//
// 🚀 What is survexpr?
//
//	Analysts rarely model time-to-event with one curve. They project one
//	fitted distribution onto another after a cutpoint, mix cohorts, scale
//	hazards or event times, shift time origins and condition on covariates.
//	survexpr gives each of those moves a validated constructor:
//	  • Join / JoinAt      — temporal projection/switchover at cutpoints
//	  • Mix                — weighted mixture of distributions
//	  • ApplyHR / ApplyAF / ApplyOR — proportional hazards / accelerated
//	    failure time / proportional odds scaling
//	  • ApplyShift         — time-origin shift
//	  • AddHazards         — independent competing-risks combination
//	  • SetCovariates      — covariate conditioning with a row table
//
// ✨ Key guarantees:
//   - Every constructor validates eagerly and returns sentinel errors;
//     a partially built tree is never observable.
//   - Nodes are immutable once constructed. "Re-applying" a hazard ratio
//     produces a new node; existing references stay valid.
//   - Same-kind proportional/shift applications collapse: ApplyHR twice is
//     structurally identical to ApplyHR once with the product, and an
//     identity application returns the input expression unchanged.
//   - Structural sharing of sub-trees is safe across goroutines: there is
//     no mutation after construction, so no coordination is needed.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/survkit/survexpr"
//
//	d1 := survexpr.NewBase(fitA) // fitA: your fitted model handle
//	d2 := survexpr.NewBase(fitB)
//	d3 := survexpr.NewBase(fitC)
//
//	// use d1 until t=10, d2 from 10 until 20, d3 after 20
//	tree, err := survexpr.Join([]survexpr.Expr{d1, d2, d3}, []float64{10, 20})
//
//	// double the hazard of the whole composite
//	tree, err = survexpr.ApplyHR(tree, 2)
//
// Evaluation of a finished tree lives in the sibling package surveval; this
// package only builds and normalizes the structure.
package survexpr
