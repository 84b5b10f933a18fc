// SPDX-License-Identifier: MIT
// Package surveval: result kinds, functional options, covariate leaf contract.

package surveval

import "github.com/katalvlaran/survkit/survexpr"

// ResultKind selects what ComputeSurv returns for each requested time.
//
//   - Survival        — S(t): probability the event has not occurred by t.
//   - ConditionalProb — p_i = 1 − S(t_i)/S(t_{i−1}): probability of the event
//     inside (t_{i−1}, t_i] conditional on having survived to t_{i−1}; the
//     first point conditions on survival 1.
type ResultKind int

const (
	// Survival mode: return S(t) per time point (default).
	Survival ResultKind = iota

	// ConditionalProb mode: return per-interval conditional event probabilities.
	ConditionalProb
)

// String returns the canonical kind name.
func (k ResultKind) String() string {
	switch k {
	case Survival:
		return "Survival"
	case ConditionalProb:
		return "ConditionalProb"
	default:
		return "ResultKind(?)"
	}
}

// evalConfig is the resolved option state for one evaluation call.
type evalConfig struct {
	kind ResultKind
}

// Option configures a single ComputeSurv call.
type Option func(*evalConfig)

// WithKind selects the result kind; the default is Survival.
// An out-of-range kind is caught by ComputeSurv with ErrBadResultKind.
func WithKind(k ResultKind) Option {
	return func(cfg *evalConfig) { cfg.kind = k }
}

// CovariateDistribution is the optional leaf upgrade for covariate-bound
// evaluation. When a CovariateModel row reaches a Base leaf, the handle must
// implement this interface or evaluation fails with ErrCovariateMismatch.
type CovariateDistribution interface {
	survexpr.Distribution

	// SurvivalWithCovariates returns S(t) per time, conditioned on one row.
	// The implementation owns column/type checking of the row.
	SurvivalWithCovariates(row survexpr.CovariateRow, times []float64) ([]float64, error)
}

// SummaryPoint pairs a reported time with its survival value; the rendering
// unit returned by Summarize.
type SummaryPoint struct {
	Time     float64
	Survival float64
}
