// SPDX-License-Identifier: MIT
// Package survexpr: SetCovariates — covariate binder.
//
// Contract:
//   - Merges the named assignments (one row, if any were given) with the
//     optional external row table into one row-oriented table: assignments
//     row first, external rows after, in their original order.
//   - No row deduplication, no column-schema reconciliation: a column present
//     in one source and absent in the other is NOT an error here. Binding
//     rows to a leaf that cannot consume them is caught empirically at
//     evaluation time (see surveval), not promised by this constructor.
//   - Row count after the merge must be ≥ 1.
//
// Rows and their maps are copied; the caller's maps stay independent of the
// tree, upholding the package-wide immutability contract.

package survexpr

import "fmt"

// SetCovariates conditions x on covariate rows. assignments may be nil or
// empty (contributing no row); table rows follow in their given order.
//
// Errors:
//   - ErrNilExpr — x is nil.
//   - ErrInvalidArgument — a nil or empty row in table (an all-absent row
//     carries no information and cannot bind to anything).
//   - ErrNoCovariateRows — no assignments and no table rows.
//
// Complexity: O(total cells) for the row copies.
func SetCovariates(x Expr, assignments CovariateRow, table ...CovariateRow) (Expr, error) {
	if x == nil {
		return nil, errf(methodSetCovariates, "expression", ErrNilExpr)
	}

	rows := make([]CovariateRow, 0, len(table)+1)
	if len(assignments) > 0 {
		rows = append(rows, copyRow(assignments))
	}
	for i, r := range table {
		if len(r) == 0 {
			return nil, errf(methodSetCovariates, fmt.Sprintf("table row %d is empty", i), ErrInvalidArgument)
		}
		rows = append(rows, copyRow(r))
	}
	if len(rows) == 0 {
		return nil, errf(methodSetCovariates, "no assignments and no table", ErrNoCovariateRows)
	}

	return &CovariateModel{Base: x, Covariates: rows}, nil
}

// copyRow shallow-copies one covariate row; values are shared (they are
// treated as immutable leaf data by convention).
func copyRow(r CovariateRow) CovariateRow {
	out := make(CovariateRow, len(r))
	for k, v := range r {
		out[k] = v
	}

	return out
}
