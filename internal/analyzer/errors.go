package analyzer

import "errors"

// ErrEmptyTable indicates a table with zero rows or zero columns. Missing
// percentages and window means are undefined on such input, so analysis
// fails fast instead of propagating NaN.
var ErrEmptyTable = errors.New("empty table: analysis requires at least one row and one column")
