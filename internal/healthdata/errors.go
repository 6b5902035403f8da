package healthdata

import "errors"

var (
	// ErrDataNotFound indicates the metrics CSV does not exist at the
	// configured path. Callers treat this as fatal at startup.
	ErrDataNotFound = errors.New("metrics data file not found")

	// ErrIdentityColumnNotFound indicates that no column in the source header
	// could be identified as the sub-county identity column.
	ErrIdentityColumnNotFound = errors.New("sub-county identity column not found")

	// ErrAmbiguousIdentityColumn indicates that more than one header column
	// matched the identity-column fallback heuristic.
	ErrAmbiguousIdentityColumn = errors.New("ambiguous sub-county identity column")

	// ErrUnknownMetric indicates a ranking request named a column that is
	// absent from the schema or is not numeric.
	ErrUnknownMetric = errors.New("unknown metric column")

	// ErrInvalidTopN indicates a ranking request with a non-positive bound.
	ErrInvalidTopN = errors.New("topN must be positive")
)
