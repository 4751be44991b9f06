package contract

import "errors"

// Error kinds for the pipeline. Every failure wraps exactly one of these so the
// command layer can report which stage broke. All three are fatal for the run;
// there is nothing to retry in a single deterministic batch pass.
var (
	// ErrInput covers missing, malformed or schema-incomplete input collections.
	ErrInput = errors.New("input error")

	// ErrComputation covers out-of-range or otherwise underivable field values.
	ErrComputation = errors.New("computation error")

	// ErrOutput covers unwritable destinations and failed renders.
	ErrOutput = errors.New("output error")
)
