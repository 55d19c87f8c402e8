package summary

import (
	"errors"
	"fmt"
)

var (
	// ErrSummaryUnavailable is returned whenever no summary could be produced.
	// Game state is never affected.
	ErrSummaryUnavailable = errors.New("summary unavailable")

	// ErrUnsupportedModel is returned for model keys the service does not know
	ErrUnsupportedModel = fmt.Errorf("%w: unsupported model", ErrSummaryUnavailable)

	// ErrNilConfig is returned by New when no config is given
	ErrNilConfig = errors.New("config cannot be nil")

	// ErrMissingStatistics is returned when the input carries no statistics
	ErrMissingStatistics = errors.New("statistics are required")
)
