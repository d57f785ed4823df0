package types

import "errors"

// Sentinel errors for the parsum library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap them with context using fmt.Errorf("%s: %w", msg, err).
//
// Error Naming Convention:
//   - Use descriptive names with Err prefix
//   - Group by component (Runner, Planner, Strategy, Source)
//   - Use consistent messages across similar error types

// Runner errors - Public API errors returned by the Runner.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDataSourceRequired is returned when the data source is nil.
	ErrDataSourceRequired = errors.New("data source is required")

	// ErrNoStrategies is returned when no summation strategy is configured.
	ErrNoStrategies = errors.New("at least one summation strategy is required")

	// ErrSumMismatch is returned when a strategy disagrees with the sequential total.
	ErrSumMismatch = errors.New("sum does not match sequential total")

	// ErrInputMutated is returned when a strategy modified its input sequence.
	ErrInputMutated = errors.New("input sequence was modified during summation")
)

// Planner and strategy errors.
var (
	// ErrInvalidWorkerCount is returned when the worker count is zero or negative.
	ErrInvalidWorkerCount = errors.New("worker count must be positive")

	// ErrInvalidLength is returned for a negative sequence length.
	ErrInvalidLength = errors.New("sequence length must not be negative")

	// ErrUnknownStrategy is returned when a strategy name is not registered.
	ErrUnknownStrategy = errors.New("unknown summation strategy")
)
