package parsum

import "github.com/arloliu/parsum/types"

// Sentinel errors returned by the Runner and strategies.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrDataSourceRequired is returned when the data source is nil.
	ErrDataSourceRequired = types.ErrDataSourceRequired

	// ErrNoStrategies is returned when no summation strategy is configured.
	ErrNoStrategies = types.ErrNoStrategies

	// ErrSumMismatch is returned when a strategy disagrees with the sequential total.
	ErrSumMismatch = types.ErrSumMismatch

	// ErrInputMutated is returned when a strategy modified its input sequence.
	ErrInputMutated = types.ErrInputMutated

	// ErrInvalidWorkerCount is returned for a worker count <= 0.
	ErrInvalidWorkerCount = types.ErrInvalidWorkerCount

	// ErrInvalidLength is returned for a negative sequence length.
	ErrInvalidLength = types.ErrInvalidLength

	// ErrUnknownStrategy is returned when a strategy name is not registered.
	ErrUnknownStrategy = types.ErrUnknownStrategy
)
