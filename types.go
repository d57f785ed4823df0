package parsum

import "github.com/arloliu/parsum/types"

// Re-export types from the types package.
//
// Internal packages depend on types rather than on the root package, which
// avoids import cycles while users still write parsum.Partition,
// parsum.Logger and so on.
type (
	Partition = types.Partition
	Result    = types.Result
)

// Re-export interfaces from the types package for convenience.
type (
	Summer           = types.Summer
	PartialSummer    = types.PartialSummer
	DataSource       = types.DataSource
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
	Hooks            = types.Hooks
)
