package strategy

import "github.com/arloliu/parsum/types"

// ErrInvalidWorkers is returned by partitioned strategy constructors for a worker count <= 0.
var ErrInvalidWorkers = types.ErrInvalidWorkerCount
