package strategy

// Built-in strategy names as they appear in reports, metrics and configuration.
const (
	SequentialName     = "Sequential"
	ThreadsName        = "Threads"
	TasksName          = "Tasks"
	ParallelReduceName = "ParallelReduce"
)

// DefaultNames lists the built-in strategies in report order.
var DefaultNames = []string{SequentialName, ThreadsName, TasksName, ParallelReduceName}
