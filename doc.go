// Package parsum benchmarks strategies for summing a large sequence of
// 32-bit integers into a 64-bit total.
//
// Four strategies are timed against the same generated input:
//
//   - Sequential: a single pass with one accumulator, the reference result
//   - Threads: W partitions, each summed on a goroutine pinned to its own OS thread
//   - Tasks: W partitions submitted to a bounded task pool
//   - ParallelReduce: a declarative parallel range reduction
//
// The partitioned strategies split [0, N) into W contiguous half-open ranges;
// the last range absorbs the remainder so no element is ever dropped. Every
// worker writes one partial slot and the partials are combined in index
// order after all workers finished.
//
// # Quick Start
//
//	cfg := parsum.DefaultConfig()
//	runner, err := parsum.NewDefaultRunner(&cfg, parsum.WithOutput(os.Stdout))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	reports, err := runner.Run(ctx)
//
// For every input size the runner prints a block like:
//
//	Calculating the sum for 100000 elements:
//
//	Sequential =	107374182400 in 0 ms
//	Threads =	107374182400 in 0 ms
//	Tasks =	107374182400 in 0 ms
//	ParallelReduce =	107374182400 in 1 ms
//	__________________________________________________
//
// # Verification
//
// Unless Config.SkipVerify is set, each total is compared with a sequential
// accumulation of the same input (ErrSumMismatch) and the input fingerprint
// is re-checked after every strategy (ErrInputMutated).
//
// # Custom Strategies
//
// Any type implementing Summer can be timed:
//
//	summers, _ := strategy.Defaults(cfg.Workers)
//	summers = append(summers, mySummer)
//	runner, err := parsum.NewRunner(&cfg, source.NewRandom(source.WithSeed(42)), summers)
//
// Strategies can also be registered by name in a strategy.Registry and
// selected through Config.Strategies.
package parsum
