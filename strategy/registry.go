package strategy

import (
	"fmt"
	"slices"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/arloliu/parsum/types"
)

// Factory builds a Summer for the given worker count.
//
// Strategies that do not partition manually ignore workers.
type Factory func(workers int) (types.Summer, error)

// Registry maps strategy names to factories.
//
// A Registry is safe for concurrent use, so custom strategies may be
// registered while other goroutines resolve names.
type Registry struct {
	factories *xsync.Map[string, Factory]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: xsync.NewMap[string, Factory]()}
}

// NewDefaultRegistry creates a registry holding the four built-in strategies.
//
// Returns:
//   - *Registry: Registry with Sequential, Threads, Tasks and ParallelReduce
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(SequentialName, func(int) (types.Summer, error) {
		return NewSequential(), nil
	})
	r.Register(ThreadsName, func(workers int) (types.Summer, error) {
		return NewThreads(workers)
	})
	r.Register(TasksName, func(workers int) (types.Summer, error) {
		return NewTasks(workers)
	})
	r.Register(ParallelReduceName, func(int) (types.Summer, error) {
		return NewParallelReduce(), nil
	})

	return r
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, factory Factory) {
	r.factories.Store(name, factory)
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.factories.Load(name)
	return ok
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.factories.Size())
	r.factories.Range(func(name string, _ Factory) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)

	return names
}

// Build resolves names to Summers, preserving the order of names.
//
// Parameters:
//   - names: Strategy names to build
//   - workers: Worker count passed to every factory
//
// Returns:
//   - []types.Summer: Built strategies in the order of names
//   - error: ErrUnknownStrategy for an unregistered name, or a factory error
//
// Example:
//
//	summers, err := strategy.NewDefaultRegistry().Build([]string{"Sequential", "Threads"}, 4)
func (r *Registry) Build(names []string, workers int) ([]types.Summer, error) {
	summers := make([]types.Summer, 0, len(names))
	for _, name := range names {
		factory, ok := r.factories.Load(name)
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, types.ErrUnknownStrategy)
		}

		s, err := factory(workers)
		if err != nil {
			return nil, fmt.Errorf("build %s: %w", name, err)
		}
		summers = append(summers, s)
	}

	return summers, nil
}

// Defaults builds the four built-in strategies in report order.
//
// Parameters:
//   - workers: Worker count for the partitioned strategies (must be > 0)
//
// Returns:
//   - []types.Summer: Sequential, Threads, Tasks, ParallelReduce
//   - error: ErrInvalidWorkerCount if workers <= 0
func Defaults(workers int) ([]types.Summer, error) {
	return NewDefaultRegistry().Build(DefaultNames, workers)
}
