package types

import "context"

// Hooks defines callbacks for Runner events.
//
// All hooks are optional. They are called synchronously from the Runner
// goroutine after the corresponding step completed, so timings reported to
// OnResult never include hook execution time.
//
// Hook execution behavior:
//   - Hook errors are logged but don't fail the run
//   - The context passed to hooks is the Run context
//
// Example:
//
//	hooks := &parsum.Hooks{
//	    OnResult: func(ctx context.Context, r parsum.Result) error {
//	        fmt.Printf("%s took %v\n", r.Strategy, r.Elapsed)
//	        return nil
//	    },
//	}
type Hooks struct {
	// OnResult is called after each strategy finished summing one input.
	OnResult func(ctx context.Context, result Result) error

	// OnRoundComplete is called after every strategy ran for one input size.
	OnRoundComplete func(ctx context.Context, size int, results []Result) error

	// OnError is called when a round fails.
	OnError func(ctx context.Context, err error) error
}
