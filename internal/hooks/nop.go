// Package hooks provides the default no-op Runner hooks.
package hooks

import (
	"context"

	"github.com/arloliu/parsum/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks throughout the codebase.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(context.Context, types.Result) error        = (*NopHooks)(nil).OnResult
	_ func(context.Context, int, []types.Result) error = (*NopHooks)(nil).OnRoundComplete
	_ func(context.Context, error) error               = (*NopHooks)(nil).OnError
)

// NewNop creates a new no-op hooks implementation.
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnResult:        h.OnResult,
		OnRoundComplete: h.OnRoundComplete,
		OnError:         h.OnError,
	}
}

// Fill returns a copy of h with every nil callback replaced by a no-op.
//
// Parameters:
//   - h: User hooks (may be nil)
//
// Returns:
//   - types.Hooks: Hooks safe to call without nil checks
func Fill(h *types.Hooks) types.Hooks {
	out := NewNop()
	if h == nil {
		return out
	}
	if h.OnResult != nil {
		out.OnResult = h.OnResult
	}
	if h.OnRoundComplete != nil {
		out.OnRoundComplete = h.OnRoundComplete
	}
	if h.OnError != nil {
		out.OnError = h.OnError
	}

	return out
}

// OnResult is a no-op implementation.
func (h *NopHooks) OnResult(_ context.Context, _ types.Result) error {
	return nil
}

// OnRoundComplete is a no-op implementation.
func (h *NopHooks) OnRoundComplete(_ context.Context, _ int, _ []types.Result) error {
	return nil
}

// OnError is a no-op implementation.
func (h *NopHooks) OnError(_ context.Context, _ error) error {
	return nil
}
