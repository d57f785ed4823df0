package testing

import (
	"testing"

	"github.com/arloliu/parsum/internal/logger"
	"github.com/arloliu/parsum/types"
)

// NewTestLogger creates a new logger instance that writes to the testing.T logger.
// This is useful for seeing log output during test runs.
func NewTestLogger(t testing.TB) types.Logger {
	return logger.NewTest(t)
}
