// Package testing provides test utilities for parsum strategies.
//
// It follows Go's convention of providing testing utilities in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - NewTestLogger: Logger that writes through t.Logf
//   - Sequence, Repeat: Deterministic input fixtures
//   - RequireConformance: Runs the standard correctness checks against any Summer
//
// Example usage:
//
//	import (
//	    "testing"
//	    parsumtest "github.com/arloliu/parsum/testing"
//	)
//
//	func TestMySummer(t *testing.T) {
//	    parsumtest.RequireConformance(t, NewMySummer(4))
//	}
package testing
