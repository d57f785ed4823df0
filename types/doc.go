// Package types provides core type definitions and interfaces for the parsum library.
//
// This package contains shared types that are used across multiple packages in the
// library. By keeping these types in a separate package, we avoid import cycles
// between the main parsum package and its strategy and source implementations.
//
// Key types:
//   - Partition: Contiguous half-open index range owned by one worker
//   - Summer: Summation strategy interface
//   - DataSource: Input sequence provider
//   - Result: Outcome of one timed summation
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
