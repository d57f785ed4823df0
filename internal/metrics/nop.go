// Package metrics provides types.MetricsCollector implementations.
package metrics

import "github.com/arloliu/parsum/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. It is the Runner default when no collector is configured.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Example:
//
//	runner, err := parsum.NewRunner(&cfg, src, summers, parsum.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RunnerMetrics implementation

// RecordInputSize discards the input size metric.
func (n *NopMetrics) RecordInputSize(_ /* size */ int) {
	// No-op
}

// RecordMismatch discards the mismatch metric.
func (n *NopMetrics) RecordMismatch(_ /* strategy */ string) {
	// No-op
}

// StrategyMetrics implementation

// RecordSummation discards the summation duration metric.
func (n *NopMetrics) RecordSummation(_ /* strategy */ string, _ /* size */ int, _ /* duration */ float64) {
	// No-op
}

// RecordPartitionCount discards the partition count metric.
func (n *NopMetrics) RecordPartitionCount(_ /* strategy */ string, _ /* count */ int) {
	// No-op
}
