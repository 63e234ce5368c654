package metrics

import "time"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for tests and for the command-line tool.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements SplitMetrics.
var _ SplitMetrics = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordSplit discards the split metric.
func (n *NopMetrics) RecordSplit(_ /* outcome */ string, _ /* duration */ time.Duration, _ /* couriers */ int) {
	// No-op
}

// RecordCatalogReload discards the reload metric.
func (n *NopMetrics) RecordCatalogReload(_ /* result */ string) {
	// No-op
}
