// Package metrics records basket splitting and catalog reload activity.
//
// Two implementations of SplitMetrics are provided: NopMetrics discards every
// observation and PrometheusCollector exports them through a Prometheus registry.
package metrics

import "time"

// Split outcomes reported to RecordSplit.
const (
	OutcomeSuccess     = "success"
	OutcomeInvalid     = "invalid"
	OutcomeUnknownItem = "unknown_item"
	OutcomeNoCoverage  = "no_coverage"
	OutcomeError       = "error"
)

// Catalog reload results reported to RecordCatalogReload.
const (
	ReloadChanged   = "changed"
	ReloadUnchanged = "unchanged"
	ReloadFailed    = "failed"
)

// SplitMetrics receives observations from the split and reload use cases.
type SplitMetrics interface {
	// RecordSplit records one split attempt. couriers is the number of
	// deliveries in the resulting assignment and is ignored unless outcome
	// is OutcomeSuccess.
	RecordSplit(outcome string, duration time.Duration, couriers int)

	// RecordCatalogReload records one catalog reload attempt.
	RecordCatalogReload(result string)
}
