package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewPrometheus_Defaults(t *testing.T) {
	p := NewPrometheus(nil, "")

	require.Equal(t, prometheus.DefaultRegisterer, p.reg)
	require.Equal(t, DefaultNamespace, p.namespace)
}

func TestPrometheusCollector_RegistersLazily(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheus(reg, "test")

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Empty(t, families)
}

func TestPrometheusCollector_RecordSplit(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg, "test")

	p.RecordSplit(OutcomeSuccess, 2*time.Millisecond, 2)
	p.RecordSplit(OutcomeSuccess, time.Millisecond, 1)
	p.RecordSplit(OutcomeNoCoverage, time.Millisecond, 0)

	require.InDelta(t, 2, testutil.ToFloat64(p.splitsTotal.WithLabelValues(OutcomeSuccess)), 0)
	require.InDelta(t, 1, testutil.ToFloat64(p.splitsTotal.WithLabelValues(OutcomeNoCoverage)), 0)
	require.Equal(t, 2, testutil.CollectAndCount(p.splitsTotal))
	require.Equal(t, 1, testutil.CollectAndCount(p.splitDuration))

	families, err := reg.Gather()
	require.NoError(t, err)
	counts := make(map[string]uint64)
	for _, family := range families {
		if h := family.GetMetric()[0].GetHistogram(); h != nil {
			counts[family.GetName()] = h.GetSampleCount()
		}
	}
	require.Equal(t, uint64(3), counts["test_split_duration_seconds"])
	require.Equal(t, uint64(2), counts["test_split_couriers"], "only successful splits observe the courier count")
}

func TestPrometheusCollector_RecordCatalogReload(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg, "test")

	p.RecordCatalogReload(ReloadChanged)
	p.RecordCatalogReload(ReloadUnchanged)
	p.RecordCatalogReload(ReloadUnchanged)

	require.InDelta(t, 1, testutil.ToFloat64(p.catalogReloads.WithLabelValues(ReloadChanged)), 0)
	require.InDelta(t, 2, testutil.ToFloat64(p.catalogReloads.WithLabelValues(ReloadUnchanged)), 0)
}

func TestPrometheusCollector_SharedRegistryPanicsOnDuplicate(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheus(reg, "dup").RecordCatalogReload(ReloadChanged)

	require.Panics(t, func() {
		NewPrometheus(reg, "dup").RecordCatalogReload(ReloadChanged)
	})
}
