package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewPromRecorder(reg)
	require.NoError(t, err)

	rec.RecordMaintenance("reconcile", 5, 1, 20*time.Millisecond)
	rec.RecordMutation("add", true)
	rec.RecordMutation("add", true)
	rec.RecordCacheLookup(false)
	rec.RecordArchived(3)

	expected := `
# HELP planning_maintenance_recurrences_total Recurrences visited by a maintenance pass
# TYPE planning_maintenance_recurrences_total counter
planning_maintenance_recurrences_total{pass="reconcile",result="failed"} 1
planning_maintenance_recurrences_total{pass="reconcile",result="ok"} 4
`
	assert.NoError(t, testutil.CollectAndCompare(rec.recurrences, strings.NewReader(expected)))
	assert.Equal(t, float64(2), testutil.ToFloat64(rec.mutations.WithLabelValues("add", "true")))
	assert.Equal(t, float64(1), testutil.ToFloat64(rec.cache.WithLabelValues("false")))
	assert.Equal(t, float64(3), testutil.ToFloat64(rec.archived))
	assert.Equal(t, 1, testutil.CollectAndCount(rec.duration))
}

func TestPromRecorderReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromRecorder(reg)
	require.NoError(t, err)
	second, err := NewPromRecorder(reg)
	require.NoError(t, err)

	first.RecordArchived(2)
	assert.Equal(t, float64(2), testutil.ToFloat64(second.archived))
}
