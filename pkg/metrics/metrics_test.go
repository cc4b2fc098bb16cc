package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer("agenda-test", prometheus.NewRegistry())

	m.ObserveHTTP(http.MethodGet, "/slots", http.StatusOK, 15*time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "/slots", http.StatusOK, 5*time.Millisecond)
	m.IncSlotQuery(OutcomeFullyBooked)
	m.IncCacheLookup("hit")
	m.IncCacheLookup("hit")
	m.IncCacheLookup("miss")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/slots", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.slotQueries.WithLabelValues(OutcomeFullyBooked)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("miss")))
}

func TestMetrics_DB(t *testing.T) {
	m := NewWithRegisterer("agenda-test", prometheus.NewRegistry())

	m.ObserveDBQuery("query", false, 3*time.Millisecond)
	m.ObserveDBQuery("exec", true, time.Millisecond)
	m.SetDBPool(10, 3, 7)

	assert.Equal(t, 2, testutil.CollectAndCount(m.dbQueries))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.dbPool.WithLabelValues("in_use")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.dbPool.WithLabelValues("idle")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTP(http.MethodGet, "/", http.StatusOK, time.Millisecond)
		m.IncSlotQuery(OutcomeClosed)
		m.IncCacheLookup("miss")
		m.ObserveDBQuery("exec", false, time.Millisecond)
		m.SetDBPool(1, 0, 1)
	})
}
