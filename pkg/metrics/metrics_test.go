package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer(reg, "test")

	m.ObserveHTTP("GET", "/api/v1/courts", 200, 10*time.Millisecond)
	m.ObserveHTTP("GET", "/api/v1/courts", 200, 20*time.Millisecond)
	m.IncTransition("approve", "ok")
	m.IncTransition("approve", "invalid_state")
	m.IncPayment(true)
	m.ObserveQuery("exec", time.Millisecond, errors.New("boom"))
	m.SetPoolStats(sql.DBStats{OpenConnections: 3, InUse: 1, Idle: 2})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/v1/courts", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingTransitions.WithLabelValues("approve", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.paymentsFinalized.WithLabelValues("true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueryErrors.WithLabelValues("exec")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.dbOpenConns))
}
