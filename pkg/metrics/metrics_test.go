package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordUpstreamCall(t *testing.T) {
	m := NewWithRegistry("citizen-client", prometheus.NewRegistry())

	m.RecordUpstreamCall("notifications.list", "ok", 120*time.Millisecond)
	m.RecordUpstreamCall("notifications.list", "ok", 80*time.Millisecond)
	m.RecordUpstreamCall("notifications.list", "network", time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.upstreamRequestsTotal.WithLabelValues("citizen-client", "notifications.list", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamRequestsTotal.WithLabelValues("citizen-client", "notifications.list", "network")))
}

func TestSetNotifications(t *testing.T) {
	m := NewWithRegistry("citizen-client", prometheus.NewRegistry())

	m.SetNotifications(7, 2)

	assert.Equal(t, 7.0, testutil.ToFloat64(m.notificationsTotal.WithLabelValues("citizen-client")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.notificationsUnread.WithLabelValues("citizen-client")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordHTTPRequest("GET", "/api/v1/notifications", 200, time.Millisecond)
		m.RecordUpstreamCall("bookings.list", "ok", time.Millisecond)
		m.RecordDBQuery("exec", time.Millisecond)
		m.SetNotifications(1, 1)
	})
}
