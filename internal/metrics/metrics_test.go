package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Decrypted(ResultOK)
	m.Decrypted(ResultOK)
	m.Decrypted(ResultBroken)
	m.RealtimeEvent("new_message")
	m.DuplicateMessage()
	m.ReconnectAttempt()
	m.ConnectionState(2)
	m.LiveMediaObjects(3)
	m.UnlockAttempt(UnlockWrongPIN)

	assert.InDelta(t, 2, testutil.ToFloat64(m.decrypts.WithLabelValues(ResultOK)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.decrypts.WithLabelValues(ResultBroken)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.realtimeEvents.WithLabelValues("new_message")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.duplicates), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.reconnects), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.connectionState), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.liveMediaObjs), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.unlockAttempts.WithLabelValues(UnlockWrongPIN)), 0)

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Positive(t, count)
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.Decrypted(ResultOK)
		m.RealtimeEvent("x")
		m.DuplicateMessage()
		m.ReconnectAttempt()
		m.ConnectionState(1)
		m.LiveMediaObjects(1)
		m.UnlockAttempt(UnlockSuccess)
	})
}

func TestNew_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
