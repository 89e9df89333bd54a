// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes client-side Prometheus counters for the messaging
// core. No label ever carries a user, conversation or key identifier.
//
// All methods are safe on a nil *Metrics, which records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "secure_chat"

// Decrypt results.
const (
	ResultOK     = "ok"
	ResultBroken = "broken"
	ResultLocked = "locked"
)

// Unlock results.
const (
	UnlockSuccess   = "success"
	UnlockWrongPIN  = "wrong_pin"
	UnlockThrottled = "throttled"
)

// Metrics groups every collector of the client.
type Metrics struct {
	decrypts        *prometheus.CounterVec
	realtimeEvents  *prometheus.CounterVec
	duplicates      prometheus.Counter
	reconnects      prometheus.Counter
	connectionState prometheus.Gauge
	liveMediaObjs   prometheus.Gauge
	unlockAttempts  *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		decrypts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_decrypted_total",
			Help:      "Message decrypt attempts by result.",
		}, []string{"result"}),
		realtimeEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "realtime_events_total",
			Help:      "Duplex channel events received by name.",
		}, []string{"event"}),
		duplicates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "realtime_duplicate_messages_total",
			Help:      "new_message events dropped because the message was already cached.",
		}),
		reconnects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "realtime_reconnect_attempts_total",
			Help:      "Duplex channel reconnect attempts.",
		}),
		connectionState: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "realtime_connection_state",
			Help:      "Current duplex channel state (0 offline, 1 connecting, 2 online).",
		}),
		liveMediaObjs: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "media_live_objects",
			Help:      "Decrypted media objects not yet released.",
		}),
		unlockAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unlock_attempts_total",
			Help:      "PIN unlock attempts by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.decrypts,
		m.realtimeEvents,
		m.duplicates,
		m.reconnects,
		m.connectionState,
		m.liveMediaObjs,
		m.unlockAttempts,
	)

	return m
}

func (m *Metrics) Decrypted(result string) {
	if m == nil {
		return
	}
	m.decrypts.WithLabelValues(result).Inc()
}

func (m *Metrics) RealtimeEvent(event string) {
	if m == nil {
		return
	}
	m.realtimeEvents.WithLabelValues(event).Inc()
}

func (m *Metrics) DuplicateMessage() {
	if m == nil {
		return
	}
	m.duplicates.Inc()
}

func (m *Metrics) ReconnectAttempt() {
	if m == nil {
		return
	}
	m.reconnects.Inc()
}

func (m *Metrics) ConnectionState(state float64) {
	if m == nil {
		return
	}
	m.connectionState.Set(state)
}

func (m *Metrics) LiveMediaObjects(n int) {
	if m == nil {
		return
	}
	m.liveMediaObjs.Set(float64(n))
}

func (m *Metrics) UnlockAttempt(result string) {
	if m == nil {
		return
	}
	m.unlockAttempts.WithLabelValues(result).Inc()
}
