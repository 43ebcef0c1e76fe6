package metrics

import (
	"sync/atomic"
	"time"
)

// Metrics holds the application counters exposed by the health endpoint.
// All counters are atomic; there is no lock on the hot path.
type Metrics struct {
	TotalRequests      int64
	SuccessfulRequests int64
	FailedRequests     int64

	SchedulesGenerated int64
	SchedulesFailed    int64
	StressEstimates    int64

	WSConnections int64
	WSMessagesOut int64

	startTime time.Time
}

var global = &Metrics{startTime: time.Now()}

// Global returns the process-wide metrics instance.
func Global() *Metrics {
	return global
}

// RecordRequest tracks one finished HTTP request.
func (m *Metrics) RecordRequest(success bool) {
	atomic.AddInt64(&m.TotalRequests, 1)
	if success {
		atomic.AddInt64(&m.SuccessfulRequests, 1)
	} else {
		atomic.AddInt64(&m.FailedRequests, 1)
	}
}

// RecordSchedule tracks one scheduling call.
func (m *Metrics) RecordSchedule(success bool) {
	if success {
		atomic.AddInt64(&m.SchedulesGenerated, 1)
	} else {
		atomic.AddInt64(&m.SchedulesFailed, 1)
	}
}

// RecordStressEstimate tracks one stress estimation call.
func (m *Metrics) RecordStressEstimate() {
	atomic.AddInt64(&m.StressEstimates, 1)
}

// WSConnected / WSDisconnected track active websocket clients.
func (m *Metrics) WSConnected()    { atomic.AddInt64(&m.WSConnections, 1) }
func (m *Metrics) WSDisconnected() { atomic.AddInt64(&m.WSConnections, -1) }

// WSMessageSent tracks one broadcast message.
func (m *Metrics) WSMessageSent() { atomic.AddInt64(&m.WSMessagesOut, 1) }

// Snapshot is the JSON shape returned by the health endpoint.
type Snapshot struct {
	UptimeSeconds      int64 `json:"uptime_seconds"`
	TotalRequests      int64 `json:"total_requests"`
	SuccessfulRequests int64 `json:"successful_requests"`
	FailedRequests     int64 `json:"failed_requests"`
	SchedulesGenerated int64 `json:"schedules_generated"`
	SchedulesFailed    int64 `json:"schedules_failed"`
	StressEstimates    int64 `json:"stress_estimates"`
	WSConnections      int64 `json:"ws_connections"`
	WSMessagesOut      int64 `json:"ws_messages_out"`
}

// GetSnapshot returns a consistent copy of the current counters.
func (m *Metrics) GetSnapshot() Snapshot {
	return Snapshot{
		UptimeSeconds:      int64(time.Since(m.startTime).Seconds()),
		TotalRequests:      atomic.LoadInt64(&m.TotalRequests),
		SuccessfulRequests: atomic.LoadInt64(&m.SuccessfulRequests),
		FailedRequests:     atomic.LoadInt64(&m.FailedRequests),
		SchedulesGenerated: atomic.LoadInt64(&m.SchedulesGenerated),
		SchedulesFailed:    atomic.LoadInt64(&m.SchedulesFailed),
		StressEstimates:    atomic.LoadInt64(&m.StressEstimates),
		WSConnections:      atomic.LoadInt64(&m.WSConnections),
		WSMessagesOut:      atomic.LoadInt64(&m.WSMessagesOut),
	}
}
