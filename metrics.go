package qsim

import (
	"sync"
)

// Metrics counts the operations applied to a single QuantumState. Each
// state owns its own Metrics; there is no shared collector.
type Metrics struct {
	mu           sync.RWMutex
	GateCount    int64
	MeasureCount int64
	PeakQubits   int
}

func newMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) recordGate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.GateCount++
}

func (m *Metrics) recordMeasurement() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.MeasureCount++
}

func (m *Metrics) recordQubits(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if n > m.PeakQubits {
		m.PeakQubits = n
	}
}

// ExportMetrics returns a snapshot suitable for logging or display.
func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"gate_count":    m.GateCount,
		"measure_count": m.MeasureCount,
		"peak_qubits":   m.PeakQubits,
	}
}
