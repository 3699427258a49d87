package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics keeps in-process request and error counters, keyed by route,
// method and outcome. A nil receiver is a no-op so call sites never have
// to guard.
type Metrics struct {
	mu           sync.Mutex
	requestCount map[string]int64
	errorCount   map[string]int64
}

// NewMetrics initializes empty counter storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount: make(map[string]int64),
		errorCount:   make(map[string]int64),
	}
}

// RecordRequest counts a completed request by route, method and status.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := counterKey(path, method, strconv.Itoa(status))
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
}

// RecordError counts a failed request by route, method and error code.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := counterKey(path, method, code)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

func counterKey(path, method, outcome string) string {
	return path + "|" + method + "|" + outcome
}
