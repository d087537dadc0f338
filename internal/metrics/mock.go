package metrics

import "sync"

var _ Metrics = (*Mock)(nil)

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu          sync.Mutex
	requests    map[string]int
	storeErrors map[string]int
	startupTime float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		requests:    make(map[string]int),
		storeErrors: make(map[string]int),
	}
}

func (m *Mock) ObserveRequest(route string, status int, duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[route]++
}

func (m *Mock) IncStoreErrors(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storeErrors[operation]++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// Requests returns the number of requests observed for route.
func (m *Mock) Requests(route string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[route]
}

// StoreErrors returns the number of store errors counted for operation.
func (m *Mock) StoreErrors(operation string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.storeErrors[operation]
}

// StartupTime returns the last value passed to SetStartupTime.
func (m *Mock) StartupTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startupTime
}
