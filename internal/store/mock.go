package store

import (
	"sync"

	"fjacquet/activity-export/internal/models"
)

// MockStateStore is an in-memory StateRepository for tests.
type MockStateStore struct {
	mu     sync.Mutex
	States map[string]models.ExportState

	// Error flags for testing error conditions
	LastError   error
	RecordError error
}

// Last returns the in-memory state.
func (m *MockStateStore) Last(accountID string) (models.ExportState, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LastError != nil {
		return models.ExportState{}, false, m.LastError
	}
	state, ok := m.States[accountID]
	return state, ok, nil
}

// Record stores the state in memory.
func (m *MockStateStore) Record(accountID string, state models.ExportState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RecordError != nil {
		return m.RecordError
	}
	if m.States == nil {
		m.States = map[string]models.ExportState{}
	}
	m.States[accountID] = state
	return nil
}

var _ StateRepository = (*MockStateStore)(nil)
