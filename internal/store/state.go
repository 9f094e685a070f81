package store

import (
	"fmt"
	"sync"

	"fjacquet/activity-export/internal/logging"
	"fjacquet/activity-export/internal/models"
)

// StateRepository remembers the newest exported transaction per account.
type StateRepository interface {
	Last(accountID string) (models.ExportState, bool, error)
	Record(accountID string, state models.ExportState) error
}

// StateStore is the YAML-file StateRepository. The file maps account ids
// to their export state.
type StateStore struct {
	File   string
	logger logging.Logger
	mu     sync.Mutex
}

// NewStateStore creates a StateStore for file.
func NewStateStore(file string, logger logging.Logger) *StateStore {
	return &StateStore{File: file, logger: logging.OrDefault(logger)}
}

// Last returns the stored state of an account.
func (s *StateStore) Last(accountID string) (models.ExportState, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	states, err := s.load()
	if err != nil {
		return models.ExportState{}, false, err
	}
	state, ok := states[accountID]
	return state, ok, nil
}

// Record replaces the stored state of an account.
func (s *StateStore) Record(accountID string, state models.ExportState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	states, err := s.load()
	if err != nil {
		return err
	}
	states[accountID] = state

	if err := writeYAML(s.File, states); err != nil {
		return fmt.Errorf("error saving export state: %w", err)
	}
	s.logger.Debug("Recorded export state",
		logging.F(logging.FieldAccountID, accountID),
		logging.F(logging.FieldTransactionID, state.LastTransactionID))
	return nil
}

func (s *StateStore) load() (map[string]models.ExportState, error) {
	states := map[string]models.ExportState{}
	if _, err := readYAML(s.File, &states); err != nil {
		return nil, err
	}
	if states == nil {
		states = map[string]models.ExportState{}
	}
	return states, nil
}

var _ StateRepository = (*StateStore)(nil)
