package store

import (
	"fmt"
	"os"

	"fjacquet/activity-export/internal/logging"
	"fjacquet/activity-export/internal/models"
)

// AccountStore reads the accounts file.
type AccountStore struct {
	File   string
	logger logging.Logger
}

// NewAccountStore creates an AccountStore for file.
func NewAccountStore(file string, logger logging.Logger) *AccountStore {
	return &AccountStore{File: file, logger: logging.OrDefault(logger)}
}

// LoadAccounts returns the accounts of the file. A missing file yields no
// accounts.
func (s *AccountStore) LoadAccounts() ([]models.Account, error) {
	path, err := FindConfigFile(s.File)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("Accounts file not found", logging.F(logging.FieldInputFile, s.File))
			return []models.Account{}, nil
		}
		return nil, fmt.Errorf("error resolving accounts file: %w", err)
	}

	var file models.AccountsFile
	if _, err := readYAML(path, &file); err != nil {
		return nil, err
	}

	s.logger.Debug("Loaded accounts",
		logging.F(logging.FieldInputFile, path),
		logging.F(logging.FieldCount, len(file.Accounts)))
	return file.Accounts, nil
}

// SaveAccounts writes accounts to the store file.
func (s *AccountStore) SaveAccounts(accounts []models.Account) error {
	if err := writeYAML(s.File, models.AccountsFile{Accounts: accounts}); err != nil {
		return err
	}
	s.logger.Debug("Saved accounts",
		logging.F(logging.FieldOutputFile, s.File),
		logging.F(logging.FieldCount, len(accounts)))
	return nil
}
