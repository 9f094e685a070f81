package models

import (
	"strings"
	"time"
)

// Account is the metadata of one brokerage account, as kept in the
// accounts file.
type Account struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Type     string `yaml:"type"` // free text, e.g. "TFSA", "Cash", "Credit card"
	Currency string `yaml:"currency,omitempty"`
}

// IsCreditCard reports whether the account type names a credit card.
func (a Account) IsCreditCard() bool {
	return strings.Contains(strings.ToLower(a.Type), "credit")
}

// AccountsFile is the on-disk layout of the accounts file.
type AccountsFile struct {
	Accounts []Account `yaml:"accounts"`
}

// ExportState is what an incremental export remembers about an account:
// the newest transaction already exported.
type ExportState struct {
	LastTransactionID   string    `yaml:"last_transaction_id"`
	LastTransactionDate string    `yaml:"last_transaction_date"` // YYYY-MM-DD
	Format              string    `yaml:"format"`
	ExportedAt          time.Time `yaml:"exported_at"`
}

// LastDate parses LastTransactionDate. ok is false when it is unset or
// malformed.
func (s ExportState) LastDate() (time.Time, bool) {
	t, err := time.Parse(DateLayout, s.LastTransactionDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
