package models

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// NormalizedTransaction is the canonical, sign-resolved and categorized form
// of one activity. Amount is negative for outflows and positive for inflows.
type NormalizedTransaction struct {
	ID          string
	Date        time.Time // calendar date, midnight UTC
	Description string
	Amount      decimal.Decimal
	Currency    string
	Category    Category
	AccountID   string

	// Trading fields, only meaningful for investment activity.
	Symbol   string
	Action   string
	Quantity decimal.NullDecimal
	Price    decimal.NullDecimal
}

// DateString formats the calendar date as YYYY-MM-DD.
func (t NormalizedTransaction) DateString() string {
	return t.Date.Format(DateLayout)
}

// Memo is the "{category} | {accountId}" memo written by the exports.
func (t NormalizedTransaction) Memo() string {
	return t.Category.String() + " | " + t.AccountID
}

// IsOutflow returns true if money leaves the account.
func (t NormalizedTransaction) IsOutflow() bool {
	return t.Amount.IsNegative()
}

// SortByDate returns a copy of transactions ordered by ascending date.
// Transactions sharing a date keep their input order.
func SortByDate(transactions []NormalizedTransaction) []NormalizedTransaction {
	sorted := make([]NormalizedTransaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// Boundaries returns the oldest and newest transaction of a batch, the values
// incremental-export bookkeeping persists. ok is false for an empty batch.
func Boundaries(transactions []NormalizedTransaction) (oldest, newest NormalizedTransaction, ok bool) {
	if len(transactions) == 0 {
		return NormalizedTransaction{}, NormalizedTransaction{}, false
	}
	sorted := SortByDate(transactions)
	return sorted[0], sorted[len(sorted)-1], true
}
