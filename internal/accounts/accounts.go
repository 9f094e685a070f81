// Package accounts answers the account questions the normalizer and the
// exporters ask: display names, credit-card accounts and statement
// options.
package accounts

import (
	"sort"
	"strings"

	"fjacquet/activity-export/internal/models"
)

// Institution holds the OFX sign-on identity written to statements.
type Institution struct {
	Org     string
	FID     string
	IntuBID string
}

// Book indexes accounts by id. The zero Book knows no accounts.
type Book struct {
	byID map[string]models.Account
}

// NewBook indexes accounts. Later duplicates of an id win.
func NewBook(accounts []models.Account) *Book {
	b := &Book{byID: make(map[string]models.Account, len(accounts))}
	for _, a := range accounts {
		id := strings.TrimSpace(a.ID)
		if id == "" {
			continue
		}
		a.ID = id
		b.byID[id] = a
	}
	return b
}

// Get returns the account with the given id.
func (b *Book) Get(id string) (models.Account, bool) {
	if b == nil {
		return models.Account{}, false
	}
	a, ok := b.byID[strings.TrimSpace(id)]
	return a, ok
}

// ResolveName returns the display name of an account. It has the shape
// of normalizer.AccountNameResolver.
func (b *Book) ResolveName(id string) (string, bool) {
	a, ok := b.Get(id)
	if !ok || strings.TrimSpace(a.Name) == "" {
		return "", false
	}
	return a.Name, true
}

// IsCreditCard reports whether id is a known credit-card account. It has
// the shape of normalizer.CreditCardDetector.
func (b *Book) IsCreditCard(id string) bool {
	a, ok := b.Get(id)
	return ok && a.IsCreditCard()
}

// ExportOptions builds the statement options of an account. Unknown
// accounts get the id alone, which the OFX builder renders as a CAD
// checking account.
func (b *Book) ExportOptions(id string, inst Institution) models.ExportOptions {
	opts := models.ExportOptions{
		AccountID: id,
		Org:       inst.Org,
		FID:       inst.FID,
		IntuBID:   inst.IntuBID,
	}
	if a, ok := b.Get(id); ok {
		opts.AccountType = a.Type
		opts.Currency = a.Currency
	}
	return opts
}

// List returns the accounts ordered by name, then id.
func (b *Book) List() []models.Account {
	if b == nil {
		return nil
	}
	list := make([]models.Account, 0, len(b.byID))
	for _, a := range b.byID {
		list = append(list, a)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
	return list
}
