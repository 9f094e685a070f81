package normalizer

import (
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/activity-export/internal/dateutils"
	"fjacquet/activity-export/internal/logging"
	"fjacquet/activity-export/internal/models"
)

// CreditCardDetector reports whether an account is a credit-card account.
type CreditCardDetector func(accountID string) bool

const pricePlaces = 6

// Normalizer converts raw activities into normalized transactions. It holds
// no mutable state and is safe for concurrent use.
type Normalizer struct {
	resolveName  AccountNameResolver
	isCreditCard CreditCardDetector
	logger       logging.Logger
}

// NewNormalizer creates a Normalizer. resolveName and isCreditCard may be
// nil: transfers then show raw account ids and no account is treated as a
// credit card.
func NewNormalizer(resolveName AccountNameResolver, isCreditCard CreditCardDetector, logger logging.Logger) *Normalizer {
	return &Normalizer{
		resolveName:  resolveName,
		isCreditCard: isCreditCard,
		logger:       logging.OrDefault(logger),
	}
}

// SetLogger replaces the logger.
func (n *Normalizer) SetLogger(logger logging.Logger) {
	if logger != nil {
		n.logger = logger
	}
}

// Normalize drops excluded activities and maps the rest 1:1 to
// transactions, preserving input order.
func (n *Normalizer) Normalize(activities []models.RawActivity) []models.NormalizedTransaction {
	transactions := make([]models.NormalizedTransaction, 0, len(activities))
	excluded := 0

	for _, a := range activities {
		if skip, reason := Excluded(a); skip {
			excluded++
			n.logger.Debug("Excluding activity",
				logging.F(logging.FieldActivityID, a.ID),
				logging.F(logging.FieldActivityType, a.Type),
				logging.F(logging.FieldReason, reason))
			continue
		}
		transactions = append(transactions, n.NormalizeActivity(a))
	}

	n.logger.Info("Normalized activities",
		logging.F(logging.FieldCount, len(transactions)),
		logging.F(logging.FieldExcluded, excluded))
	return transactions
}

// NormalizeActivity converts a single activity without applying the
// exclusion filter.
func (n *Normalizer) NormalizeActivity(a models.RawActivity) models.NormalizedTransaction {
	k := ClassifyActivity(a)

	amount, ambiguous := resolveAmount(a, k, n.creditCard(a.AccountID))
	if ambiguous {
		n.logger.Debug("Amount sign left as provided",
			logging.F(logging.FieldActivityID, a.ID),
			logging.F(logging.FieldActivityType, a.Type),
			logging.F(logging.FieldSubType, a.SubType))
	}

	category := categoryFor(k)
	quantity := models.ParseQuantity(a.Quantity)

	return models.NormalizedTransaction{
		ID:          a.ID,
		Date:        dateutils.CalendarDate(a.OccurredAt),
		Description: describe(a, k, n.resolveName),
		Amount:      amount,
		Currency:    strings.TrimSpace(a.Currency),
		Category:    category,
		AccountID:   a.AccountID,
		Symbol:      strings.TrimSpace(a.Symbol),
		Action:      actionFor(a.NormalizedType(), k, category),
		Quantity:    quantity,
		Price:       price(a.Amount, quantity),
	}
}

func (n *Normalizer) creditCard(accountID string) bool {
	return n.isCreditCard != nil && n.isCreditCard(accountID)
}

// price is |amount| / quantity, defined only for a non-zero quantity and a
// provided amount.
func price(rawAmount string, quantity decimal.NullDecimal) decimal.NullDecimal {
	if !quantity.Valid || quantity.Decimal.IsZero() || strings.TrimSpace(rawAmount) == "" {
		return decimal.NullDecimal{}
	}
	p := models.ParseAmount(rawAmount).Abs().Div(quantity.Decimal).Round(pricePlaces)
	return decimal.NewNullDecimal(p)
}
