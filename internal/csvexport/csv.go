// Package csvexport serializes normalized transactions into the budgeting
// and trading CSV layouts.
package csvexport

import (
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/activity-export/internal/models"
	"fjacquet/activity-export/internal/textutils"
)

// Layout is the CSV column layout of an export.
type Layout int

const (
	// LayoutBudgeting is oriented around payee, outflow and inflow.
	LayoutBudgeting Layout = iota
	// LayoutTrading is oriented around symbol, quantity and price.
	LayoutTrading
)

func (l Layout) String() string {
	if l == LayoutTrading {
		return "trading"
	}
	return "budgeting"
}

// Headers
const (
	BudgetingHeader = "Date,Payee,Memo,Outflow,Inflow"
	TradingHeader   = "Date,Action,Symbol,Description,Quantity,Price,Amount,Currency,Exchange Rate"
)

const moneyPlaces = 2

// cashSymbols are symbols the provider puts on cash movements.
var cashSymbols = map[string]bool{"": true, "CAD": true, "USD": true}

// DetectLayout picks the layout for a whole batch: trading as soon as one
// transaction carries a security symbol, a positive quantity or a Buy/Sell
// action.
func DetectLayout(transactions []models.NormalizedTransaction) Layout {
	for _, tx := range transactions {
		if isTrade(tx) {
			return LayoutTrading
		}
	}
	return LayoutBudgeting
}

func isTrade(tx models.NormalizedTransaction) bool {
	if !cashSymbols[strings.TrimSpace(tx.Symbol)] {
		return true
	}
	if tx.Quantity.Valid && tx.Quantity.Decimal.IsPositive() {
		return true
	}
	return tx.Action == models.ActionBuy || tx.Action == models.ActionSell
}

// Generate renders the batch in the layout DetectLayout selects. Rows are
// ordered by date, stable for equal dates, and joined by "\n" without a
// trailing newline.
func Generate(transactions []models.NormalizedTransaction) string {
	return GenerateLayout(transactions, DetectLayout(transactions))
}

// GenerateLayout renders the batch in the given layout.
func GenerateLayout(transactions []models.NormalizedTransaction, layout Layout) string {
	sorted := models.SortByDate(transactions)

	lines := make([]string, 0, len(sorted)+1)
	if layout == LayoutTrading {
		lines = append(lines, TradingHeader)
		for _, tx := range sorted {
			lines = append(lines, joinFields(tradingFields(tx)))
		}
	} else {
		lines = append(lines, BudgetingHeader)
		for _, tx := range sorted {
			lines = append(lines, joinFields(budgetingFields(tx)))
		}
	}
	return strings.Join(lines, "\n")
}

func budgetingFields(tx models.NormalizedTransaction) []string {
	outflow, inflow := "", ""
	if tx.Amount.IsNegative() {
		outflow = formatMoney(tx.Amount.Abs())
	} else {
		inflow = formatMoney(tx.Amount)
	}
	return []string{
		tx.DateString(),
		textutils.DerivePayee(tx.Description),
		tx.Memo(),
		outflow,
		inflow,
	}
}

func tradingFields(tx models.NormalizedTransaction) []string {
	symbol, quantity, price := tx.Symbol, "", ""
	if tx.Quantity.Valid {
		quantity = tx.Quantity.Decimal.String()
	}
	if tx.Price.Valid {
		price = tx.Price.Decimal.String()
	}
	if isCashMovement(tx.Action) {
		symbol, quantity, price = "", "", ""
	}
	return []string{
		tx.DateString(),
		tx.Action,
		symbol,
		tx.Description,
		quantity,
		price,
		formatMoney(tx.Amount),
		tx.Currency,
		"", // exchange rate
	}
}

func isCashMovement(action string) bool {
	switch action {
	case models.ActionDeposit, models.ActionWithdrawal, models.ActionTransfer:
		return true
	}
	return false
}

// formatMoney prints two decimals, rounding half away from zero.
func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(moneyPlaces)
}

func joinFields(fields []string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = Escape(f)
	}
	return strings.Join(escaped, ",")
}

// Escape quotes a field holding a comma, a double quote or a line break,
// doubling the quotes inside. Other fields are returned verbatim.
func Escape(field string) string {
	if !strings.ContainsAny(field, ",\"") && !textutils.ContainsLineBreak(field) {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
