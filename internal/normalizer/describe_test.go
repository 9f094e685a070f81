package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fjacquet/activity-export/internal/models"
)

func TestDescribe(t *testing.T) {
	resolve := func(id string) (string, bool) {
		if id == "tfsa-1" {
			return "TFSA", true
		}
		return "", false
	}

	tests := []struct {
		name     string
		activity models.RawActivity
		expected string
	}{
		{name: "buy with quantity", activity: models.RawActivity{Type: "DIY_BUY", Symbol: "AAPL", Quantity: "10"}, expected: "Buy 10 x AAPL"},
		{name: "buy fractional", activity: models.RawActivity{Type: "DIY_BUY", Symbol: "VFV", Quantity: "0.5000"}, expected: "Buy 0.5 x VFV"},
		{name: "buy without quantity", activity: models.RawActivity{Type: "MANAGED_BUY", Symbol: "XEQT"}, expected: "Buy XEQT"},
		{name: "sell without symbol", activity: models.RawActivity{Type: "DIY_SELL", Quantity: "3"}, expected: "Sell 3 x Unknown"},
		{name: "sell zero quantity", activity: models.RawActivity{Type: "DIY_SELL", Symbol: "SHOP", Quantity: "0"}, expected: "Sell SHOP"},
		{name: "deposit e-transfer name", activity: models.RawActivity{Type: "DEPOSIT", SubType: "E_TRANSFER", ETransferName: "John Doe", ETransferEmail: "john@example.com"}, expected: "Deposit: e-Transfer John Doe"},
		{name: "deposit e-transfer email", activity: models.RawActivity{Type: "DEPOSIT", SubType: "E_TRANSFER", ETransferEmail: "john@example.com"}, expected: "Deposit: e-Transfer john@example.com"},
		{name: "deposit e-transfer anonymous", activity: models.RawActivity{Type: "DEPOSIT", SubType: "E_TRANSFER"}, expected: "Deposit: e-Transfer"},
		{name: "withdrawal eft", activity: models.RawActivity{Type: "WITHDRAWAL", SubType: "EFT"}, expected: "Withdrawal: EFT"},
		{name: "deposit aft", activity: models.RawActivity{Type: "DEPOSIT", SubType: "AFT", AFTOriginatorName: "ACME PAYROLL"}, expected: "Deposit: AFT ACME PAYROLL"},
		{name: "withdrawal bill pay", activity: models.RawActivity{Type: "WITHDRAWAL", SubType: "BILL_PAY", BillPayCompanyName: "Hydro"}, expected: "Withdrawal: Bill pay Hydro"},
		{name: "deposit payment card", activity: models.RawActivity{Type: "DEPOSIT", SubType: "PAYMENT_CARD_TRANSACTION"}, expected: "Deposit: Payment card funding"},
		{name: "withdrawal merchant fallback", activity: models.RawActivity{Type: "WITHDRAWAL", MerchantName: "ATM"}, expected: "Withdrawal: ATM"},
		{name: "bare deposit", activity: models.RawActivity{Type: "DEPOSIT"}, expected: "Deposit"},
		{name: "card purchase", activity: models.RawActivity{Type: "CREDIT_CARD", SubType: "PURCHASE", MerchantName: "Coffee Shop"}, expected: "Credit card purchase: Coffee Shop"},
		{name: "card purchase no merchant", activity: models.RawActivity{Type: "CREDIT_CARD"}, expected: "Credit card purchase"},
		{name: "card hold", activity: models.RawActivity{Type: "CREDIT_CARD", SubType: "HOLD", MerchantName: "Hotel"}, expected: "Credit card hold: Hotel (Hold)"},
		{name: "card refund", activity: models.RawActivity{Type: "SPEND", SubType: "REFUND", MerchantName: "Store"}, expected: "Credit card refund: Store (Refund)"},
		{name: "card payment", activity: models.RawActivity{Type: "CREDIT_CARD_PAYMENT"}, expected: "Credit card payment"},
		{name: "transfer out resolved", activity: models.RawActivity{Type: "INTERNAL_TRANSFER", SubType: "SOURCE", OpposingAccountID: "tfsa-1"}, expected: "Transfer to TFSA"},
		{name: "transfer in unresolved", activity: models.RawActivity{Type: "INTERNAL_TRANSFER", SubType: "DESTINATION", OpposingAccountID: "rrsp-9"}, expected: "Transfer from rrsp-9"},
		{name: "transfer without counterparty", activity: models.RawActivity{Type: "ASSET_MOVEMENT"}, expected: "Transfer from another account"},
		{name: "dividend", activity: models.RawActivity{Type: "DIVIDEND", Symbol: "TD"}, expected: "Dividend: TD"},
		{name: "dividend without symbol", activity: models.RawActivity{Type: "DIVIDEND"}, expected: "Dividend: Unknown"},
		{name: "interest", activity: models.RawActivity{Type: "INTEREST"}, expected: "Interest"},
		{name: "stock lending", activity: models.RawActivity{Type: "INTEREST", SubType: "FPL_INTEREST"}, expected: "Stock lending earnings"},
		{name: "refund", activity: models.RawActivity{Type: "REFUND"}, expected: "Refund"},
		{name: "transfer fee refund", activity: models.RawActivity{Type: "REFUND", SubType: "TRANSFER_FEE_REFUND"}, expected: "Transfer fee refund"},
		{name: "p2p sent", activity: models.RawActivity{Type: "P2P_PAYMENT", SubType: "SEND", P2PHandle: "$jane"}, expected: "P2P payment sent to $jane"},
		{name: "p2p received", activity: models.RawActivity{Type: "P2P_PAYMENT", SubType: "RECEIVE", P2PHandle: "$bob"}, expected: "P2P payment received from $bob"},
		{name: "p2p no handle", activity: models.RawActivity{Type: "P2P_PAYMENT", SubType: "SEND"}, expected: "P2P payment sent"},
		{name: "fee", activity: models.RawActivity{Type: "FEE"}, expected: "Service fee"},
		{name: "non-resident tax", activity: models.RawActivity{Type: "NON_RESIDENT_TAX"}, expected: "Non-resident tax"},
		{name: "tax", activity: models.RawActivity{Type: "TAX"}, expected: "Tax"},
		{name: "conversion", activity: models.RawActivity{Type: "FUNDS_CONVERSION", Currency: "USD"}, expected: "Currency conversion (USD)"},
		{name: "reimbursement", activity: models.RawActivity{Type: "REIMBURSEMENT"}, expected: "Reimbursement"},
		{name: "promotion", activity: models.RawActivity{Type: "PROMOTION"}, expected: "Promotional bonus"},
		{name: "referral", activity: models.RawActivity{Type: "REFERRAL"}, expected: "Referral bonus"},
		{name: "unknown with subtype", activity: models.RawActivity{Type: "WRITE_OFF", SubType: "LOSS"}, expected: "WRITE_OFF: LOSS"},
		{name: "unknown without subtype", activity: models.RawActivity{Type: "WRITE_OFF"}, expected: "WRITE_OFF: N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Describe(tt.activity, resolve))
		})
	}
}

func TestDescribe_NilResolver(t *testing.T) {
	a := models.RawActivity{Type: "INTERNAL_TRANSFER", SubType: "SOURCE", OpposingAccountID: "abc"}
	assert.Equal(t, "Transfer to abc", Describe(a, nil))
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		activity models.RawActivity
		expected models.Category
	}{
		{models.RawActivity{Type: "DIY_BUY"}, models.CategoryInvestmentBuy},
		{models.RawActivity{Type: "CRYPTO_SELL"}, models.CategoryInvestmentSell},
		{models.RawActivity{Type: "DEPOSIT"}, models.CategoryDeposit},
		{models.RawActivity{Type: "WITHDRAWAL"}, models.CategoryWithdrawal},
		{models.RawActivity{Type: "CREDIT_CARD", SubType: "HOLD"}, models.CategoryPurchase},
		{models.RawActivity{Type: "CREDIT_CARD", SubType: "REFUND"}, models.CategoryRefund},
		{models.RawActivity{Type: "CREDIT_CARD", SubType: "PAYMENT"}, models.CategoryCreditCardPayment},
		{models.RawActivity{Type: "INTERNAL_TRANSFER"}, models.CategoryTransfer},
		{models.RawActivity{Type: "NON_RESIDENT_TAX"}, models.CategoryTax},
		{models.RawActivity{Type: "FUNDS_CONVERSION"}, models.CategoryCurrencyConversion},
		{models.RawActivity{Type: "P2P_PAYMENT"}, models.CategoryP2PPayment},
		{models.RawActivity{Type: "REFERRAL"}, models.CategoryBonus},
		{models.RawActivity{Type: "WRITE_OFF"}, models.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.activity.Type+"/"+tt.activity.SubType, func(t *testing.T) {
			assert.Equal(t, tt.expected, CategoryOf(tt.activity))
		})
	}
}

func TestCategoryFor_EveryKnownKindIsCategorized(t *testing.T) {
	for k := Kind(0); k < kindCount; k++ {
		if k == KindUnknown {
			assert.Equal(t, models.CategoryOther, categoryFor(k))
			continue
		}
		assert.NotEqual(t, models.CategoryOther, categoryFor(k), "kind %s falls through to Other", k)
	}
}

func TestActionOf(t *testing.T) {
	tests := []struct {
		activity models.RawActivity
		expected string
	}{
		{models.RawActivity{Type: "DIY_BUY"}, models.ActionBuy},
		{models.RawActivity{Type: "OPTIONS_SELL"}, models.ActionSell},
		{models.RawActivity{Type: "DIVIDEND"}, models.ActionDividend},
		{models.RawActivity{Type: "DEPOSIT"}, models.ActionDeposit},
		{models.RawActivity{Type: "WITHDRAWAL"}, models.ActionWithdrawal},
		{models.RawActivity{Type: "FEE"}, models.ActionFee},
		{models.RawActivity{Type: "INTEREST"}, models.ActionInterest},
		{models.RawActivity{Type: "ASSET_MOVEMENT"}, models.ActionTransfer},
		{models.RawActivity{Type: "FUNDS_CONVERSION"}, models.ActionConversion},
		{models.RawActivity{Type: "CREDIT_CARD", SubType: "PURCHASE"}, "Purchase"},
		{models.RawActivity{Type: "REFERRAL"}, "Bonus"},
		{models.RawActivity{Type: "WRITE_OFF"}, "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.activity.Type, func(t *testing.T) {
			assert.Equal(t, tt.expected, ActionOf(tt.activity))
		})
	}
}
