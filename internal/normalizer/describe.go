package normalizer

import (
	"fmt"
	"strings"

	"fjacquet/activity-export/internal/models"
)

// AccountNameResolver returns the display name of an account id. The second
// value is false when the id is unknown.
type AccountNameResolver func(accountID string) (string, bool)

const (
	unknownSymbol       = "Unknown"
	unknownAccount      = "another account"
	unknownSubTypeLabel = "N/A"
)

// Describe builds the human-readable description of an activity.
func Describe(a models.RawActivity, resolve AccountNameResolver) string {
	return describe(a, ClassifyActivity(a), resolve)
}

func describe(a models.RawActivity, k Kind, resolve AccountNameResolver) string {
	switch k {
	case KindBuy:
		return describeTrade("Buy", a)
	case KindSell:
		return describeTrade("Sell", a)
	case KindDeposit:
		return describeFunding("Deposit", a)
	case KindWithdrawal:
		return describeFunding("Withdrawal", a)
	case KindCardPurchase:
		return describeCard("Credit card purchase", "", a)
	case KindCardHold:
		return describeCard("Credit card hold", " (Hold)", a)
	case KindCardRefund:
		return describeCard("Credit card refund", " (Refund)", a)
	case KindCardPayment:
		return "Credit card payment"
	case KindTransfer:
		return describeTransfer(a, resolve)
	case KindDividend:
		return "Dividend: " + symbolOrUnknown(a)
	case KindInterest:
		if a.NormalizedSubType() == SubTypeStockLending {
			return "Stock lending earnings"
		}
		return "Interest"
	case KindRefund:
		if a.NormalizedSubType() == SubTypeTransferFeeRefund {
			return "Transfer fee refund"
		}
		return "Refund"
	case KindP2P:
		return describeP2P(a)
	case KindFee:
		return "Service fee"
	case KindNonResidentTax:
		return "Non-resident tax"
	case KindTax:
		return "Tax"
	case KindFundsConversion:
		if c := strings.TrimSpace(a.Currency); c != "" {
			return fmt.Sprintf("Currency conversion (%s)", c)
		}
		return "Currency conversion"
	case KindReimbursement:
		return "Reimbursement"
	case KindPromotion:
		return "Promotional bonus"
	case KindReferral:
		return "Referral bonus"
	default:
		subType := strings.TrimSpace(a.SubType)
		if subType == "" {
			subType = unknownSubTypeLabel
		}
		return fmt.Sprintf("%s: %s", strings.TrimSpace(a.Type), subType)
	}
}

func symbolOrUnknown(a models.RawActivity) string {
	if s := strings.TrimSpace(a.Symbol); s != "" {
		return s
	}
	return unknownSymbol
}

func describeTrade(verb string, a models.RawActivity) string {
	symbol := symbolOrUnknown(a)
	if q := models.ParseQuantity(a.Quantity); q.Valid && q.Decimal.IsPositive() {
		return fmt.Sprintf("%s %s x %s", verb, q.Decimal.String(), symbol)
	}
	return fmt.Sprintf("%s %s", verb, symbol)
}

func describeFunding(direction string, a models.RawActivity) string {
	switch a.NormalizedSubType() {
	case SubTypeETransfer:
		return joinLabel(direction+": e-Transfer", firstNonEmpty(a.ETransferName, a.ETransferEmail))
	case SubTypeEFT:
		return direction + ": EFT"
	case SubTypeAFT:
		return joinLabel(direction+": AFT", a.AFTOriginatorName)
	case SubTypeBillPay:
		return joinLabel(direction+": Bill pay", a.BillPayCompanyName)
	case SubTypePaymentCard:
		return direction + ": Payment card funding"
	}
	if m := strings.TrimSpace(a.MerchantName); m != "" {
		return direction + ": " + m
	}
	return direction
}

func describeCard(label, suffix string, a models.RawActivity) string {
	merchant := strings.TrimSpace(a.MerchantName)
	if merchant == "" {
		return label
	}
	return label + ": " + merchant + suffix
}

func describeTransfer(a models.RawActivity, resolve AccountNameResolver) string {
	direction := "from"
	if a.NormalizedSubType() == SubTypeSource {
		direction = "to"
	}
	return fmt.Sprintf("Transfer %s %s", direction, opposingAccountName(a.OpposingAccountID, resolve))
}

func opposingAccountName(id string, resolve AccountNameResolver) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return unknownAccount
	}
	if resolve != nil {
		if name, ok := resolve(id); ok && strings.TrimSpace(name) != "" {
			return name
		}
	}
	return id
}

func describeP2P(a models.RawActivity) string {
	label := "P2P payment received"
	preposition := "from"
	if a.NormalizedSubType() == SubTypeSend {
		label = "P2P payment sent"
		preposition = "to"
	}
	if h := strings.TrimSpace(a.P2PHandle); h != "" {
		return fmt.Sprintf("%s %s %s", label, preposition, h)
	}
	return label
}

func joinLabel(label, detail string) string {
	detail = strings.TrimSpace(detail)
	if detail == "" {
		return label
	}
	return label + " " + detail
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
