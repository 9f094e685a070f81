package normalizer

import (
	"github.com/shopspring/decimal"

	"fjacquet/activity-export/internal/models"
)

// signRule says how the sign of an amount is inferred when the provider did
// not send an amountSign.
type signRule uint8

const (
	signKeep signRule = iota // ambiguous: leave the parsed value untouched
	signOutflow
	signInflow
	signCreditCardContext // inflow on a credit-card account, outflow elsewhere
	signSourceOutflow     // outflow for the SOURCE leg, inflow otherwise
	signSendOutflow       // outflow when sending, inflow otherwise
)

func inferredSign(k Kind) signRule {
	switch k {
	case KindBuy, KindWithdrawal, KindFee, KindNonResidentTax, KindTax,
		KindCardPurchase, KindCardHold:
		return signOutflow
	case KindSell, KindDeposit, KindDividend, KindInterest, KindReimbursement,
		KindRefund, KindPromotion, KindReferral:
		return signInflow
	case KindCardPayment, KindCardRefund:
		return signCreditCardContext
	case KindTransfer:
		return signSourceOutflow
	case KindP2P:
		return signSendOutflow
	default:
		return signKeep
	}
}

// ResolveAmount returns the signed value of an activity: negative for money
// leaving the account, positive for money arriving. isCreditCard tells
// whether the owning account is a credit-card account, which flips the sign
// of card payments and refunds. An absent or malformed amount resolves to 0.
// When neither amountSign nor the activity kind settles the sign, the parsed
// value is returned unchanged.
func ResolveAmount(a models.RawActivity, isCreditCard bool) decimal.Decimal {
	amount, _ := resolveAmount(a, ClassifyActivity(a), isCreditCard)
	return amount
}

// resolveAmount also reports whether the sign was left ambiguous.
func resolveAmount(a models.RawActivity, k Kind, isCreditCard bool) (decimal.Decimal, bool) {
	value := models.ParseAmount(a.Amount)

	switch a.AmountSign.Normalize() {
	case models.AmountSignDebit:
		return outflow(value), false
	case models.AmountSignCredit:
		return inflow(value), false
	}

	switch inferredSign(k) {
	case signOutflow:
		return outflow(value), false
	case signInflow:
		return inflow(value), false
	case signCreditCardContext:
		if isCreditCard {
			return inflow(value), false
		}
		return outflow(value), false
	case signSourceOutflow:
		if a.NormalizedSubType() == SubTypeSource {
			return outflow(value), false
		}
		return inflow(value), false
	case signSendOutflow:
		if a.NormalizedSubType() == SubTypeSend {
			return outflow(value), false
		}
		return inflow(value), false
	default:
		return value, true
	}
}

// outflow returns -|v|, with zero kept unsigned.
func outflow(v decimal.Decimal) decimal.Decimal {
	if v.IsZero() {
		return decimal.Zero
	}
	return v.Abs().Neg()
}

func inflow(v decimal.Decimal) decimal.Decimal {
	if v.IsZero() {
		return decimal.Zero
	}
	return v.Abs()
}
