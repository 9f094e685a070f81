package normalizer

import (
	"strings"

	"fjacquet/activity-export/internal/models"
)

// CategoryOf returns the category label of an activity.
func CategoryOf(a models.RawActivity) models.Category {
	return categoryFor(ClassifyActivity(a))
}

func categoryFor(k Kind) models.Category {
	switch k {
	case KindBuy:
		return models.CategoryInvestmentBuy
	case KindSell:
		return models.CategoryInvestmentSell
	case KindDeposit:
		return models.CategoryDeposit
	case KindWithdrawal:
		return models.CategoryWithdrawal
	case KindDividend:
		return models.CategoryDividend
	case KindInterest:
		return models.CategoryInterest
	case KindTransfer:
		return models.CategoryTransfer
	case KindCardPurchase, KindCardHold:
		return models.CategoryPurchase
	case KindCardPayment:
		return models.CategoryCreditCardPayment
	case KindCardRefund, KindRefund:
		return models.CategoryRefund
	case KindFee:
		return models.CategoryFee
	case KindNonResidentTax, KindTax:
		return models.CategoryTax
	case KindFundsConversion:
		return models.CategoryCurrencyConversion
	case KindP2P:
		return models.CategoryP2PPayment
	case KindReimbursement:
		return models.CategoryReimbursement
	case KindPromotion, KindReferral:
		return models.CategoryBonus
	default:
		return models.CategoryOther
	}
}

// ActionOf returns the trading action label of an activity.
func ActionOf(a models.RawActivity) string {
	k := ClassifyActivity(a)
	return actionFor(a.NormalizedType(), k, categoryFor(k))
}

// actionFor checks the raw type for Buy/Sell first so that any trade-like
// type carries a trading action, then falls back per kind and finally to
// the category label.
func actionFor(activityType string, k Kind, category models.Category) string {
	t := strings.ToUpper(activityType)
	switch {
	case strings.Contains(t, "BUY"):
		return models.ActionBuy
	case strings.Contains(t, "SELL"):
		return models.ActionSell
	}

	switch k {
	case KindDividend:
		return models.ActionDividend
	case KindDeposit:
		return models.ActionDeposit
	case KindWithdrawal:
		return models.ActionWithdrawal
	case KindFee:
		return models.ActionFee
	case KindInterest:
		return models.ActionInterest
	case KindTransfer:
		return models.ActionTransfer
	case KindFundsConversion:
		return models.ActionConversion
	default:
		return category.String()
	}
}
