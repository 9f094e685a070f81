// Package normalizer turns raw provider activities into canonical
// transactions: it filters out records that never reach an export, resolves
// the signed amount and derives description, category and trading action.
package normalizer

import (
	"strings"

	"fjacquet/activity-export/internal/models"
)

// Kind is the classification of an activity's (type, subType) pair. Every
// deriver switches on it, so a pair is interpreted the same way everywhere.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindBuy
	KindSell
	KindDeposit
	KindWithdrawal
	KindCardPurchase
	KindCardHold
	KindCardRefund
	KindCardPayment
	KindTransfer
	KindDividend
	KindInterest
	KindRefund
	KindP2P
	KindFee
	KindNonResidentTax
	KindTax
	KindFundsConversion
	KindReimbursement
	KindPromotion
	KindReferral

	kindCount
)

var kindNames = [kindCount]string{
	KindUnknown:         "unknown",
	KindBuy:             "buy",
	KindSell:            "sell",
	KindDeposit:         "deposit",
	KindWithdrawal:      "withdrawal",
	KindCardPurchase:    "card_purchase",
	KindCardHold:        "card_hold",
	KindCardRefund:      "card_refund",
	KindCardPayment:     "card_payment",
	KindTransfer:        "transfer",
	KindDividend:        "dividend",
	KindInterest:        "interest",
	KindRefund:          "refund",
	KindP2P:             "p2p",
	KindFee:             "fee",
	KindNonResidentTax:  "non_resident_tax",
	KindTax:             "tax",
	KindFundsConversion: "funds_conversion",
	KindReimbursement:   "reimbursement",
	KindPromotion:       "promotion",
	KindReferral:        "referral",
}

func (k Kind) String() string {
	if k >= kindCount {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// Provider activity types.
const (
	TypeDeposit           = "DEPOSIT"
	TypeWithdrawal        = "WITHDRAWAL"
	TypeCreditCard        = "CREDIT_CARD"
	TypeSpend             = "SPEND"
	TypeCreditCardPayment = "CREDIT_CARD_PAYMENT"
	TypeInternalTransfer  = "INTERNAL_TRANSFER"
	TypeAssetMovement     = "ASSET_MOVEMENT"
	TypeDividend          = "DIVIDEND"
	TypeInterest          = "INTEREST"
	TypeRefund            = "REFUND"
	TypeP2PPayment        = "P2P_PAYMENT"
	TypeFee               = "FEE"
	TypeNonResidentTax    = "NON_RESIDENT_TAX"
	TypeTax               = "TAX"
	TypeFundsConversion   = "FUNDS_CONVERSION"
	TypeReimbursement     = "REIMBURSEMENT"
	TypePromotion         = "PROMOTION"
	TypeReferral          = "REFERRAL"
	TypeLegacyTransfer    = "LEGACY_TRANSFER"
)

// Provider activity sub-types.
const (
	SubTypeETransfer         = "E_TRANSFER"
	SubTypeEFT               = "EFT"
	SubTypeAFT               = "AFT"
	SubTypeBillPay           = "BILL_PAY"
	SubTypePaymentCard       = "PAYMENT_CARD_TRANSACTION"
	SubTypePurchase          = "PURCHASE"
	SubTypeHold              = "HOLD"
	SubTypeRefund            = "REFUND"
	SubTypePayment           = "PAYMENT"
	SubTypeSource            = "SOURCE"
	SubTypeSend              = "SEND"
	SubTypeStockLending      = "FPL_INTEREST"
	SubTypeTransferFeeRefund = "TRANSFER_FEE_REFUND"
)

var exactKinds = map[string]Kind{
	TypeDeposit:           KindDeposit,
	TypeWithdrawal:        KindWithdrawal,
	TypeCreditCardPayment: KindCardPayment,
	TypeInternalTransfer:  KindTransfer,
	TypeAssetMovement:     KindTransfer,
	TypeDividend:          KindDividend,
	TypeInterest:          KindInterest,
	TypeRefund:            KindRefund,
	TypeP2PPayment:        KindP2P,
	TypeFee:               KindFee,
	TypeNonResidentTax:    KindNonResidentTax,
	TypeTax:               KindTax,
	TypeFundsConversion:   KindFundsConversion,
	TypeReimbursement:     KindReimbursement,
	TypePromotion:         KindPromotion,
	TypeReferral:          KindReferral,
}

var cardKinds = map[string]Kind{
	"":              KindCardPurchase,
	SubTypePurchase: KindCardPurchase,
	SubTypeHold:     KindCardHold,
	SubTypeRefund:   KindCardRefund,
	SubTypePayment:  KindCardPayment,
}

// Classify maps an activity type and sub-type to its Kind. Comparison is
// case-insensitive and ignores surrounding whitespace.
func Classify(activityType, subType string) Kind {
	t := strings.ToUpper(strings.TrimSpace(activityType))
	st := strings.ToUpper(strings.TrimSpace(subType))

	if k, ok := exactKinds[t]; ok {
		return k
	}
	if t == TypeCreditCard || t == TypeSpend {
		if k, ok := cardKinds[st]; ok {
			return k
		}
		return KindUnknown
	}

	switch {
	case strings.Contains(t, "BUY"):
		return KindBuy
	case strings.Contains(t, "SELL"):
		return KindSell
	default:
		return KindUnknown
	}
}

// ClassifyActivity is Classify applied to an activity's own fields.
func ClassifyActivity(a models.RawActivity) Kind {
	return Classify(a.Type, a.SubType)
}
