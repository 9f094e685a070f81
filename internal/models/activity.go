// Package models provides the data structures used throughout the application.
package models

import (
	"strings"
)

// AmountSign is the provider's debit/credit hint. The empty value means the
// provider did not send one.
type AmountSign string

const (
	AmountSignDebit  AmountSign = "DEBIT"
	AmountSignCredit AmountSign = "CREDIT"
	AmountSignNone   AmountSign = ""
)

// Normalize upper-cases the sign and maps anything unrecognised to AmountSignNone.
func (s AmountSign) Normalize() AmountSign {
	switch AmountSign(strings.ToUpper(strings.TrimSpace(string(s)))) {
	case AmountSignDebit:
		return AmountSignDebit
	case AmountSignCredit:
		return AmountSignCredit
	default:
		return AmountSignNone
	}
}

// RawActivity is one provider activity record as fetched from the brokerage.
// Optional text fields are empty when the provider omitted them.
type RawActivity struct {
	ID                string     `json:"id" csv:"id"`
	Type              string     `json:"type" csv:"type"`
	SubType           string     `json:"subType" csv:"subType"`
	Status            string     `json:"status" csv:"status"`
	Amount            string     `json:"amount" csv:"amount"`         // decimal as text, may not parse
	AmountSign        AmountSign `json:"amountSign" csv:"amountSign"` // DEBIT, CREDIT or empty
	Currency          string     `json:"currency" csv:"currency"`
	OccurredAt        string     `json:"occurredAt" csv:"occurredAt"`
	AccountID         string     `json:"accountId" csv:"accountId"`
	OpposingAccountID string     `json:"opposingAccountId" csv:"opposingAccountId"`
	Symbol            string     `json:"symbol" csv:"symbol"`
	Quantity          string     `json:"quantity" csv:"quantity"`

	MerchantName       string `json:"merchantName" csv:"merchantName"`
	ETransferName      string `json:"eTransferName" csv:"eTransferName"`
	ETransferEmail     string `json:"eTransferEmail" csv:"eTransferEmail"`
	AFTOriginatorName  string `json:"aftOriginatorName" csv:"aftOriginatorName"`
	BillPayCompanyName string `json:"billPayCompanyName" csv:"billPayCompanyName"`
	P2PHandle          string `json:"p2pHandle" csv:"p2pHandle"`
}

// NormalizedType returns the upper-cased, trimmed activity type.
func (a RawActivity) NormalizedType() string {
	return strings.ToUpper(strings.TrimSpace(a.Type))
}

// NormalizedSubType returns the upper-cased, trimmed activity sub-type.
func (a RawActivity) NormalizedSubType() string {
	return strings.ToUpper(strings.TrimSpace(a.SubType))
}
