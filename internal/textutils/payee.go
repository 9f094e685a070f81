// Package textutils provides text cleanup shared by the export codecs.
package textutils

import (
	"regexp"
	"strings"
)

// Provider description prefixes, stripped in this order.
var primaryPrefixes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^withdrawal:\s*`),
	regexp.MustCompile(`(?i)^deposit:\s*`),
	regexp.MustCompile(`(?i)^credit card purchase:\s*`),
	regexp.MustCompile(`(?i)^credit card hold:\s*`),
	regexp.MustCompile(`(?i)^credit card refund:\s*`),
}

// Funding-rail prefixes left behind once the primary prefix is gone.
// Each only matches when followed by whitespace.
var secondaryPrefixes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^aft\s+`),
	regexp.MustCompile(`(?i)^e-transfer\s+`),
	regexp.MustCompile(`(?i)^eft\s+`),
	regexp.MustCompile(`(?i)^bill pay\s+`),
}

// DerivePayee turns a transaction description into a clean counterparty
// name for budgeting exports, e.g. "Deposit: e-Transfer John Doe" becomes
// "John Doe". When nothing would be left the description is returned as is.
func DerivePayee(description string) string {
	payee := strings.TrimSpace(description)

	for _, re := range primaryPrefixes {
		payee = re.ReplaceAllString(payee, "")
	}
	for _, re := range secondaryPrefixes {
		payee = re.ReplaceAllString(payee, "")
	}

	payee = strings.TrimSpace(payee)
	if payee == "" {
		return description
	}
	return payee
}
