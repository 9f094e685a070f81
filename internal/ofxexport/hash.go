package ofxexport

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"fjacquet/activity-export/internal/models"
)

const hashSeed uint32 = 5381

// Hash32 is a DJB2-xor hash over the UTF-16 code units of s, rendered as
// 8 lower-case hex digits. It is an identity hash, not a cryptographic one.
func Hash32(s string) string {
	h := hashSeed
	for _, unit := range utf16.Encode([]rune(s)) {
		h = ((h << 5) + h) ^ uint32(unit)
	}
	return fmt.Sprintf("%08x", h)
}

// Transfer directions
const (
	DirectionIn  = "IN"
	DirectionOut = "OUT"
)

// IsTransfer reports whether a transaction is one leg of an internal
// transfer, whose provider id is shared with the other leg.
func IsTransfer(tx models.NormalizedTransaction) bool {
	return tx.Category == models.CategoryTransfer ||
		tx.Action == models.ActionTransfer ||
		strings.HasPrefix(strings.ToLower(tx.Description), "transfer ")
}

// FITID returns the financial institution transaction id of tx. Transfer
// legs get a suffix keyed on account and direction so importers do not
// deduplicate one leg against the other.
func FITID(tx models.NormalizedTransaction) string {
	id := Sanitize(tx.ID)
	if !IsTransfer(tx) {
		return id
	}
	direction := DirectionIn
	if tx.Amount.IsNegative() {
		direction = DirectionOut
	}
	return id + "-" + Hash32(tx.ID+"|"+tx.AccountID+"|"+direction)
}

// NewFileUID is the NEWFILEUID header value for a statement generated at
// timestamp.
func NewFileUID(timestamp, accountID string, count int) string {
	return fmt.Sprintf("%s-%s", timestamp, Hash32(fmt.Sprintf("%s:%d", accountID, count)))
}
