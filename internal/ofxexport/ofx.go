// Package ofxexport builds OFX 1.02 SGML bank statements, with the Quicken
// QFX variant.
package ofxexport

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/activity-export/internal/dateutils"
	"fjacquet/activity-export/internal/models"
	"fjacquet/activity-export/internal/textutils"
)

const (
	bankIDPlaceholder = "000000000"
	postedTimeOfDay   = "120000"
	defaultCurrency   = "CAD"
	maxNameLength     = 96
	maxMemoLength     = 255
	moneyPlaces       = 2
)

var headerLines = []string{
	"OFXHEADER:100",
	"DATA:OFXSGML",
	"VERSION:102",
	"SECURITY:NONE",
	"ENCODING:USASCII",
	"CHARSET:1252",
	"COMPRESSION:NONE",
	"OLDFILEUID:NONE",
}

// Account types
const (
	AccountTypeChecking   = "CHECKING"
	AccountTypeSavings    = "SAVINGS"
	AccountTypeCreditLine = "CREDITLINE"
)

// Transaction types
const (
	TrnTypeDeposit    = "DEP"
	TrnTypeWithdrawal = "WITHDRAWAL"
	TrnTypeDebit      = "DEBIT"
	TrnTypeCredit     = "CREDIT"
)

var trnTypes = map[models.Category]string{
	models.CategoryDeposit:       TrnTypeDeposit,
	models.CategoryDividend:      TrnTypeDeposit,
	models.CategoryInterest:      TrnTypeDeposit,
	models.CategoryRefund:        TrnTypeDeposit,
	models.CategoryReimbursement: TrnTypeDeposit,
	models.CategoryBonus:         TrnTypeDeposit,
	models.CategoryWithdrawal:    TrnTypeWithdrawal,
	models.CategoryFee:           TrnTypeWithdrawal,
	models.CategoryTax:           TrnTypeWithdrawal,
	models.CategoryPurchase:      TrnTypeWithdrawal,
}

// Builder renders statements. The clock stamps DTSERVER, DTASOF and
// NEWFILEUID.
type Builder struct {
	now func() time.Time
}

// NewBuilder returns a Builder reading the given clock, or the wall clock
// when clock is nil.
func NewBuilder(clock func() time.Time) *Builder {
	if clock == nil {
		clock = time.Now
	}
	return &Builder{now: clock}
}

// OFX renders a plain OFX statement.
func (b *Builder) OFX(transactions []models.NormalizedTransaction, opts models.ExportOptions) string {
	return b.Build(transactions, opts, false)
}

// QFX renders an OFX statement carrying the Intuit bank id, which defaults
// to the FID.
func (b *Builder) QFX(transactions []models.NormalizedTransaction, opts models.ExportOptions) string {
	if strings.TrimSpace(opts.IntuBID) == "" {
		opts.IntuBID = opts.FID
	}
	return b.Build(transactions, opts, true)
}

// Build renders the statement for one account. Transactions are sorted by
// date, stable for equal dates.
func (b *Builder) Build(transactions []models.NormalizedTransaction, opts models.ExportOptions, includeIntuBID bool) string {
	generated := b.now().UTC()
	stamp := dateutils.ToOFXTimestamp(generated)
	sorted := models.SortByDate(transactions)

	w := &lineWriter{}
	for _, line := range headerLines {
		w.line(line)
	}
	w.line("NEWFILEUID:" + NewFileUID(stamp, opts.AccountID, len(sorted)))
	w.line("")

	w.line("<OFX>")
	w.line("<SIGNONMSGSRSV1>")
	w.line("<SONRS>")
	w.status()
	w.tag("DTSERVER", stamp)
	w.tag("LANGUAGE", "ENG")
	w.line("<FI>")
	w.tag("ORG", Sanitize(opts.Org))
	w.tag("FID", Sanitize(opts.FID))
	w.line("</FI>")
	if includeIntuBID {
		bid := opts.IntuBID
		if strings.TrimSpace(bid) == "" {
			bid = opts.FID
		}
		w.tag("INTU.BID", Sanitize(bid))
	}
	w.line("</SONRS>")
	w.line("</SIGNONMSGSRSV1>")

	w.line("<BANKMSGSRSV1>")
	w.line("<STMTTRNRS>")
	w.tag("TRNUID", "1")
	w.status()
	w.line("<STMTRS>")
	w.tag("CURDEF", currency(opts.Currency))
	w.line("<BANKACCTFROM>")
	w.tag("BANKID", bankIDPlaceholder)
	w.tag("ACCTID", Sanitize(opts.AccountID))
	w.tag("ACCTTYPE", AccountType(opts.AccountType))
	w.line("</BANKACCTFROM>")

	start, end := dateRange(sorted, generated)
	w.line("<BANKTRANLIST>")
	w.tag("DTSTART", start)
	w.tag("DTEND", end)
	balance := decimal.Zero
	for _, tx := range sorted {
		w.transaction(tx)
		balance = balance.Add(tx.Amount)
	}
	w.line("</BANKTRANLIST>")

	w.line("<LEDGERBAL>")
	w.tag("BALAMT", balance.StringFixed(moneyPlaces))
	w.tag("DTASOF", stamp)
	w.line("</LEDGERBAL>")
	w.line("</STMTRS>")
	w.line("</STMTTRNRS>")
	w.line("</BANKMSGSRSV1>")
	w.line("</OFX>")

	return w.String()
}

// AccountType maps a free-text account type to the OFX ACCTTYPE.
func AccountType(accountType string) string {
	t := strings.ToLower(accountType)
	switch {
	case strings.Contains(t, "savings"):
		return AccountTypeSavings
	case strings.Contains(t, "credit"):
		return AccountTypeCreditLine
	default:
		return AccountTypeChecking
	}
}

// TrnType maps a transaction to its OFX TRNTYPE: by category first, then
// by sign.
func TrnType(tx models.NormalizedTransaction) string {
	if t, ok := trnTypes[tx.Category]; ok {
		return t
	}
	if tx.Amount.IsNegative() {
		return TrnTypeDebit
	}
	return TrnTypeCredit
}

var sgmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Sanitize escapes SGML markup characters and collapses line breaks.
func Sanitize(s string) string {
	return sgmlEscaper.Replace(textutils.CollapseLineBreaks(s))
}

func postedDate(tx models.NormalizedTransaction) string {
	return dateutils.ToOFXDate(tx.Date) + postedTimeOfDay
}

func dateRange(sorted []models.NormalizedTransaction, generated time.Time) (string, string) {
	if len(sorted) == 0 {
		d := dateutils.ToOFXDate(generated) + postedTimeOfDay
		return d, d
	}
	return postedDate(sorted[0]), postedDate(sorted[len(sorted)-1])
}

func currency(c string) string {
	c = strings.ToUpper(strings.TrimSpace(c))
	if c == "" {
		return defaultCurrency
	}
	return Sanitize(c)
}

type lineWriter struct {
	lines []string
}

func (w *lineWriter) line(s string) {
	w.lines = append(w.lines, s)
}

func (w *lineWriter) tag(name, value string) {
	w.lines = append(w.lines, "<"+name+">"+value)
}

func (w *lineWriter) status() {
	w.line("<STATUS>")
	w.tag("CODE", "0")
	w.tag("SEVERITY", "INFO")
	w.line("</STATUS>")
}

func (w *lineWriter) transaction(tx models.NormalizedTransaction) {
	w.line("<STMTTRN>")
	w.tag("TRNTYPE", TrnType(tx))
	w.tag("DTPOSTED", postedDate(tx))
	w.tag("TRNAMT", tx.Amount.StringFixed(moneyPlaces))
	w.tag("FITID", FITID(tx))
	w.tag("NAME", Sanitize(textutils.Truncate(textutils.DerivePayee(tx.Description), maxNameLength)))
	w.tag("MEMO", Sanitize(textutils.Truncate(tx.Memo(), maxMemoLength)))
	w.line("</STMTTRN>")
}

func (w *lineWriter) String() string {
	return strings.Join(w.lines, "\n")
}
