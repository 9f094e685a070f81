package models

// Category is the closed set of labels a normalized transaction can carry.
type Category string

// Categories
const (
	CategoryInvestmentBuy      Category = "Investment Buy"
	CategoryInvestmentSell     Category = "Investment Sell"
	CategoryDeposit            Category = "Deposit"
	CategoryWithdrawal         Category = "Withdrawal"
	CategoryDividend           Category = "Dividend"
	CategoryInterest           Category = "Interest"
	CategoryTransfer           Category = "Transfer"
	CategoryPurchase           Category = "Purchase"
	CategoryCreditCardPayment  Category = "Credit Card Payment"
	CategoryRefund             Category = "Refund"
	CategoryFee                Category = "Fee"
	CategoryTax                Category = "Tax"
	CategoryCurrencyConversion Category = "Currency Conversion"
	CategoryP2PPayment         Category = "P2P Payment"
	CategoryReimbursement      Category = "Reimbursement"
	CategoryBonus              Category = "Bonus"
	CategoryOther              Category = "Other"
)

// String returns the label as written to exports.
func (c Category) String() string {
	return string(c)
}

// Trading actions
const (
	ActionBuy        = "Buy"
	ActionSell       = "Sell"
	ActionDividend   = "Dividend"
	ActionDeposit    = "Deposit"
	ActionWithdrawal = "Withdrawal"
	ActionFee        = "Fee"
	ActionInterest   = "Interest"
	ActionTransfer   = "Transfer"
	ActionConversion = "Conversion"
)

// Activity statuses that never reach an export
const (
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
	StatusExpired   = "expired"
)

// DateLayout is the calendar date layout used in CSV exports.
const DateLayout = "2006-01-02"

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
