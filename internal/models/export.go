package models

// ExportOptions carries the account metadata the OFX/QFX statements need.
type ExportOptions struct {
	AccountID   string `yaml:"account_id"`
	AccountType string `yaml:"account_type"` // free text, e.g. "Cash", "TFSA", "Credit card"
	Currency    string `yaml:"currency"`
	Org         string `yaml:"org"`
	FID         string `yaml:"fid"`
	IntuBID     string `yaml:"intu_bid"` // Quicken institution id, defaults to FID
}

// ExportFile is a serialized export ready to be written or uploaded.
type ExportFile struct {
	Content   string
	Extension string
	MIMEType  string
}
