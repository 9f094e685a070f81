// Package exporter dispatches a batch of normalized transactions to the
// CSV or OFX/QFX codec.
package exporter

import (
	"time"

	"fjacquet/activity-export/internal/csvexport"
	"fjacquet/activity-export/internal/logging"
	"fjacquet/activity-export/internal/models"
	"fjacquet/activity-export/internal/ofxexport"
)

type payload struct {
	transactions []models.NormalizedTransaction
	options      models.ExportOptions
}

// Exporter renders export files.
type Exporter struct {
	ofx    *ofxexport.Builder
	logger logging.Logger
}

// NewExporter creates an Exporter. clock stamps OFX statements and defaults
// to the wall clock.
func NewExporter(clock func() time.Time, logger logging.Logger) *Exporter {
	return &Exporter{
		ofx:    ofxexport.NewBuilder(clock),
		logger: logging.OrDefault(logger),
	}
}

// Generate serializes transactions in the given format.
func (e *Exporter) Generate(transactions []models.NormalizedTransaction, format Format, options models.ExportOptions) models.ExportFile {
	content := format.render(e, payload{transactions: transactions, options: options})

	e.logger.Debug("Generated export",
		logging.F(logging.FieldFormat, format.Name()),
		logging.F(logging.FieldAccountID, options.AccountID),
		logging.F(logging.FieldCount, len(transactions)))

	return models.ExportFile{
		Content:   content,
		Extension: format.Extension(),
		MIMEType:  format.MIMEType(),
	}
}

// Generate serializes transactions with a default wall-clock Exporter.
func Generate(transactions []models.NormalizedTransaction, format Format, options models.ExportOptions) models.ExportFile {
	return NewExporter(nil, nil).Generate(transactions, format, options)
}

func (csvFormat) render(_ *Exporter, p payload) string {
	return csvexport.Generate(p.transactions)
}

func (ofxFormat) render(e *Exporter, p payload) string {
	return e.ofx.OFX(p.transactions, p.options)
}

func (qfxFormat) render(e *Exporter, p payload) string {
	return e.ofx.QFX(p.transactions, p.options)
}
