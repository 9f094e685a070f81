// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"fjacquet/activity-export/internal/batch"
	"fjacquet/activity-export/internal/container"
	"fjacquet/activity-export/internal/dateutils"
	"fjacquet/activity-export/internal/exporter"
	"fjacquet/activity-export/internal/logging"
	"fjacquet/activity-export/internal/models"
	"fjacquet/activity-export/internal/sink"
)

// ExportRequest describes one run of the export command.
type ExportRequest struct {
	Input     string
	Output    string // directory, gs://, azblob:// or a file name with the format's extension
	Account   string // empty exports every account of the input
	Format    exporter.Format
	SinceLast bool
}

// ExportResult is one published export file.
type ExportResult struct {
	AccountID string
	Location  string
	Count     int
}

// LoadActivities reads the raw activities of an input file, or of every
// activity file in an input directory, with the reader matching each
// file's format. Activity ids repeated across files are kept once.
func LoadActivities(c *container.Container, input string) ([]models.RawActivity, error) {
	if strings.TrimSpace(input) == "" {
		return nil, fmt.Errorf("an input file is required (--input)")
	}

	agg := batch.NewAggregator(c.GetLogger())
	files, err := agg.CollectFiles(input)
	if err != nil {
		return nil, err
	}
	return agg.Aggregate(files, func(file string) ([]models.RawActivity, error) {
		p, err := c.ParserFor(file)
		if err != nil {
			return nil, err
		}
		return p.ParseFile(file)
	})
}

// NormalizeInput loads, normalizes and optionally restricts an input file
// to one account.
func NormalizeInput(c *container.Container, input, accountID string) ([]models.NormalizedTransaction, error) {
	activities, err := LoadActivities(c, input)
	if err != nil {
		return nil, err
	}
	return FilterAccount(c.GetNormalizer().Normalize(activities), accountID), nil
}

// FilterAccount keeps the transactions of one account. An empty id keeps
// everything.
func FilterAccount(txs []models.NormalizedTransaction, accountID string) []models.NormalizedTransaction {
	if accountID == "" {
		return txs
	}
	out := make([]models.NormalizedTransaction, 0, len(txs))
	for _, tx := range txs {
		if tx.AccountID == accountID {
			out = append(out, tx)
		}
	}
	return out
}

// GroupByAccount splits a batch per account. Accounts are listed in order
// of first appearance.
func GroupByAccount(txs []models.NormalizedTransaction) ([]string, map[string][]models.NormalizedTransaction) {
	var order []string
	groups := make(map[string][]models.NormalizedTransaction)
	for _, tx := range txs {
		if _, seen := groups[tx.AccountID]; !seen {
			order = append(order, tx.AccountID)
		}
		groups[tx.AccountID] = append(groups[tx.AccountID], tx)
	}
	return order, groups
}

// DropExported removes what a previous export already covered. When the
// stored transaction is part of the batch, everything up to and including
// it in date order goes; otherwise everything dated on or before the
// stored date goes. The result is in date order.
func DropExported(txs []models.NormalizedTransaction, last models.ExportState) []models.NormalizedTransaction {
	lastDate, ok := last.LastDate()
	if !ok {
		return txs
	}

	sorted := models.SortByDate(txs)
	cut := -1
	if last.LastTransactionID != "" {
		for i, tx := range sorted {
			if tx.ID == last.LastTransactionID {
				cut = i
			}
		}
	}

	out := make([]models.NormalizedTransaction, 0, len(sorted))
	for i, tx := range sorted {
		order := dateutils.CompareDates(tx.Date, lastDate)
		if i <= cut || order < 0 || (cut < 0 && order == 0) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// OutputFileName returns the file name when output names a single local
// file of the format, and "" otherwise.
func OutputFileName(output string, format exporter.Format) string {
	if output == "" || strings.Contains(output, "://") {
		return ""
	}
	if !strings.EqualFold(filepath.Ext(output), "."+format.Extension()) {
		return ""
	}
	return output
}

// RunExport normalizes the input, generates one export per account and
// publishes it, then records the newest exported transaction of each.
func RunExport(ctx context.Context, c *container.Container, req ExportRequest) ([]ExportResult, error) {
	if req.Format == nil {
		return nil, fmt.Errorf("an export format is required")
	}
	log := c.GetLogger().WithField(logging.FieldFormat, req.Format.Name())

	txs, err := NormalizeInput(c, req.Input, req.Account)
	if err != nil {
		return nil, err
	}
	order, groups := GroupByAccount(txs)
	if req.Account != "" && len(order) == 0 {
		order = []string{req.Account}
	}

	fileName := OutputFileName(req.Output, req.Format)
	location := req.Output
	if fileName != "" {
		if len(order) > 1 {
			return nil, fmt.Errorf("%s names a single file but the input holds %d accounts, select one with --account", req.Output, len(order))
		}
		location = filepath.Dir(fileName)
	}

	pub, err := c.OpenPublisher(ctx, location)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := pub.Close(); cerr != nil {
			log.WithError(cerr).Warn("Error closing export sink")
		}
	}()

	var results []ExportResult
	for _, accountID := range order {
		group := groups[accountID]
		if req.SinceLast {
			last, found, err := c.GetStateStore().Last(accountID)
			if err != nil {
				return results, fmt.Errorf("error reading export state of %s: %w", accountID, err)
			}
			if found {
				group = DropExported(group, last)
			}
			if len(group) == 0 {
				log.Info("No new transactions since last export", logging.F(logging.FieldAccountID, accountID))
				continue
			}
		}

		result, err := exportAccount(ctx, c, pub, req.Format, accountID, group, fileName)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

func exportAccount(ctx context.Context, c *container.Container, pub *sink.Publisher, format exporter.Format,
	accountID string, group []models.NormalizedTransaction, fileName string) (ExportResult, error) {
	now := c.Now()
	opts := c.GetAccounts().ExportOptions(accountID, c.Institution())
	file := c.GetExporter().Generate(group, format, opts)

	var (
		location string
		err      error
	)
	if fileName != "" {
		location, err = pub.PublishAs(ctx, filepath.Base(fileName), accountID, file)
	} else {
		location, err = pub.Publish(ctx, accountID, now, file)
	}
	if err != nil {
		return ExportResult{}, err
	}

	if _, newest, ok := models.Boundaries(group); ok {
		state := models.ExportState{
			LastTransactionID:   newest.ID,
			LastTransactionDate: newest.DateString(),
			Format:              format.Name(),
			ExportedAt:          now.UTC(),
		}
		if err := c.GetStateStore().Record(accountID, state); err != nil {
			return ExportResult{}, fmt.Errorf("error recording export state of %s: %w", accountID, err)
		}
	}

	return ExportResult{AccountID: accountID, Location: location, Count: len(group)}, nil
}

// NormalizedView is the printable form of a normalized transaction.
type NormalizedView struct {
	ID          string `yaml:"id"`
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
	Amount      string `yaml:"amount"`
	Currency    string `yaml:"currency,omitempty"`
	Category    string `yaml:"category"`
	AccountID   string `yaml:"account_id"`
	Symbol      string `yaml:"symbol,omitempty"`
	Action      string `yaml:"action,omitempty"`
	Quantity    string `yaml:"quantity,omitempty"`
	Price       string `yaml:"price,omitempty"`
}

// Views converts transactions to their printable form.
func Views(txs []models.NormalizedTransaction) []NormalizedView {
	out := make([]NormalizedView, 0, len(txs))
	for _, tx := range txs {
		v := NormalizedView{
			ID:          tx.ID,
			Date:        tx.DateString(),
			Description: tx.Description,
			Amount:      tx.Amount.String(),
			Currency:    tx.Currency,
			Category:    tx.Category.String(),
			AccountID:   tx.AccountID,
			Symbol:      tx.Symbol,
			Action:      tx.Action,
		}
		if tx.Quantity.Valid {
			v.Quantity = tx.Quantity.Decimal.String()
		}
		if tx.Price.Valid {
			v.Price = tx.Price.Decimal.String()
		}
		out = append(out, v)
	}
	return out
}
