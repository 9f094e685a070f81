// Package container provides dependency injection for the activity-export
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fjacquet/activity-export/internal/accounts"
	"fjacquet/activity-export/internal/config"
	"fjacquet/activity-export/internal/exporter"
	"fjacquet/activity-export/internal/factory"
	"fjacquet/activity-export/internal/logging"
	"fjacquet/activity-export/internal/models"
	"fjacquet/activity-export/internal/normalizer"
	"fjacquet/activity-export/internal/sink"
	"fjacquet/activity-export/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger logging.Logger
	config *config.Config
	runID  string
	clock  func() time.Time

	accountStore *store.AccountStore
	book         *accounts.Book
	state        store.StateRepository

	normalizer *normalizer.Normalizer
	exporter   *exporter.Exporter
	parsers    map[factory.ParserType]models.Parser
}

// Options overrides pieces of the wiring, mostly for tests. Zero values
// keep the configured defaults.
type Options struct {
	Logger logging.Logger
	Clock  func() time.Time
	State  store.StateRepository
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	return NewContainerWithOptions(cfg, Options{})
}

// NewContainerWithOptions is NewContainer with explicit overrides.
func NewContainerWithOptions(cfg *config.Config, opts Options) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := opts.Logger
	if logger == nil {
		logger = config.NewLogger(cfg)
	}
	runID := uuid.New().String()
	logger = logger.WithField(logging.FieldRunID, runID)

	accountStore := store.NewAccountStore(cfg.Accounts.File, logger)
	list, err := accountStore.LoadAccounts()
	if err != nil {
		return nil, fmt.Errorf("error loading accounts: %w", err)
	}
	book := accounts.NewBook(list)

	state := opts.State
	if state == nil {
		state = store.NewStateStore(cfg.State.File, logger)
	}

	norm := normalizer.NewNormalizer(book.ResolveName, book.IsCreditCard, logger)
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	exp := exporter.NewExporter(clock, logger)

	parsers := make(map[factory.ParserType]models.Parser)
	for _, pt := range []factory.ParserType{factory.JSON, factory.CSV} {
		p, err := factory.GetParserWithLogger(pt, logger)
		if err != nil {
			return nil, err
		}
		parsers[pt] = p
	}

	logger.Info("Container initialized successfully",
		logging.F("accounts_count", len(list)),
		logging.F("parsers_count", len(parsers)))

	return &Container{
		logger:       logger,
		config:       cfg,
		runID:        runID,
		clock:        clock,
		accountStore: accountStore,
		book:         book,
		state:        state,
		normalizer:   norm,
		exporter:     exp,
		parsers:      parsers,
	}, nil
}

// GetParser returns the reader for the given type.
func (c *Container) GetParser(pt factory.ParserType) (models.Parser, error) {
	p, ok := c.parsers[pt]
	if !ok {
		return nil, fmt.Errorf("unknown parser type: %s", pt)
	}
	return p, nil
}

// ParserFor detects the input format of path and returns its reader.
func (c *Container) ParserFor(path string) (models.Parser, error) {
	pt, err := factory.DetectParserType(path, c.logger)
	if err != nil {
		return nil, err
	}
	return c.GetParser(pt)
}

// Now is the generation time used for exports and file names.
func (c *Container) Now() time.Time {
	return c.clock()
}

// GetLogger returns the container's logger, tagged with the run id.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// RunID is the correlation id attached to every log entry of this run.
func (c *Container) RunID() string {
	return c.runID
}

func (c *Container) GetAccountStore() *store.AccountStore {
	return c.accountStore
}

func (c *Container) GetAccounts() *accounts.Book {
	return c.book
}

func (c *Container) GetStateStore() store.StateRepository {
	return c.state
}

func (c *Container) GetNormalizer() *normalizer.Normalizer {
	return c.normalizer
}

func (c *Container) GetExporter() *exporter.Exporter {
	return c.exporter
}

// Institution is the OFX financial institution from configuration.
func (c *Container) Institution() accounts.Institution {
	return accounts.Institution{
		Org:     c.config.OFX.Org,
		FID:     c.config.OFX.FID,
		IntuBID: c.config.OFX.IntuBID,
	}
}

// OpenPublisher opens the sink of an output location. An empty location
// falls back to export.output_dir.
func (c *Container) OpenPublisher(ctx context.Context, location string) (*sink.Publisher, error) {
	if location == "" {
		location = c.config.Export.OutputDir
	}
	dest, err := sink.ParseDestination(location)
	if err != nil {
		return nil, err
	}
	s, err := sink.Open(ctx, dest, sink.Options{AzureServiceURL: c.config.Sink.AzureServiceURL}, c.logger)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", location, err)
	}
	return sink.NewPublisher(s, c.config.OFX.CharsetTranscode, c.logger), nil
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Info("Container closed")
	return nil
}
