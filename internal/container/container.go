// Package container provides dependency injection for the statement parser.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"emo/payment-statement-parser/internal/config"
	"emo/payment-statement-parser/internal/factory"
	"emo/payment-statement-parser/internal/logging"
	"emo/payment-statement-parser/internal/models"
	"emo/payment-statement-parser/internal/postltparser"
	"emo/payment-statement-parser/internal/report"
	"emo/payment-statement-parser/internal/swedbankparser"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	generator *report.ReportGenerator
	parsers   map[factory.ParserType]models.Parser
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))
	return NewContainerWithLogger(cfg, logger)
}

// NewContainerWithLogger wires the dependencies around an existing logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	parsers := make(map[factory.ParserType]models.Parser)

	postlt := postltparser.NewParser(logger)
	postlt.SetPassthroughUTF8(cfg.Encoding.PassthroughUTF8)
	if cfg.Validation.Workers > 0 {
		postlt.SetWorkers(cfg.Validation.Workers)
	}
	parsers[factory.PostLt] = postlt

	swedbank := swedbankparser.NewParser(logger)
	swedbank.SetPassthroughUTF8(cfg.Encoding.PassthroughUTF8)
	if cfg.Validation.Workers > 0 {
		swedbank.SetWorkers(cfg.Validation.Workers)
	}
	swedbank.SetSkipUnknownRecordTypes(cfg.Swedbank.SkipUnknownRecordTypes)
	swedbank.SetTransactionsOnly(cfg.Swedbank.TransactionsOnly)
	parsers[factory.Swedbank] = swedbank

	logger.Debug("Container initialized",
		logging.F("parsers_count", len(parsers)),
		logging.F(logging.FieldWorkers, cfg.Validation.Workers))

	return &Container{
		logger:    logger,
		config:    cfg,
		generator: report.NewReportGenerator(logger),
		parsers:   parsers,
	}, nil
}

// GetParser returns the configured parser for the given type.
func (c *Container) GetParser(pt factory.ParserType) (models.Parser, error) {
	p, ok := c.parsers[pt]
	if !ok {
		return nil, fmt.Errorf("unknown parser type: %s", pt)
	}
	return p, nil
}

// GetParsers returns a copy of the parser registry.
func (c *Container) GetParsers() map[factory.ParserType]models.Parser {
	result := make(map[factory.ParserType]models.Parser, len(c.parsers))
	for k, v := range c.parsers {
		result[k] = v
	}
	return result
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetReportGenerator returns the report generator.
func (c *Container) GetReportGenerator() *report.ReportGenerator {
	return c.generator
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
