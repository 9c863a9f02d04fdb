// Package factory creates statement parsers by format name.
package factory

import (
	"fmt"

	"emo/payment-statement-parser/internal/logging"
	"emo/payment-statement-parser/internal/models"
	"emo/payment-statement-parser/internal/postltparser"
	"emo/payment-statement-parser/internal/swedbankparser"
)

// ParserType defines the types of parsers available.
type ParserType string

const (
	PostLt   ParserType = models.FormatPostLt
	Swedbank ParserType = models.FormatSwedbank
)

// ParserTypes lists the supported parser types.
func ParserTypes() []ParserType {
	return []ParserType{PostLt, Swedbank}
}

// GetParser returns a parser for parserType using the default logger.
func GetParser(parserType ParserType) (models.Parser, error) {
	return GetParserWithLogger(parserType, logging.Default())
}

// GetParserWithLogger returns a new instance of the appropriate parser for the given type
// with the provided logger for dependency injection.
func GetParserWithLogger(parserType ParserType, logger logging.Logger) (models.Parser, error) {
	switch parserType {
	case PostLt:
		return postltparser.NewParser(logger), nil
	case Swedbank:
		return swedbankparser.NewParser(logger), nil
	default:
		return nil, fmt.Errorf("unknown parser type: %s", parserType)
	}
}
