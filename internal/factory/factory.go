// Package factory creates the parser implementation for a detected statement
// format.
package factory

import (
	"fmt"

	"finflow/bankfeed/internal/logging"
	"finflow/bankfeed/internal/parser"
	"finflow/bankfeed/internal/textparser"
	"finflow/bankfeed/internal/xlsparser"
	"finflow/bankfeed/internal/xlsxparser"
)

// New returns a parser for the given container kind with default settings.
func New(kind parser.Kind, logger logging.Logger) (parser.Parser, error) {
	return NewWithHeaderOffset(kind, logger, xlsxparser.DefaultHeaderOffset)
}

// NewWithHeaderOffset returns a parser for the given container kind, scanning
// spreadsheets from the given header offset. The offset is ignored for
// delimited text.
func NewWithHeaderOffset(kind parser.Kind, logger logging.Logger, headerOffset int) (parser.Parser, error) {
	switch kind {
	case parser.KindText:
		return textparser.New(logger), nil
	case parser.KindXLSX:
		return xlsxparser.NewWithHeaderOffset(logger, headerOffset), nil
	case parser.KindXLS:
		return xlsparser.NewWithHeaderOffset(logger, headerOffset), nil
	default:
		return nil, fmt.Errorf("unknown statement format: %s", kind)
	}
}

// ForData detects the container format of a statement and returns a matching
// parser. This is the ingestion-boundary entry point.
func ForData(data []byte, passwordSupplied bool, logger logging.Logger) (parser.Parser, parser.Kind, error) {
	kind := parser.Detect(data, passwordSupplied)
	p, err := New(kind, logger)
	if err != nil {
		return nil, kind, err
	}
	return p, kind, nil
}
