package parser

import (
	"finflow/bankfeed/internal/logging"
	"finflow/bankfeed/internal/parsererror"
)

// BaseParser provides the logger plumbing shared by all parser
// implementations. Parsers embed it:
//
//	type Parser struct {
//		parser.BaseParser
//	}
type BaseParser struct {
	logger logging.Logger
}

// NewBaseParser creates a BaseParser. A nil logger falls back to a default
// logrus adapter.
func NewBaseParser(logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return BaseParser{logger: logger}
}

// SetLogger replaces the parser's logger.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// Logger returns the current logger.
func (b *BaseParser) Logger() logging.Logger {
	return b.logger
}

// SkipRow logs a dropped row with its cause. Row skips never abort a parse.
func (b *BaseParser) SkipRow(rowErr *parsererror.RowError) {
	b.logger.Warn("skipping statement row",
		logging.Field{Key: "row", Value: rowErr.Row},
		logging.Field{Key: "reason", Value: rowErr.Error()})
}
