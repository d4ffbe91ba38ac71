// Package textparser parses delimited-text bank statements into transaction
// drafts. The expected layout is the common export form: date, narration,
// reference, value date, withdrawal, deposit, balance.
package textparser

import (
	"bytes"
	"encoding/csv"
	"io"

	"finflow/bankfeed/internal/dateutils"
	"finflow/bankfeed/internal/logging"
	"finflow/bankfeed/internal/models"
	"finflow/bankfeed/internal/parser"
	"finflow/bankfeed/internal/parsererror"
	"finflow/bankfeed/internal/statementrow"
)

// Fixed column layout of the delimited statement exports.
const (
	colDate      = 0
	colNarration = 1
	colDebit     = 4
	colCredit    = 5
)

// Parser is the delimited-text statement parser.
type Parser struct {
	parser.BaseParser
}

// New creates a text statement parser.
func New(logger logging.Logger) *Parser {
	return &Parser{BaseParser: parser.NewBaseParser(logger)}
}

// Parse reads the whole input and converts every eligible row into a draft.
// Rows failing validation are logged and skipped; only an unreadable stream
// or malformed delimited structure aborts the parse.
func (p *Parser) Parse(r io.Reader, opts parser.Options) ([]models.TransactionDraft, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, parsererror.NewFormatError("text", "reading input", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // statements carry preamble lines of varying width
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, parsererror.NewFormatError("text", "malformed delimited structure", err)
	}

	drafts := make([]models.TransactionDraft, 0, len(rows))
	for i, fields := range rows {
		draft, rowErr := p.convertRow(i, fields, opts.Context)
		if rowErr != nil {
			p.SkipRow(rowErr)
			continue
		}
		drafts = append(drafts, draft)
	}

	p.Logger().Info("parsed text statement",
		logging.Field{Key: "rows", Value: len(rows)},
		logging.Field{Key: "drafts", Value: len(drafts)})
	return drafts, nil
}

func (p *Parser) convertRow(row int, fields []string, ctx models.StatementContext) (models.TransactionDraft, *parsererror.RowError) {
	if !statementrow.Eligible(fields) {
		return models.TransactionDraft{}, &parsererror.RowError{
			Row: row, Reason: "fewer than two fields or blank leading field",
		}
	}

	date, err := dateutils.ParseStatementDate(fields[colDate])
	if err != nil {
		return models.TransactionDraft{}, &parsererror.RowError{
			Row: row, Field: "date", Value: fields[colDate], Reason: err.Error(),
		}
	}

	if len(fields) <= colCredit {
		return models.TransactionDraft{}, &parsererror.RowError{
			Row: row, Reason: "missing debit/credit columns",
		}
	}

	amount, txType, err := statementrow.ResolveAmount(fields[colDebit], fields[colCredit])
	if err != nil {
		return models.TransactionDraft{}, &parsererror.RowError{
			Row: row, Field: "amount", Reason: err.Error(),
		}
	}

	description, explanation := statementrow.SplitTransferDescription(fields[colNarration])

	draft, err := models.NewDraftBuilder().
		WithDate(date).
		WithAmount(amount).
		WithType(txType).
		WithDescription(description).
		WithExplanation(explanation).
		WithContext(ctx).
		Build()
	if err != nil {
		return models.TransactionDraft{}, &parsererror.RowError{
			Row: row, Reason: err.Error(),
		}
	}
	return draft, nil
}
