// Package xlsparser parses legacy BIFF (.xls) spreadsheet bank statements.
// The scan bounds, column layout and row rules match the xlsx variant;
// encrypted BIFF workbooks are not supported and surface as a container
// failure.
package xlsparser

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"time"

	"finflow/bankfeed/internal/dateutils"
	"finflow/bankfeed/internal/logging"
	"finflow/bankfeed/internal/models"
	"finflow/bankfeed/internal/parser"
	"finflow/bankfeed/internal/parsererror"
	"finflow/bankfeed/internal/statementrow"

	"github.com/extrame/xls"
)

const (
	colDate        = 0
	colDescription = 1
	colReference   = 2
	colDebit       = 3
	colCredit      = 4
)

// DefaultHeaderOffset is the first row index scanned for transactions.
const DefaultHeaderOffset = 16

// Parser is the legacy spreadsheet statement parser.
type Parser struct {
	parser.BaseParser
	headerOffset int
}

// New creates an xls statement parser with the default header offset.
func New(logger logging.Logger) *Parser {
	return NewWithHeaderOffset(logger, DefaultHeaderOffset)
}

// NewWithHeaderOffset creates an xls statement parser that starts scanning at
// the given row index.
func NewWithHeaderOffset(logger logging.Logger, headerOffset int) *Parser {
	if headerOffset < 0 {
		headerOffset = DefaultHeaderOffset
	}
	return &Parser{
		BaseParser:   parser.NewBaseParser(logger),
		headerOffset: headerOffset,
	}
}

// Parse opens the workbook and scans the first sheet. Row failures are logged
// and skipped; only an unreadable container aborts the parse.
func (p *Parser) Parse(r io.Reader, opts parser.Options) ([]models.TransactionDraft, error) {
	if opts.Password != "" {
		return nil, parsererror.NewFormatError("xls", "encrypted BIFF workbooks are not supported", nil)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, parsererror.NewFormatError("xls", "reading input", err)
	}

	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, parsererror.NewFormatError("xls", "opening workbook", err)
	}
	if workbook.NumSheets() == 0 {
		return nil, parsererror.NewFormatError("xls", "workbook has no sheets", nil)
	}

	sheet := workbook.GetSheet(0)
	if sheet == nil {
		return nil, parsererror.NewFormatError("xls", "first sheet unreadable", nil)
	}

	var drafts []models.TransactionDraft
	maxRow := int(sheet.MaxRow)
	for i := p.headerOffset; i <= maxRow; i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}

		lead := strings.TrimSpace(row.Col(colDate))
		if statementrow.IsFooter(lead) {
			p.Logger().Debug("footer marker reached, stopping scan",
				logging.Field{Key: "row", Value: i},
				logging.Field{Key: "cell", Value: lead})
			break
		}

		draft, rowErr := p.convertRow(row, i, lead, opts.Context)
		if rowErr != nil {
			p.SkipRow(rowErr)
			continue
		}
		drafts = append(drafts, draft)
	}

	p.Logger().Info("parsed legacy spreadsheet statement",
		logging.Field{Key: "drafts", Value: len(drafts)})
	return drafts, nil
}

func (p *Parser) convertRow(row *xls.Row, index int, dateCell string, ctx models.StatementContext) (models.TransactionDraft, *parsererror.RowError) {
	if dateCell == "" {
		return models.TransactionDraft{}, &parsererror.RowError{Row: index, Reason: "blank leading cell"}
	}

	date, ok := parseCellDate(dateCell)
	if !ok {
		return models.TransactionDraft{}, &parsererror.RowError{
			Row: index, Field: "date", Value: dateCell, Reason: "unparseable date cell",
		}
	}

	amount, txType, err := statementrow.ResolveAmount(row.Col(colDebit), row.Col(colCredit))
	if err != nil {
		return models.TransactionDraft{}, &parsererror.RowError{
			Row: index, Field: "amount", Reason: err.Error(),
		}
	}

	description := statementrow.JoinDescription(row.Col(colDescription), row.Col(colReference))

	draft, err := models.NewDraftBuilder().
		WithDate(date).
		WithAmount(amount).
		WithType(txType).
		WithDescription(description).
		WithContext(ctx).
		Build()
	if err != nil {
		return models.TransactionDraft{}, &parsererror.RowError{Row: index, Reason: err.Error()}
	}
	return draft, nil
}

// parseCellDate handles both rendered date strings and raw serial day numbers,
// which is how the BIFF reader hands back date cells it cannot format.
func parseCellDate(s string) (time.Time, bool) {
	if t, ok := dateutils.ParseRenderedDate(s); ok {
		return t, true
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 20000 && serial < 80000 {
		return dateutils.FromExcelSerial(serial), true
	}
	return time.Time{}, false
}
