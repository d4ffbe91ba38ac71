// Package xlsxparser parses OOXML spreadsheet bank statements, including
// password-protected workbooks, into transaction drafts.
//
// Statements of this shape carry a constant preamble (bank letterhead,
// account holder details) before the header row, and trailing summary or
// disclaimer content after the last transaction. Scanning therefore starts at
// a fixed header offset and halts permanently at the first footer marker.
package xlsxparser

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"finflow/bankfeed/internal/dateutils"
	"finflow/bankfeed/internal/logging"
	"finflow/bankfeed/internal/models"
	"finflow/bankfeed/internal/parser"
	"finflow/bankfeed/internal/parsererror"
	"finflow/bankfeed/internal/statementrow"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Fixed column layout of the spreadsheet statement exports.
const (
	colDate        = 0
	colDescription = 1
	colReference   = 2
	colDebit       = 3
	colCredit      = 4
)

// DefaultHeaderOffset is the first row index scanned for transactions.
const DefaultHeaderOffset = 16

// builtInDateFormats are the numeric format IDs Excel reserves for dates.
var builtInDateFormats = map[int]struct{}{
	14: {}, 15: {}, 16: {}, 17: {}, 18: {}, 19: {}, 20: {}, 21: {}, 22: {},
	45: {}, 46: {}, 47: {},
}

// Parser is the OOXML spreadsheet statement parser.
type Parser struct {
	parser.BaseParser
	headerOffset int
}

// New creates an xlsx statement parser with the default header offset.
func New(logger logging.Logger) *Parser {
	return NewWithHeaderOffset(logger, DefaultHeaderOffset)
}

// NewWithHeaderOffset creates an xlsx statement parser that starts scanning at
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

// Parse opens the workbook (decrypting with opts.Password when set) and scans
// the first sheet. A workbook that cannot be opened is the one fatal failure;
// every row-level problem is logged and skipped.
func (p *Parser) Parse(r io.Reader, opts parser.Options) ([]models.TransactionDraft, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, parsererror.NewFormatError("xlsx", "reading input", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data), excelize.Options{Password: opts.Password})
	if err != nil {
		return nil, parsererror.NewFormatError("xlsx", "opening workbook", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			p.Logger().WithError(closeErr).Warn("failed to close workbook")
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, parsererror.NewFormatError("xlsx", "workbook has no sheets", nil)
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, parsererror.NewFormatError("xlsx", "reading sheet", err)
	}

	var drafts []models.TransactionDraft
	for i := p.headerOffset; i < len(rows); i++ {
		lead := p.cellString(f, sheet, colDate, i)
		if statementrow.IsFooter(lead) {
			p.Logger().Debug("footer marker reached, stopping scan",
				logging.Field{Key: "row", Value: i},
				logging.Field{Key: "cell", Value: lead})
			break
		}

		draft, rowErr := p.convertRow(f, sheet, i, lead, opts.Context)
		if rowErr != nil {
			p.SkipRow(rowErr)
			continue
		}
		drafts = append(drafts, draft)
	}

	p.Logger().Info("parsed spreadsheet statement",
		logging.Field{Key: "sheet", Value: sheet},
		logging.Field{Key: "drafts", Value: len(drafts)})
	return drafts, nil
}

func (p *Parser) convertRow(f *excelize.File, sheet string, row int, dateCell string, ctx models.StatementContext) (models.TransactionDraft, *parsererror.RowError) {
	if strings.TrimSpace(dateCell) == "" {
		return models.TransactionDraft{}, &parsererror.RowError{Row: row, Reason: "blank leading cell"}
	}

	date, ok := dateutils.ParseRenderedDate(dateCell)
	if !ok {
		return models.TransactionDraft{}, &parsererror.RowError{
			Row: row, Field: "date", Value: dateCell, Reason: "unparseable date cell",
		}
	}

	debit := p.cellString(f, sheet, colDebit, row)
	credit := p.cellString(f, sheet, colCredit, row)
	amount, txType, err := statementrow.ResolveAmount(debit, credit)
	if err != nil {
		return models.TransactionDraft{}, &parsererror.RowError{
			Row: row, Field: "amount", Reason: err.Error(),
		}
	}

	description := statementrow.JoinDescription(
		p.cellString(f, sheet, colDescription, row),
		p.cellString(f, sheet, colReference, row),
	)

	draft, err := models.NewDraftBuilder().
		WithDate(date).
		WithAmount(amount).
		WithType(txType).
		WithDescription(description).
		WithContext(ctx).
		Build()
	if err != nil {
		return models.TransactionDraft{}, &parsererror.RowError{Row: row, Reason: err.Error()}
	}
	return draft, nil
}

// cellString coerces one cell to its string form: text passes through,
// date-styled numbers render in the statement date layout, other numbers
// render as an integer string when integral, formulas are evaluated first,
// booleans stringify, and blank or error cells yield "".
func (p *Parser) cellString(f *excelize.File, sheet string, col, row int) string {
	axis, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return ""
	}

	cellType, err := f.GetCellType(sheet, axis)
	if err != nil {
		return ""
	}

	switch cellType {
	case excelize.CellTypeError:
		return ""
	case excelize.CellTypeBool:
		v, _ := f.GetCellValue(sheet, axis)
		return strings.ToLower(strings.TrimSpace(v))
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		v, _ := f.GetCellValue(sheet, axis)
		return strings.TrimSpace(v)
	case excelize.CellTypeFormula:
		v, err := f.CalcCellValue(sheet, axis)
		if err != nil {
			return ""
		}
		return coerceNumber(v)
	}

	// Numeric cells carry no type attribute; distinguish dates by style.
	if p.isDateCell(f, sheet, axis) {
		raw, err := f.GetCellValue(sheet, axis, excelize.Options{RawCellValue: true})
		if err == nil {
			if serial, perr := strconv.ParseFloat(strings.TrimSpace(raw), 64); perr == nil {
				if t, derr := excelize.ExcelDateToTime(serial, false); derr == nil {
					return t.Format(dateutils.StatementLayout)
				}
			}
		}
	}

	v, err := f.GetCellValue(sheet, axis, excelize.Options{RawCellValue: true})
	if err != nil {
		return ""
	}
	return coerceNumber(v)
}

func (p *Parser) isDateCell(f *excelize.File, sheet, axis string) bool {
	styleID, err := f.GetCellStyle(sheet, axis)
	if err != nil {
		return false
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if _, ok := builtInDateFormats[style.NumFmt]; ok {
		return true
	}
	if style.CustomNumFmt != nil {
		custom := strings.ToLower(*style.CustomNumFmt)
		return strings.Contains(custom, "yy") ||
			(strings.Contains(custom, "d") && strings.Contains(custom, "m"))
	}
	return false
}

// coerceNumber renders a numeric string as an integer when integral, as a
// decimal otherwise. Non-numeric input passes through trimmed.
func coerceNumber(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	if d.IsInteger() {
		return d.Truncate(0).String()
	}
	return d.String()
}
