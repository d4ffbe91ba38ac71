// Package statementrow holds the row validation and field normalization rules
// shared by every statement parser variant.
package statementrow

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"finflow/bankfeed/internal/models"

	"github.com/shopspring/decimal"
)

// Sentinel row-drop reasons for amount resolution. Parsers log these and skip
// the row.
var (
	ErrNoAmount  = errors.New("both debit and credit fields empty")
	ErrBadAmount = errors.New("amount field is not a positive number")
)

// amountPlaceholder is the dash banks print in the unused debit/credit column.
const amountPlaceholder = "-"

// transferPattern splits a narration of the form
// `TRANSFER TO 12345 - UPI/XYZ/NOTE` into the transfer clause and the detail.
var transferPattern = regexp.MustCompile(`^(TRANSFER (?:TO|FROM) \S+)\s*-\s*(.+)$`)

// CleanAmount normalizes a raw amount field: trims whitespace, strips
// thousands separators, and maps the placeholder dash to empty.
func CleanAmount(s string) string {
	s = strings.TrimSpace(s)
	if s == amountPlaceholder {
		return ""
	}
	return strings.ReplaceAll(s, ",", "")
}

// ResolveAmount resolves the debit/credit column pair of a statement row to a
// positive amount and a transaction direction. Exactly one of the two fields
// must hold a valid positive number:
//
//   - both empty or placeholder: ErrNoAmount
//   - populated field unparseable or non-positive: ErrBadAmount
//   - debit populated: models.TypeDebit; credit populated: models.TypeCredit
func ResolveAmount(debitField, creditField string) (decimal.Decimal, string, error) {
	debit := CleanAmount(debitField)
	credit := CleanAmount(creditField)

	var raw, txType string
	switch {
	case debit == "" && credit == "":
		return decimal.Zero, "", ErrNoAmount
	case debit != "":
		raw, txType = debit, models.TypeDebit
	default:
		raw, txType = credit, models.TypeCredit
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, "", fmt.Errorf("%w: %q", ErrBadAmount, raw)
	}
	if !amount.IsPositive() {
		return decimal.Zero, "", fmt.Errorf("%w: %q", ErrBadAmount, raw)
	}
	return amount, txType, nil
}

// SplitTransferDescription splits a transfer narration into a short
// description and an explanation. Non-transfer narrations pass through whole
// with an empty explanation.
func SplitTransferDescription(raw string) (description, explanation string) {
	raw = strings.TrimSpace(raw)
	if m := transferPattern.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return raw, ""
}

// JoinDescription concatenates the primary description cell with the
// reference/cheque cell when both are present.
func JoinDescription(description, reference string) string {
	description = strings.TrimSpace(description)
	reference = strings.TrimSpace(reference)
	if description != "" && reference != "" {
		return description + " - " + reference
	}
	if description == "" {
		return reference
	}
	return description
}

// Eligible reports whether a delimited row is worth processing at all: at
// least two fields and a non-blank leading field.
func Eligible(fields []string) bool {
	return len(fields) >= 2 && strings.TrimSpace(fields[0]) != ""
}

// footerMarkers identify the trailing summary/disclaimer region of a
// spreadsheet statement. Matched case-insensitively against the leading cell.
var footerMarkers = []string{
	"statement summary",
	"legends",
	"registered office",
	"computer generated",
}

// IsFooter reports whether a leading cell marks the start of the footer
// region. Scanning must never resume after a footer match.
func IsFooter(lead string) bool {
	lead = strings.ToLower(strings.TrimSpace(lead))
	if lead == "" {
		return false
	}
	for _, marker := range footerMarkers {
		if strings.Contains(lead, marker) {
			return true
		}
	}
	return false
}
