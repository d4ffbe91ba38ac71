// Package models provides the data structures shared by the parsers, the
// matcher and the extraction registry.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionDraft is the normalized, not-yet-persisted representation of one
// parsed financial transaction. Drafts are created per parsed row and handed
// off immediately; the core keeps no draft storage.
//
// Invariants enforced by DraftBuilder: Amount > 0 and Type is resolved to
// TypeDebit or TypeCredit before a draft is emitted.
type TransactionDraft struct {
	ID           string
	Date         time.Time
	Amount       decimal.Decimal
	Type         string
	Description  string
	Explanation  string // populated only by the transfer-split rule of the text parser
	AccountID    string
	StatementRef string
}

// IsDebit reports whether the draft records outgoing money.
func (d *TransactionDraft) IsDebit() bool {
	return d.Type == TypeDebit
}

// IsCredit reports whether the draft records incoming money.
func (d *TransactionDraft) IsCredit() bool {
	return d.Type == TypeCredit
}

// StatementContext carries the source linkage of an uploaded statement. It is
// opaque to the parsers and copied unmodified into every emitted draft.
type StatementContext struct {
	AccountID    string
	StatementRef string
}
