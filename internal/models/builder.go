package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DraftBuilder provides a fluent API for constructing transaction drafts.
// The first builder error sticks and is reported by Build.
type DraftBuilder struct {
	draft TransactionDraft
	err   error
}

// NewDraftBuilder creates a builder with an empty draft.
func NewDraftBuilder() *DraftBuilder {
	return &DraftBuilder{
		draft: TransactionDraft{Amount: decimal.Zero},
	}
}

// WithDate sets the transaction date.
func (b *DraftBuilder) WithDate(date time.Time) *DraftBuilder {
	if b.err != nil {
		return b
	}
	if date.IsZero() {
		b.err = errors.New("date cannot be zero")
		return b
	}
	b.draft.Date = date
	return b
}

// WithAmount sets the transaction amount.
func (b *DraftBuilder) WithAmount(amount decimal.Decimal) *DraftBuilder {
	if b.err != nil {
		return b
	}
	b.draft.Amount = amount
	return b
}

// WithDescription sets the description.
func (b *DraftBuilder) WithDescription(description string) *DraftBuilder {
	if b.err != nil {
		return b
	}
	b.draft.Description = description
	return b
}

// WithExplanation sets the optional explanation.
func (b *DraftBuilder) WithExplanation(explanation string) *DraftBuilder {
	if b.err != nil {
		return b
	}
	b.draft.Explanation = explanation
	return b
}

// WithContext copies the statement linkage into the draft.
func (b *DraftBuilder) WithContext(ctx StatementContext) *DraftBuilder {
	if b.err != nil {
		return b
	}
	b.draft.AccountID = ctx.AccountID
	b.draft.StatementRef = ctx.StatementRef
	return b
}

// AsDebit marks the draft as outgoing money.
func (b *DraftBuilder) AsDebit() *DraftBuilder {
	if b.err != nil {
		return b
	}
	b.draft.Type = TypeDebit
	return b
}

// AsCredit marks the draft as incoming money.
func (b *DraftBuilder) AsCredit() *DraftBuilder {
	if b.err != nil {
		return b
	}
	b.draft.Type = TypeCredit
	return b
}

// WithType sets the direction from an explicit TypeDebit/TypeCredit value.
func (b *DraftBuilder) WithType(txType string) *DraftBuilder {
	if b.err != nil {
		return b
	}
	switch txType {
	case TypeDebit, TypeCredit:
		b.draft.Type = txType
	default:
		b.err = errors.New("transaction type must be DEBIT or CREDIT")
	}
	return b
}

// Build validates the draft invariants and returns the draft. A missing ID is
// assigned here.
func (b *DraftBuilder) Build() (TransactionDraft, error) {
	if b.err != nil {
		return TransactionDraft{}, b.err
	}
	if b.draft.Date.IsZero() {
		return TransactionDraft{}, errors.New("draft requires a date")
	}
	if !b.draft.Amount.IsPositive() {
		return TransactionDraft{}, errors.New("draft amount must be positive")
	}
	if b.draft.Type != TypeDebit && b.draft.Type != TypeCredit {
		return TransactionDraft{}, errors.New("draft requires a resolved transaction type")
	}
	if b.draft.ID == "" {
		b.draft.ID = uuid.NewString()
	}
	return b.draft, nil
}
