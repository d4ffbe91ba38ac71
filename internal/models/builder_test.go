package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCompleteDraft(t *testing.T) {
	date := time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)
	draft, err := NewDraftBuilder().
		WithDate(date).
		WithAmount(decimal.NewFromFloat(1500)).
		WithDescription("TRANSFER TO 12345").
		WithExplanation("UPI/XYZ/NOTE").
		WithContext(StatementContext{AccountID: "acct-1", StatementRef: "stmt-7"}).
		AsCredit().
		Build()
	require.NoError(t, err)

	assert.NotEmpty(t, draft.ID)
	assert.Equal(t, date, draft.Date)
	assert.Equal(t, "1500", draft.Amount.String())
	assert.Equal(t, "TRANSFER TO 12345", draft.Description)
	assert.Equal(t, "UPI/XYZ/NOTE", draft.Explanation)
	assert.Equal(t, "acct-1", draft.AccountID)
	assert.Equal(t, "stmt-7", draft.StatementRef)
	assert.True(t, draft.IsCredit())
	assert.False(t, draft.IsDebit())
}

func TestBuildAssignsUniqueIDs(t *testing.T) {
	build := func() TransactionDraft {
		draft, err := NewDraftBuilder().
			WithDate(time.Now()).
			WithAmount(decimal.NewFromInt(1)).
			AsDebit().
			Build()
		require.NoError(t, err)
		return draft
	}
	assert.NotEqual(t, build().ID, build().ID)
}

func TestBuildRejectsInvalidDrafts(t *testing.T) {
	date := time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		builder *DraftBuilder
	}{
		{"missing date", NewDraftBuilder().WithAmount(decimal.NewFromInt(10)).AsDebit()},
		{"zero amount", NewDraftBuilder().WithDate(date).AsDebit()},
		{"negative amount", NewDraftBuilder().WithDate(date).WithAmount(decimal.NewFromInt(-5)).AsCredit()},
		{"unresolved type", NewDraftBuilder().WithDate(date).WithAmount(decimal.NewFromInt(10))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			assert.Error(t, err)
		})
	}
}

func TestBuilderErrorSticks(t *testing.T) {
	_, err := NewDraftBuilder().
		WithDate(time.Time{}).
		WithAmount(decimal.NewFromInt(10)).
		AsDebit().
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date")
}

func TestWithTypeRejectsUnknownDirection(t *testing.T) {
	_, err := NewDraftBuilder().
		WithDate(time.Now()).
		WithAmount(decimal.NewFromInt(10)).
		WithType("REFUND").
		Build()
	assert.Error(t, err)
}
