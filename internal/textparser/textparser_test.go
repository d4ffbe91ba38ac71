package textparser

import (
	"strings"
	"testing"

	"finflow/bankfeed/internal/logging"
	"finflow/bankfeed/internal/models"
	"finflow/bankfeed/internal/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStatement = `Date,Narration,Chq/Ref No,Value Dt,Withdrawal Amt,Deposit Amt,Closing Balance
20 Jan 2024,TRANSFER TO 12345 - UPI/XYZ/NOTE,REF001,20 Jan 2024,,"1,500.00","10,000.00"
21 Jan 2024,POS PURCHASE GROCERY STORE,REF002,21 Jan 2024,"2,500.00",,"7,500.00"
22 Jan 2024,NO AMOUNT ROW,REF003,22 Jan 2024,-,-,"7,500.00"
bad date,SHOULD BE SKIPPED,REF004,22 Jan 2024,10.00,,"7,490.00"
,BLANK LEADING FIELD,REF005,22 Jan 2024,10.00,,"7,480.00"
`

func TestParseStatement(t *testing.T) {
	log := logging.NewMockLogger()
	p := New(log)

	ctx := models.StatementContext{AccountID: "acct-1", StatementRef: "stmt-9"}
	drafts, err := p.Parse(strings.NewReader(sampleStatement), parser.Options{Context: ctx})
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	transfer := drafts[0]
	assert.Equal(t, "TRANSFER TO 12345", transfer.Description)
	assert.Equal(t, "UPI/XYZ/NOTE", transfer.Explanation)
	assert.Equal(t, models.TypeCredit, transfer.Type)
	assert.Equal(t, "1500.00", transfer.Amount.StringFixed(2))
	assert.Equal(t, "20 Jan 2024", transfer.Date.Format("02 Jan 2006"))
	assert.Equal(t, "acct-1", transfer.AccountID)
	assert.Equal(t, "stmt-9", transfer.StatementRef)
	assert.NotEmpty(t, transfer.ID)

	purchase := drafts[1]
	assert.Equal(t, "POS PURCHASE GROCERY STORE", purchase.Description)
	assert.Empty(t, purchase.Explanation)
	assert.Equal(t, models.TypeDebit, purchase.Type)
	assert.Equal(t, "2500.00", purchase.Amount.StringFixed(2))
}

func TestParseLogsSkippedRows(t *testing.T) {
	log := logging.NewMockLogger()
	p := New(log)

	drafts, err := p.Parse(strings.NewReader(sampleStatement), parser.Options{})
	require.NoError(t, err)
	assert.Len(t, drafts, 2)

	// Header, no-amount row, bad date and blank leading field all skip with a
	// logged reason.
	warns := log.EntriesByLevel("WARN")
	assert.GreaterOrEqual(t, len(warns), 4)
}

func TestParseEmptyInput(t *testing.T) {
	p := New(logging.NewMockLogger())
	drafts, err := p.Parse(strings.NewReader(""), parser.Options{})
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestParseRowLevelFailuresNeverAbort(t *testing.T) {
	input := "20 Jan 2024,ONLY TWO FIELDS\n21 Jan 2024,VALID ROW,REF,21 Jan 2024,,500.00\n"
	p := New(logging.NewMockLogger())
	drafts, err := p.Parse(strings.NewReader(input), parser.Options{})
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "VALID ROW", drafts[0].Description)
	assert.Equal(t, models.TypeCredit, drafts[0].Type)
}
