package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"finflow/bankfeed/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDraftsToCSV(t *testing.T) {
	drafts := []models.TransactionDraft{
		{
			ID:           "draft-1",
			Date:         time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
			Amount:       decimal.NewFromFloat(1500),
			Type:         models.TypeCredit,
			Description:  "TRANSFER TO 12345",
			Explanation:  "UPI/XYZ/NOTE",
			AccountID:    "acct-1",
			StatementRef: "stmt-1",
		},
		{
			ID:     "draft-2",
			Date:   time.Date(2024, time.January, 21, 0, 0, 0, 0, time.UTC),
			Amount: decimal.RequireFromString("2500.5"),
			Type:   models.TypeDebit,
		},
	}

	path := filepath.Join(t.TempDir(), "drafts.csv")
	require.NoError(t, WriteDraftsToCSV(drafts, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "ID,Date,Amount,Type,Description,Explanation,AccountID,StatementRef")
	assert.Contains(t, content, "draft-1,20 Jan 2024,1500.00,CREDIT,TRANSFER TO 12345,UPI/XYZ/NOTE,acct-1,stmt-1")
	assert.Contains(t, content, "draft-2,21 Jan 2024,2500.50,DEBIT")
}

func TestReadAccountProfiles(t *testing.T) {
	content := `ID,Name,AccountType,Institution,AccountNumber,Keywords,Aliases
acct-1,Salary Account,SAVINGS,HDFC Bank,000401567890,"salary, payroll",hdfc savings
acct-2,Travel Card,CREDIT_CARD,ICICI Bank,4375XXXX,travel,
`
	path := filepath.Join(t.TempDir(), "accounts.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	accounts, err := ReadAccountProfiles(path)
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	assert.Equal(t, "acct-1", accounts[0].ID)
	assert.Equal(t, "HDFC Bank", accounts[0].Institution)
	assert.Equal(t, []string{"salary", "payroll"}, accounts[0].KeywordList())
	assert.Equal(t, []string{"hdfc savings"}, accounts[0].AliasList())

	assert.Equal(t, "Travel Card", accounts[1].Name)
	assert.Nil(t, accounts[1].AliasList())
}

func TestReadAccountProfilesMissingFile(t *testing.T) {
	_, err := ReadAccountProfiles(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
