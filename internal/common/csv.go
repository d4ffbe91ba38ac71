// Package common provides the CSV input/output shared by the CLI commands.
package common

import (
	"fmt"
	"os"

	"finflow/bankfeed/internal/dateutils"
	"finflow/bankfeed/internal/models"

	"github.com/gocarina/gocsv"
)

// draftRecord is the flat CSV projection of a transaction draft.
type draftRecord struct {
	ID           string `csv:"ID"`
	Date         string `csv:"Date"`
	Amount       string `csv:"Amount"`
	Type         string `csv:"Type"`
	Description  string `csv:"Description"`
	Explanation  string `csv:"Explanation"`
	AccountID    string `csv:"AccountID"`
	StatementRef string `csv:"StatementRef"`
}

// WriteDraftsToCSV writes drafts to a CSV file in parse order.
func WriteDraftsToCSV(drafts []models.TransactionDraft, csvFile string) error {
	records := make([]*draftRecord, 0, len(drafts))
	for i := range drafts {
		d := &drafts[i]
		records = append(records, &draftRecord{
			ID:           d.ID,
			Date:         d.Date.Format(dateutils.StatementLayout),
			Amount:       d.Amount.StringFixed(2),
			Type:         d.Type,
			Description:  d.Description,
			Explanation:  d.Explanation,
			AccountID:    d.AccountID,
			StatementRef: d.StatementRef,
		})
	}

	f, err := os.Create(csvFile) // #nosec G304 -- output path comes from the operator
	if err != nil {
		return fmt.Errorf("creating draft CSV: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := gocsv.MarshalFile(&records, f); err != nil {
		return fmt.Errorf("writing draft CSV: %w", err)
	}
	return nil
}

// ReadAccountProfiles loads account profiles from a CSV file with ID, Name,
// AccountType, Institution, AccountNumber, Keywords and Aliases columns.
func ReadAccountProfiles(path string) ([]models.AccountProfile, error) {
	f, err := os.Open(path) // #nosec G304 -- input path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("opening accounts CSV: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var records []*models.AccountProfile
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	accounts := make([]models.AccountProfile, 0, len(records))
	for _, r := range records {
		accounts = append(accounts, *r)
	}
	return accounts, nil
}
