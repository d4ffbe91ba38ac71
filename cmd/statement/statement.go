// Package statement implements the statement-to-drafts conversion command.
package statement

import (
	"bytes"
	"fmt"
	"os"

	"finflow/bankfeed/cmd/root"
	"finflow/bankfeed/internal/common"
	"finflow/bankfeed/internal/factory"
	"finflow/bankfeed/internal/logging"
	"finflow/bankfeed/internal/models"
	"finflow/bankfeed/internal/parser"

	"github.com/spf13/cobra"
)

var (
	inputFile    string
	outputFile   string
	password     string
	accountID    string
	statementRef string
)

// Cmd represents the statement command.
var Cmd = &cobra.Command{
	Use:   "statement",
	Short: "Parse a bank statement into transaction drafts",
	Long: `Detect the statement container format (delimited text, xlsx or legacy
xls), parse it into transaction drafts, and write the drafts as CSV.`,
	RunE: statementFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Statement file to parse")
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "drafts.csv", "Draft CSV output file")
	Cmd.Flags().StringVarP(&password, "password", "p", "", "Password for protected spreadsheets")
	Cmd.Flags().StringVar(&accountID, "account", "", "Account identifier carried into each draft")
	Cmd.Flags().StringVar(&statementRef, "statement-ref", "", "Statement reference carried into each draft")
	_ = Cmd.MarkFlagRequired("input")
}

func statementFunc(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(inputFile) // #nosec G304 -- input path comes from the operator
	if err != nil {
		return fmt.Errorf("reading statement: %w", err)
	}

	kind := parser.Detect(data, password != "")
	p, err := factory.NewWithHeaderOffset(kind, root.Log, root.Cfg.Parsers.Spreadsheet.HeaderOffset)
	if err != nil {
		return err
	}
	root.Log.Info("detected statement format",
		logging.Field{Key: "format", Value: string(kind)},
		logging.Field{Key: "file", Value: inputFile})

	drafts, err := p.Parse(bytes.NewReader(data), parser.Options{
		Password: password,
		Context: models.StatementContext{
			AccountID:    accountID,
			StatementRef: statementRef,
		},
	})
	if err != nil {
		return err
	}

	if err := common.WriteDraftsToCSV(drafts, outputFile); err != nil {
		return err
	}
	root.Log.Info("wrote transaction drafts",
		logging.Field{Key: "count", Value: len(drafts)},
		logging.Field{Key: "file", Value: outputFile})
	return nil
}
