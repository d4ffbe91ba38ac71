// Package match implements the account resolution command.
package match

import (
	"fmt"

	"finflow/bankfeed/cmd/root"
	"finflow/bankfeed/internal/common"
	"finflow/bankfeed/internal/matcher"

	"github.com/spf13/cobra"
)

var (
	accountsFile string
	hint         string
	rawText      string
	description  string
)

// Cmd represents the match command.
var Cmd = &cobra.Command{
	Use:   "match",
	Short: "Resolve transaction context to an account",
	Long: `Load account profiles from CSV and run the weighted fuzzy matcher
against the given hint, raw text and description signals.`,
	RunE: matchFunc,
}

func init() {
	Cmd.Flags().StringVar(&accountsFile, "accounts", "", "Account profiles CSV file")
	Cmd.Flags().StringVar(&hint, "hint", "", "Account hint from upstream extraction")
	Cmd.Flags().StringVar(&rawText, "text", "", "Raw transaction text")
	Cmd.Flags().StringVar(&description, "description", "", "Transaction description")
	_ = Cmd.MarkFlagRequired("accounts")
}

func matchFunc(cmd *cobra.Command, args []string) error {
	accounts, err := common.ReadAccountProfiles(accountsFile)
	if err != nil {
		return err
	}

	result := matcher.New(root.Log).FindBestMatch(accounts, hint, rawText, description)
	if result.Account == nil {
		fmt.Println("no candidate accounts")
		return nil
	}

	fmt.Printf("account: %s (%s)\nscore: %d\nconfident: %t\n",
		result.Account.Name, result.Account.ID, result.Score, result.IsValid())
	return nil
}
