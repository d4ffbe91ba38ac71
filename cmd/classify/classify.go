// Package classify implements the alert-email classification command.
package classify

import (
	"fmt"

	"finflow/bankfeed/cmd/root"
	"finflow/bankfeed/internal/registry"

	"github.com/spf13/cobra"
)

var (
	sender       string
	subject      string
	registryFile string
)

// Cmd represents the classify command.
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a bank-alert email against the extraction registry",
	RunE:  classifyFunc,
}

func init() {
	Cmd.Flags().StringVar(&sender, "sender", "", "Email sender address")
	Cmd.Flags().StringVar(&subject, "subject", "", "Email subject line")
	Cmd.Flags().StringVar(&registryFile, "registry", "", "Registry YAML file (built-in catalog when empty)")
	_ = Cmd.MarkFlagRequired("sender")
	_ = Cmd.MarkFlagRequired("subject")
}

func classifyFunc(cmd *cobra.Command, args []string) error {
	reg := registry.NewDefault()
	if registryFile == "" && root.Cfg != nil && root.Cfg.Registry.File != "" {
		registryFile = root.Cfg.Registry.File
	}
	if registryFile != "" {
		loaded, err := registry.Load(registryFile)
		if err != nil {
			return err
		}
		reg = loaded
	}

	config, ok := reg.Classify(sender, subject)
	if !ok {
		fmt.Println("no matching extraction config")
		return nil
	}

	fmt.Printf("config: %s\n", config.Name)
	if config.HasFixedTransactionType() {
		fmt.Printf("transaction type: %s (fixed)\n", config.TransactionType)
	} else {
		fmt.Println("transaction type: auto-detect")
	}
	fmt.Printf("skip declined: %t\n", config.SkipDeclined)
	return nil
}
