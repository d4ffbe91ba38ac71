package main

import (
	"fmt"
	"os"

	"finflow/bankfeed/cmd/classify"
	"finflow/bankfeed/cmd/match"
	"finflow/bankfeed/cmd/root"
	"finflow/bankfeed/cmd/statement"
)

func init() {
	root.Cmd.AddCommand(statement.Cmd)
	root.Cmd.AddCommand(match.Cmd)
	root.Cmd.AddCommand(classify.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
