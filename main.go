// Package main provides the entry point for the disclosure-csv CLI application.
package main

import (
	"os"

	"finprep/disclosure-csv/cmd/batch"
	"finprep/disclosure-csv/cmd/payroll"
	"finprep/disclosure-csv/cmd/property"
	"finprep/disclosure-csv/cmd/root"
	"finprep/disclosure-csv/cmd/sniff"
	"finprep/disclosure-csv/cmd/spending"
)

func main() {
	root.Init()

	root.Cmd.AddCommand(spending.Cmd)
	root.Cmd.AddCommand(payroll.Cmd)
	root.Cmd.AddCommand(property.Cmd)
	root.Cmd.AddCommand(sniff.Cmd)
	root.Cmd.AddCommand(batch.Cmd)

	if err := root.Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
