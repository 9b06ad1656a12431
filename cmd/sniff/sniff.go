// Package sniff reports the detected kind of every CSV in a directory.
package sniff

import (
	"fmt"
	"path/filepath"
	"sort"

	"finprep/disclosure-csv/cmd/root"
	"finprep/disclosure-csv/internal/common"
	"finprep/disclosure-csv/internal/frame"
	"finprep/disclosure-csv/internal/sniff"

	"github.com/spf13/cobra"
)

// Cmd represents the sniff command
var Cmd = &cobra.Command{
	Use:   "sniff",
	Short: "Detect the kind of every CSV file in a directory",
	Long: `Inspect the column headers of every CSV file in a directory and report
whether each one looks like a spending, payroll or property export. Useful for
checking how the batch command would route a directory before running it.`,
	Run: sniffFunc,
}

func sniffFunc(cmd *cobra.Command, args []string) {
	dir := root.SharedFlags.Dir
	if dir == "" {
		dir = root.Cfg.Data.InputDir
	}
	if dir == "" {
		root.Log.Fatal("No input directory given (use --dir)")
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		root.Log.Fatalf("Error listing directory: %v", err)
	}
	if len(files) == 0 {
		root.Log.Warnf("No CSV files found in %s", dir)
		return
	}
	sort.Strings(files)

	for _, file := range files {
		table, err := frame.ReadCSV(file, common.Delimiter)
		if err != nil {
			root.Log.Warnf("Skipping %s: %v", file, err)
			continue
		}
		fmt.Printf("%s\t%s\n", filepath.Base(file), sniff.Classify(table))
	}
}
