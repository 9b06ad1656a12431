// Package spending normalizes a spending export into canonical transactions.
package spending

import (
	"finprep/disclosure-csv/cmd/root"
	"finprep/disclosure-csv/internal/classify"
	"finprep/disclosure-csv/internal/common"
	"finprep/disclosure-csv/internal/frame"
	"finprep/disclosure-csv/internal/logging"
	"finprep/disclosure-csv/internal/schema"
	"finprep/disclosure-csv/internal/sniff"
	"finprep/disclosure-csv/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the spending command
var Cmd = &cobra.Command{
	Use:   "spending",
	Short: "Normalize and categorize a spending CSV",
	Long: `Normalize a bank or card export with arbitrary column names into the
canonical transaction shape and categorize each row using the keyword ruleset.`,
	Run: spendingFunc,
}

func spendingFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Spending command called")
	root.Log.Infof("Input file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output file: %s", root.SharedFlags.Output)

	table, err := frame.ReadCSV(root.SharedFlags.Input, common.Delimiter)
	if err != nil {
		root.Log.Fatalf("Error reading input file: %v", err)
	}

	if kind := sniff.Classify(table); kind != sniff.KindSpending {
		root.Log.Fatalf("Input does not look like a spending export (detected: %s)", kind)
	}

	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	mapper := schema.NewMapper(
		LoadClassifier(logger),
		root.Cfg.Classification.DefaultCategory,
		logger,
	)

	transactions, stats, err := mapper.Normalize(table)
	if err != nil {
		root.Log.Fatalf("Could not normalize %s: %v", root.SharedFlags.Input, err)
	}
	if !stats.Clean() {
		root.Log.Warnf("Normalization applied defaults: %d cells defaulted, %d rows dropped",
			stats.DefaultedCells, stats.DroppedRows)
	}

	if err := common.WriteCSVFile(transactions, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error writing transactions: %v", err)
	}
	root.Log.Infof("Wrote %d transactions to %s", len(transactions), root.SharedFlags.Output)
}

// LoadClassifier builds a classifier from the configured ruleset. A missing
// or malformed ruleset degrades to a classifier with no rules, so every
// vendor resolves to the default category and the conversion still succeeds.
func LoadClassifier(logger logging.Logger) *classify.Classifier {
	ruleStore := store.NewRuleStore(root.Cfg.Classification.CategoriesFile)
	rules, err := ruleStore.LoadRules()
	if err != nil {
		logger.WithError(err).Warn("Category ruleset unavailable, using default category only")
		rules = nil
	}
	return classify.New(rules, logger)
}
