// Package property aggregates a rental ledger CSV into its disclosure tables.
package property

import (
	"path/filepath"

	"finprep/disclosure-csv/cmd/root"
	"finprep/disclosure-csv/internal/common"
	"finprep/disclosure-csv/internal/frame"
	"finprep/disclosure-csv/internal/models"
	"finprep/disclosure-csv/internal/property"

	"github.com/spf13/cobra"
)

// Cmd represents the property command
var Cmd = &cobra.Command{
	Use:   "property",
	Short: "Aggregate a rental ledger CSV into daily, monthly and occupancy tables",
	Long: `Coerce a short-let rental ledger, convert each row from EUR to GBP using
its statement rate, and write the coerced days, the per-month sums and the
month by day occupancy matrix into the output directory.`,
	Run: propertyFunc,
}

func propertyFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Property command called")
	root.Log.Infof("Input file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output directory: %s", root.SharedFlags.Output)

	table, err := frame.ReadCSV(root.SharedFlags.Input, common.Delimiter)
	if err != nil {
		root.Log.Fatalf("Error reading input file: %v", err)
	}

	days, stats := property.Coerce(table)
	if !stats.Clean() {
		root.Log.Warnf("Coercion applied defaults: %d cells defaulted, %d rows dropped",
			stats.DefaultedCells, stats.DroppedRows)
	}
	if len(days) == 0 {
		root.Log.Warn("No usable ledger rows found in input")
	}

	if err := WriteAggregates(days, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error writing property aggregates: %v", err)
	}
	root.Log.Infof("Wrote property aggregates for %d days to %s",
		len(days), root.SharedFlags.Output)
}

// WriteAggregates writes the full set of property output tables to outDir.
func WriteAggregates(days []models.PropertyDay, outDir string) error {
	if err := common.WriteCSVFile(days, filepath.Join(outDir, "days.csv")); err != nil {
		return err
	}
	if err := common.WriteCSVFile(property.Monthly(days), filepath.Join(outDir, "monthly.csv")); err != nil {
		return err
	}
	return common.WriteOccupancyCSV(property.Occupancy(days), filepath.Join(outDir, "occupancy.csv"))
}
