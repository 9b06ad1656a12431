// Package payroll aggregates a payroll statement CSV into its disclosure tables.
package payroll

import (
	"path/filepath"

	"finprep/disclosure-csv/cmd/root"
	"finprep/disclosure-csv/internal/common"
	"finprep/disclosure-csv/internal/frame"
	"finprep/disclosure-csv/internal/models"
	"finprep/disclosure-csv/internal/payroll"

	"github.com/spf13/cobra"
)

// Cmd represents the payroll command
var Cmd = &cobra.Command{
	Use:   "payroll",
	Short: "Aggregate a payroll CSV into monthly, rolling and waterfall tables",
	Long: `Coerce a raw payroll export into the fixed eleven-field shape, then write
the coerced periods, the per-month sums, the trailing twelve-month totals and
the deduction waterfall of the latest period into the output directory.`,
	Run: payrollFunc,
}

func payrollFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Payroll command called")
	root.Log.Infof("Input file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output directory: %s", root.SharedFlags.Output)

	table, err := frame.ReadCSV(root.SharedFlags.Input, common.Delimiter)
	if err != nil {
		root.Log.Fatalf("Error reading input file: %v", err)
	}

	periods, stats := payroll.Coerce(table)
	if !stats.Clean() {
		root.Log.Warnf("Coercion applied defaults: %d cells defaulted, %d rows dropped",
			stats.DefaultedCells, stats.DroppedRows)
	}
	if len(periods) == 0 {
		root.Log.Warn("No usable payroll periods found in input")
	}

	if err := WriteAggregates(periods, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error writing payroll aggregates: %v", err)
	}
	root.Log.Infof("Wrote payroll aggregates for %d periods to %s",
		len(periods), root.SharedFlags.Output)
}

// WriteAggregates writes the full set of payroll output tables to outDir.
func WriteAggregates(periods []models.PayrollPeriod, outDir string) error {
	if err := common.WriteCSVFile(periods, filepath.Join(outDir, "periods.csv")); err != nil {
		return err
	}
	if err := common.WriteCSVFile(payroll.Monthly(periods), filepath.Join(outDir, "monthly.csv")); err != nil {
		return err
	}

	totals := []models.PayrollTotals{payroll.Rolling12M(periods)}
	if err := common.WriteCSVFile(totals, filepath.Join(outDir, "rolling12m.csv")); err != nil {
		return err
	}

	if len(periods) > 0 {
		latest := periods[len(periods)-1]
		if gap := payroll.NetDiscrepancy(latest); !gap.IsZero() {
			root.Log.Warnf("Stated net differs from implied net by %s for period ending %s",
				gap.String(), latest.PeriodEnd.MonthKey())
		}
		steps := payroll.Waterfall(latest)
		if err := common.WriteCSVFile(steps, filepath.Join(outDir, "waterfall.csv")); err != nil {
			return err
		}
	}
	return nil
}
