// Package batch routes every CSV in a directory through its matching pipeline.
package batch

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"finprep/disclosure-csv/cmd/payroll"
	"finprep/disclosure-csv/cmd/property"
	"finprep/disclosure-csv/cmd/root"
	"finprep/disclosure-csv/cmd/spending"
	"finprep/disclosure-csv/internal/common"
	"finprep/disclosure-csv/internal/frame"
	"finprep/disclosure-csv/internal/logging"
	"finprep/disclosure-csv/internal/schema"
	"finprep/disclosure-csv/internal/sniff"

	payrollagg "finprep/disclosure-csv/internal/payroll"
	propertyagg "finprep/disclosure-csv/internal/property"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Sniff and process every CSV file in a directory",
	Long: `Detect the kind of every CSV file in a directory and route each one
through the matching pipeline: spending files are normalized and categorized,
payroll and property files are aggregated. Files are processed concurrently;
a file that cannot be interpreted is logged and skipped, never fatal to the
rest of the batch.`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	inDir := root.SharedFlags.Dir
	if inDir == "" {
		inDir = root.Cfg.Data.InputDir
	}
	outDir := root.SharedFlags.Output
	if outDir == "" {
		outDir = root.Cfg.Data.OutputDir
	}
	if inDir == "" || outDir == "" {
		root.Log.Fatal("Batch requires an input directory (--dir) and an output directory (--output)")
	}

	files, err := filepath.Glob(filepath.Join(inDir, "*.csv"))
	if err != nil {
		root.Log.Fatalf("Error listing directory: %v", err)
	}
	if len(files) == 0 {
		root.Log.Warnf("No CSV files found in %s", inDir)
		return
	}
	sort.Strings(files)

	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	mapper := schema.NewMapper(
		spending.LoadClassifier(logger),
		root.Cfg.Classification.DefaultCategory,
		logger,
	)

	// Each file is an independent immutable table, so the pipelines can run
	// data-parallel without synchronization.
	var g errgroup.Group
	g.SetLimit(root.Cfg.Batch.Workers)

	for _, file := range files {
		file := file
		g.Go(func() error {
			if err := processFile(file, outDir, mapper); err != nil {
				root.Log.Warnf("Skipping %s: %v", file, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		root.Log.Fatalf("Batch processing failed: %v", err)
	}
	root.Log.Infof("Batch processing of %d files completed", len(files))
}

func processFile(file, outDir string, mapper *schema.Mapper) error {
	table, err := frame.ReadCSV(file, common.Delimiter)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	kind := sniff.Classify(table)
	root.Log.Infof("Processing %s as %s", filepath.Base(file), kind)

	switch kind {
	case sniff.KindSpending:
		transactions, stats, err := mapper.Normalize(table)
		if err != nil {
			return err
		}
		if !stats.Clean() {
			root.Log.Warnf("%s: %d cells defaulted, %d rows dropped",
				filepath.Base(file), stats.DefaultedCells, stats.DroppedRows)
		}
		return common.WriteCSVFile(transactions, filepath.Join(outDir, base+"-transactions.csv"))

	case sniff.KindPayroll:
		periods, _ := payrollagg.Coerce(table)
		return payroll.WriteAggregates(periods, filepath.Join(outDir, base))

	case sniff.KindProperty:
		days, _ := propertyagg.Coerce(table)
		return property.WriteAggregates(days, filepath.Join(outDir, base))

	default:
		return fmt.Errorf("unrecognized table shape")
	}
}
