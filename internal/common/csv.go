// Package common provides shared CSV input/output helpers used by every
// pipeline command.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"finprep/disclosure-csv/internal/logging"
	"finprep/disclosure-csv/internal/models"

	"github.com/gocarina/gocsv"
)

var log = logging.GetLogger()

// Delimiter is the global CSV delimiter, configurable via the config layer.
var Delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV input and output
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger allows setting a configured logger
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// ReadCSVFile reads typed CSV data into a slice of structs using gocsv.
func ReadCSVFile[TRow any](filePath string) ([]TRow, error) {
	log.Info("Reading CSV file", logging.Field{Key: "file", Value: filePath})

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []TRow
	if err := gocsv.UnmarshalCSV(csvReader(file), &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	log.Info("Successfully read CSV data", logging.Field{Key: "count", Value: len(rows)})
	return rows, nil
}

// WriteCSVFile writes a slice of structs to a CSV file using gocsv, creating
// the parent directory when needed.
func WriteCSVFile[TRow any](rows []TRow, filePath string) error {
	if rows == nil {
		return fmt.Errorf("cannot write nil rows to CSV")
	}

	log.Info("Writing CSV file",
		logging.Field{Key: "file", Value: filePath},
		logging.Field{Key: "count", Value: len(rows)})

	file, err := createOutputFile(filePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	writer := csv.NewWriter(file)
	writer.Comma = Delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteOccupancyCSV writes the occupancy matrix with its fixed 31 day columns.
// The matrix has a dynamic column-per-day layout, so it is written through the
// csv writer directly rather than a struct mapping.
func WriteOccupancyCSV(rows []models.OccupancyRow, filePath string) error {
	log.Info("Writing occupancy matrix",
		logging.Field{Key: "file", Value: filePath},
		logging.Field{Key: "months", Value: len(rows)})

	file, err := createOutputFile(filePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	writer := csv.NewWriter(file)
	writer.Comma = Delimiter

	header := make([]string, 0, 32)
	header = append(header, "month")
	for day := 1; day <= 31; day++ {
		header = append(header, strconv.Itoa(day))
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("error writing occupancy header: %w", err)
	}

	for _, row := range rows {
		record := make([]string, 0, 32)
		record = append(record, row.Month)
		for _, cell := range row.Days {
			record = append(record, strconv.Itoa(cell))
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("error writing occupancy row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func createOutputFile(filePath string) (*os.File, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return nil, fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("error creating CSV file: %w", err)
	}
	return file, nil
}

func csvReader(file *os.File) gocsv.CSVReader {
	reader := csv.NewReader(file)
	reader.Comma = Delimiter
	reader.TrimLeadingSpace = true
	return reader
}
