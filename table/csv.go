package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateFormat string // layout the index column is parsed with (default: "2006-01-02")
	HasHeader  bool   // whether the CSV has a header row (default: true)
	Delimiter  rune   // field delimiter (default: ',')
	SkipRows   int    // number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		DateFormat: "2006-01-02",
		HasHeader:  true,
		Delimiter:  ',',
	}
}

// LoadCSV loads a wide-format table from a CSV file: the first column is
// the index (parsed as a date with DateFormat, falling back to a number),
// every remaining column is one series.
func LoadCSV(filename string, opts *CSVOptions) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a wide-format table from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Table, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if opts.SkipRows > 0 {
		if opts.SkipRows >= len(records) {
			return nil, fmt.Errorf("skip_rows %d leaves no data", opts.SkipRows)
		}
		records = records[opts.SkipRows:]
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv contains no rows")
	}

	width := len(records[0])
	if width < 2 {
		return nil, fmt.Errorf("csv needs an index column and at least one data column")
	}

	var header []string
	if opts.HasHeader {
		header = records[0]
		records = records[1:]
		if len(records) == 0 {
			return nil, fmt.Errorf("csv contains a header but no data rows")
		}
	} else {
		header = make([]string, width)
		for i := range header {
			header[i] = strconv.Itoa(i)
		}
	}

	index, err := parseIndex(records, opts.DateFormat)
	if err != nil {
		return nil, err
	}

	columns := make([]Column, 0, width-1)
	for ci := 1; ci < width; ci++ {
		columns = append(columns, parseColumn(header[ci], records, ci))
	}

	return New(index, columns)
}

func parseIndex(records [][]string, dateFormat string) (Index, error) {
	times := make([]time.Time, 0, len(records))
	allTimes := true
	for _, rec := range records {
		ts, err := time.Parse(dateFormat, rec[0])
		if err != nil {
			allTimes = false
			break
		}
		times = append(times, ts)
	}
	if allTimes {
		return TimeIndex(times), nil
	}

	nums := make([]float64, len(records))
	for i, rec := range records {
		v, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return Index{}, fmt.Errorf("row %d: index value %q is neither a date nor a number", i, rec[0])
		}
		nums[i] = v
	}
	return NumericIndex(nums), nil
}

// parseColumn infers a numeric column when every non-empty cell parses as a
// float; otherwise the column is kept as strings.
func parseColumn(name string, records [][]string, ci int) Column {
	floats := make([]float64, len(records))
	numeric := true
	for i, rec := range records {
		cell := rec[ci]
		if cell == "" {
			floats[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			numeric = false
			break
		}
		floats[i] = v
	}
	if numeric {
		return Column{Name: name, Floats: floats}
	}

	labels := make([]string, len(records))
	for i, rec := range records {
		labels[i] = rec[ci]
	}
	return Column{Name: name, Labels: labels}
}
