package timeseries

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn    string   // Column name for dates (optional)
	ValueColumn   string   // Column name for values (default: "y")
	DateFormat    string   // Date format (default: "2006-01-02")
	HasHeader     bool     // Whether CSV has header row (default: true)
	Delimiter     rune     // Field delimiter (default: ',')
	SkipRows      int      // Number of rows to skip at start
	MissingValues []string // Tokens parsed as missing (default: "", "NA", "NaN", "null")
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn:   "y",
		DateFormat:    "2006-01-02",
		HasHeader:     true,
		Delimiter:     ',',
		MissingValues: []string{"", "NA", "NaN", "null"},
	}
}

// LoadCSV loads a time series from a CSV file. Cells matching one of the
// configured missing tokens are kept in place as missing observations
// rather than dropped, so the seasonal alignment of the series survives
// gaps in the data.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a time series from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	valueIdx, dateIdx := -1, -1

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}

		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch {
			case h == opts.ValueColumn || (opts.ValueColumn == "" && (h == "y" || h == "value" || h == "Value")):
				valueIdx = i
			case opts.DateColumn != "" && h == opts.DateColumn:
				dateIdx = i
			case h == "ds" || h == "date" || h == "Date" || h == "Month" || h == "Year":
				if dateIdx == -1 {
					dateIdx = i
				}
			}
		}

		// Default to last column if the value column was not found
		if valueIdx == -1 {
			valueIdx = len(header) - 1
		}
	} else {
		// No header - assume date,value layout
		dateIdx = 0
		valueIdx = 1
	}

	var values []float64
	var timestamps []time.Time
	present := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if valueIdx < 0 || valueIdx >= len(record) {
			continue
		}

		valStr := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		if isMissingToken(valStr, opts.MissingValues) {
			values = append(values, math.NaN())
		} else {
			val, err := strconv.ParseFloat(valStr, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value %q: %w", valStr, err)
			}
			values = append(values, val)
			present++
		}

		if dateIdx >= 0 && dateIdx < len(record) {
			dateStr := strings.TrimSpace(strings.Trim(record[dateIdx], "\""))
			if ts, ok := parseDate(dateStr, opts.DateFormat); ok {
				timestamps = append(timestamps, ts)
			}
		}
	}

	if present == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	if len(timestamps) == len(values) {
		return &Series{
			Timestamps: timestamps,
			Values:     values,
		}, nil
	}
	return New(values), nil
}

func isMissingToken(s string, tokens []string) bool {
	for _, t := range tokens {
		if s == t {
			return true
		}
	}
	return false
}

func parseDate(s, preferred string) (time.Time, bool) {
	formats := []string{
		preferred,
		"2006-01-02",
		"2006-01-02T15:04:05",
		"2006/01/02",
		"01/02/2006",
		"02-Jan-2006",
		"2006",
	}
	for _, f := range formats {
		if f == "" {
			continue
		}
		if ts, err := time.Parse(f, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// LoadCSVColumn loads a specific column from a CSV file as a series.
func LoadCSVColumn(filename string, column string) (*Series, error) {
	opts := DefaultCSVOptions()
	opts.ValueColumn = column
	return LoadCSV(filename, opts)
}

// SaveCSV saves a time series to a CSV file. Missing observations are
// written as "NA".
func SaveCSV(series *Series, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	withDates := len(series.Timestamps) == len(series.Values)
	if withDates {
		if _, err := writer.WriteString("ds,y\n"); err != nil {
			return err
		}
	} else {
		if _, err := writer.WriteString("index,y\n"); err != nil {
			return err
		}
	}

	for i, v := range series.Values {
		var label string
		if withDates {
			label = series.Timestamps[i].Format("2006-01-02")
		} else {
			label = strconv.Itoa(i)
		}
		val := "NA"
		if !math.IsNaN(v) {
			val = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if _, err := fmt.Fprintf(writer, "%s,%s\n", label, val); err != nil {
			return err
		}
	}
	return nil
}
