package trips

import (
	"cmp"
	"encoding/csv"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/errors"
)

// Column names required in the input header.
const (
	columnName  = "name"
	columnCode  = "code"
	columnCount = "count"
)

// groupingChars are separators stripped from count text before parsing.
// Covers "1,234", "1 234" and "1_234" style grouping.
const groupingChars = ", _"

// LoadFile reads and parses the CSV dataset at path.
// See [Read] for the parsing and ordering contract.
func LoadFile(path string) ([]Station, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open dataset %s", path)
	}
	defer f.Close()
	return Read(f)
}

// Read parses station records from CSV data in r.
//
// The first row must be a header containing the name, code, and count
// columns (case-insensitive, extra columns ignored). The returned slice is
// sorted ascending by count; rows with equal counts keep their source order.
//
// Read returns an error with code MISSING_FIELD when a required column or
// field is absent, MALFORMED_RECORD when a count does not parse as a
// non-negative integer after separator stripping, and EMPTY_DATASET when
// the input has no data rows.
func Read(r io.Reader) ([]Station, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrCodeEmptyDataset, "dataset has no header row")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedRecord, err, "read header")
	}

	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var records []Station
	for row := 2; ; row++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeMalformedRecord, err, "row %d", row)
		}

		rec, err := parseRow(fields, cols, row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyDataset, "dataset has no station rows")
	}

	slices.SortStableFunc(records, func(a, b Station) int {
		return cmp.Compare(a.Count, b.Count)
	})
	return records, nil
}

// columns maps the required column names to their header positions.
type columns struct {
	name, code, count int
}

func indexColumns(header []string) (columns, error) {
	cols := columns{name: -1, code: -1, count: -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case columnName:
			cols.name = i
		case columnCode:
			cols.code = i
		case columnCount:
			cols.count = i
		}
	}

	for _, c := range []struct {
		idx  int
		name string
	}{
		{cols.name, columnName},
		{cols.code, columnCode},
		{cols.count, columnCount},
	} {
		if c.idx < 0 {
			return cols, errors.New(errors.ErrCodeMissingField, "dataset is missing the %q column", c.name)
		}
	}
	return cols, nil
}

func parseRow(fields []string, cols columns, row int) (Station, error) {
	get := func(idx int, name string) (string, error) {
		if idx >= len(fields) || strings.TrimSpace(fields[idx]) == "" {
			return "", errors.New(errors.ErrCodeMissingField, "row %d is missing the %q field", row, name)
		}
		return strings.TrimSpace(fields[idx]), nil
	}

	name, err := get(cols.name, columnName)
	if err != nil {
		return Station{}, err
	}
	code, err := get(cols.code, columnCode)
	if err != nil {
		return Station{}, err
	}
	countText, err := get(cols.count, columnCount)
	if err != nil {
		return Station{}, err
	}

	count, err := parseCount(countText)
	if err != nil {
		return Station{}, errors.Wrap(errors.ErrCodeMalformedRecord, err, "row %d (%s): count %q", row, name, countText)
	}

	return Station{Name: name, Code: code, Count: count}, nil
}

// parseCount strips grouping separators and parses the remainder as a
// non-negative integer.
func parseCount(text string) (int, error) {
	clean := strings.Map(func(r rune) rune {
		if strings.ContainsRune(groupingChars, r) {
			return -1
		}
		return r
	}, text)

	count, err := strconv.Atoi(clean)
	if err != nil {
		return 0, err
	}
	if count < 0 {
		return 0, errors.New(errors.ErrCodeMalformedRecord, "count is negative")
	}
	return count, nil
}
