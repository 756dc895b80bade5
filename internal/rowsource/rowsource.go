// Package rowsource reads delimited entity files into header-keyed rows. A
// missing or empty file is not an error: the source warns and yields zero
// rows so the migration keeps moving.
package rowsource

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/rpattn/seedloader/internal/domain"
	"github.com/rpattn/seedloader/internal/report"
)

// ErrUnsupportedFormat is returned when a source file extension is not supported.
var ErrUnsupportedFormat = errors.New("unsupported file format")

var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

// Source turns entity files into row sequences.
type Source struct {
	reporter report.Reporter
}

// New creates a Source that reports degradations to the given reporter.
func New(reporter report.Reporter) *Source {
	return &Source{reporter: reporter}
}

// Read parses the file at path into rows keyed by the header line. Each field
// is whitespace-trimmed and blank physical lines are skipped; row order in the
// file is preserved. Re-reading the same path is safe and yields the same
// rows. When a .csv path is absent but an .xlsx sibling exists, the sibling is
// read instead. A missing, empty, header-only, or unreadable file degrades to
// a warning and an empty slice. Only an unsupported extension is an error,
// since that is a configuration problem rather than a data problem.
func (s *Source) Read(path string) ([]domain.Row, error) {
	payload, err := os.ReadFile(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		if alt := excelSibling(path); alt != "" {
			path = alt
			payload, err = os.ReadFile(path)
		}
	}
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.reporter.Warnf("source file %s does not exist, skipping", path)
		} else {
			s.reporter.Warnf("source file %s could not be read: %v", path, err)
		}
		return nil, nil
	}

	var records [][]string
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		records, err = parseCSV(payload)
	case ".xlsx":
		records, err = parseExcel(payload)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		s.reporter.Warnf("source file %s could not be parsed: %v", path, err)
		return nil, nil
	}

	headers, dataRows := normalizeTable(records)
	if len(headers) == 0 {
		s.reporter.Warnf("source file %s is empty, skipping", path)
		return nil, nil
	}
	if len(dataRows) == 0 {
		s.reporter.Warnf("source file %s has no data rows, skipping", path)
		return nil, nil
	}

	rows := make([]domain.Row, 0, len(dataRows))
	for _, raw := range dataRows {
		raw = padRow(raw, len(headers))
		row := make(domain.Row, len(headers))
		for idx, header := range headers {
			row[header] = strings.TrimSpace(raw[idx])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// excelSibling returns the .xlsx path next to a missing .csv path, or "" when
// there is none.
func excelSibling(path string) string {
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		return ""
	}
	alt := strings.TrimSuffix(path, filepath.Ext(path)) + ".xlsx"
	if _, err := os.Stat(alt); err != nil {
		return ""
	}
	return alt
}

func parseCSV(payload []byte) ([][]string, error) {
	reader := bufio.NewReader(bytes.NewReader(payload))
	if prefix, err := reader.Peek(len(byteOrderMark)); err == nil && bytes.Equal(prefix, byteOrderMark) {
		_, _ = reader.Discard(len(byteOrderMark))
	}

	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return records, nil
}

func parseExcel(payload []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from xlsx: %w", err)
	}
	return rows, nil
}

// normalizeTable splits raw records into a trimmed header row and the
// non-blank data rows that follow it.
func normalizeTable(records [][]string) ([]string, [][]string) {
	var headers []string
	var dataRows [][]string
	for _, row := range records {
		if isBlankRow(row) {
			continue
		}
		if headers == nil {
			headers = make([]string, len(row))
			for idx, cell := range row {
				headers[idx] = strings.TrimSpace(cell)
			}
			continue
		}
		dataRows = append(dataRows, row)
	}
	return headers, dataRows
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func padRow(row []string, length int) []string {
	if len(row) >= length {
		return row[:length]
	}
	padded := make([]string, length)
	copy(padded, row)
	return padded
}
