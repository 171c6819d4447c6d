package vocab

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row is one word entry parsed from an import file. Columns are, in order:
// text, translation, language, notes. Only text is required.
type Row struct {
	Text        string
	Translation string
	Language    string
	Notes       string
}

// ImportResult summarizes an import run.
type ImportResult struct {
	TotalRows int      `json:"total_rows"`
	Imported  int      `json:"imported"`
	Skipped   int      `json:"skipped"`
	Errors    []string `json:"errors,omitempty"`
}

// ReadFile parses a word-list file into rows. The format is chosen by file
// extension: .xlsx files are read with excelize, .csv files with the stdlib
// csv reader.
func ReadFile(path string) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readExcel(path)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()
		return ReadCSV(f)
	default:
		return nil, fmt.Errorf("unsupported import format: %s", filepath.Ext(path))
	}
}

// ReadCSV parses rows from CSV content. A header row is skipped when its
// first cell looks like a column label rather than a word.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	var rows []Row
	for i, record := range records {
		if i == 0 && isHeader(record) {
			continue
		}
		rows = append(rows, rowFromCells(record))
	}
	return rows, nil
}

func readExcel(path string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	var rows []Row
	for i, record := range cells {
		if i == 0 && isHeader(record) {
			continue
		}
		rows = append(rows, rowFromCells(record))
	}
	return rows, nil
}

func rowFromCells(cells []string) Row {
	var row Row
	if len(cells) > 0 {
		row.Text = strings.TrimSpace(cells[0])
	}
	if len(cells) > 1 {
		row.Translation = strings.TrimSpace(cells[1])
	}
	if len(cells) > 2 {
		row.Language = strings.TrimSpace(cells[2])
	}
	if len(cells) > 3 {
		row.Notes = strings.TrimSpace(cells[3])
	}
	return row
}

func isHeader(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(cells[0])) {
	case "word", "text", "term":
		return true
	}
	return false
}
