package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xuri/excelize/v2"
)

// Tabular formats use three columns: name, ingredients (comma separated) and
// instructions (one step per line). A leading header row whose first cell is
// "name" is skipped.

// readCSV reads comma separated rows. Quoted cells may span lines.
func readCSV(r io.Reader) ([]record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return rowsToRecords(rows), nil
}

// readXLSX reads the first worksheet of a workbook.
func readXLSX(r io.Reader) ([]record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("Failed to close workbook", "error", cerr)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rowsToRecords(rows), nil
}

// readHTML reads the first <table>. Rows made only of <th> cells are headers.
// A cell holding a list contributes one line per <li>.
func readHTML(r io.Reader) ([]record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, errors.New("no table found in html")
	}

	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		tds := tr.Find("td")
		if tds.Length() == 0 {
			return
		}
		row := make([]string, 0, tds.Length())
		tds.Each(func(_ int, td *goquery.Selection) {
			row = append(row, cellText(td))
		})
		rows = append(rows, row)
	})
	return rowsToRecords(rows), nil
}

func cellText(td *goquery.Selection) string {
	items := td.Find("li")
	if items.Length() == 0 {
		return strings.TrimSpace(td.Text())
	}
	lines := make([]string, 0, items.Length())
	items.Each(func(_ int, li *goquery.Selection) {
		lines = append(lines, strings.TrimSpace(li.Text()))
	})
	return strings.Join(lines, "\n")
}

func rowsToRecords(rows [][]string) []record {
	records := make([]record, 0, len(rows))
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		if isBlank(row) {
			continue
		}
		records = append(records, record{
			Row:          i + 1,
			Name:         column(row, 0),
			Ingredients:  []string{column(row, 1)},
			Instructions: []string{column(row, 2)},
		})
	}
	return records
}

func isHeader(row []string) bool {
	return strings.EqualFold(strings.TrimSpace(column(row, 0)), "name")
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func column(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
