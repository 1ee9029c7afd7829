package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MrJamesThe3rd/wikiguessr/internal/article"
	enc "github.com/MrJamesThe3rd/wikiguessr/internal/encoding"
)

const (
	colTitle    = "title"
	colSummary  = "summary"
	colImageURL = "image_url"
	colLinks    = "links"
	colInfobox  = "infobox"

	listSeparator = "|"
	pairSeparator = "="
)

var ErrMissingTitleColumn = errors.New("no title column found")

// Parser reads delimited article files. The first row containing a "title"
// cell is the header; columns are located by name, case-insensitively.
type Parser struct {
	comma rune
}

func NewParser(comma rune) *Parser {
	return &Parser{comma: comma}
}

func (p *Parser) Parse(r io.Reader) ([]article.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = p.comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx, ok := findHeader(rows)
	if !ok {
		return nil, ErrMissingTitleColumn
	}

	var params []article.CreateParams

	for _, row := range rows[headerIdx+1:] {
		title := cellValue(row, cols, colTitle)
		if title == "" {
			continue
		}

		params = append(params, article.CreateParams{
			Title:    title,
			Summary:  cellValue(row, cols, colSummary),
			ImageURL: cellValue(row, cols, colImageURL),
			Links:    splitList(cellValue(row, cols, colLinks)),
			Infobox:  parseInfobox(cellValue(row, cols, colInfobox)),
		})
	}

	return params, nil
}

// colIndex maps lowercased column names to their index in the row.
type colIndex map[string]int

func findHeader(rows [][]string) (colIndex, int, bool) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		if _, ok := cols[colTitle]; ok {
			return cols, rowIdx, true
		}
	}

	return nil, 0, false
}

// cellValue safely gets a trimmed cell value by column name.
func cellValue(row []string, cols colIndex, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}

	var out []string

	for _, part := range strings.Split(s, listSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

// parseInfobox reads "key=value|key=value". Entries without "=" are dropped.
func parseInfobox(s string) []article.InfoboxField {
	var fields []article.InfoboxField

	for _, entry := range splitList(s) {
		key, value, ok := strings.Cut(entry, pairSeparator)
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		fields = append(fields, article.InfoboxField{Key: key, Value: strings.TrimSpace(value)})
	}

	return fields
}
