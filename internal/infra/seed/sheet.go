package seed

import (
	"strconv"
	"strings"

	"trailpack/internal/errors"

	"github.com/xuri/excelize/v2"
)

// listSeparator splits multi-value cells such as images and reference names.
const listSeparator = "|"

// row is one data row addressed by header name.
type row struct {
	line   int
	cells  []string
	header map[string]int
}

// readSheet returns the data rows of sheet. A missing sheet yields no rows.
func readSheet(f *excelize.File, sheet string) ([]row, error) {
	index, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "look up sheet %s", sheet)
	}
	if index < 0 {
		return nil, nil
	}

	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "read sheet %s", sheet)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	header := make(map[string]int, len(raw[0]))
	for i, name := range raw[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}

	rows := make([]row, 0, len(raw)-1)
	for i, cells := range raw[1:] {
		r := row{line: i + 2, cells: cells, header: header}
		if r.blank() {
			continue
		}
		rows = append(rows, r)
	}

	return rows, nil
}

func (r row) blank() bool {
	for _, cell := range r.cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

// text returns the trimmed cell under column, or "" when the row is short.
func (r row) text(column string) string {
	i, ok := r.header[strings.ToLower(column)]
	if !ok || i >= len(r.cells) {
		return ""
	}

	return strings.TrimSpace(r.cells[i])
}

func (r row) list(column string) []string {
	raw := r.text(column)
	if raw == "" {
		return []string{}
	}

	parts := strings.Split(raw, listSeparator)
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}

	return values
}

// number parses an optional numeric cell; empty cells return nil.
func (r row) number(column string) (*float64, error) {
	raw := r.text(column)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.Errorf("column %s: %q is not a number", column, raw)
	}

	return &value, nil
}

func (r row) integer(column string) (*int64, error) {
	value, err := r.number(column)
	if err != nil || value == nil {
		return nil, err
	}
	n := int64(*value)

	return &n, nil
}

func (r row) boolean(column string) (*bool, error) {
	raw := r.text(column)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseBool(strings.ToLower(raw))
	if err != nil {
		return nil, errors.Errorf("column %s: %q is not a boolean", column, raw)
	}

	return &value, nil
}
