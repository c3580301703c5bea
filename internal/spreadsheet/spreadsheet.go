// Package spreadsheet читает и пишет простые таблицы (строка заголовка + данные) в формате xlsx.
package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrEmptyWorkbook - в книге нет листов или строки заголовка
var ErrEmptyWorkbook = errors.New("spreadsheet: workbook has no header row")

// Table - первый лист книги
type Table struct {
	Header []string
	Rows   [][]string
}

// Index возвращает позицию колонки по первому совпавшему имени, -1 если нет.
// Имена сравниваются после обрезки пробелов.
func (t *Table) Index(names ...string) int {
	for _, name := range names {
		for i, h := range t.Header {
			if strings.TrimSpace(h) == name {
				return i
			}
		}
	}
	return -1
}

// Cell - значение ячейки строки; пустая строка если ячейки нет
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Read разбирает первый лист книги xlsx
func Read(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyWorkbook
	}

	return &Table{Header: rows[0], Rows: rows[1:]}, nil
}

// Write пишет таблицу в новую книгу с одним листом
func Write(w io.Writer, sheet string, t *Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet = SheetName(sheet)
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeRow(f, sheet, 1, t.Header); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	if len(t.Header) > 0 {
		style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err == nil {
			last, _ := excelize.CoordinatesToCellName(len(t.Header), 1)
			_ = f.SetCellStyle(sheet, "A1", last, style)
		}
		lastCol, _ := excelize.ColumnNumberToName(len(t.Header))
		_ = f.SetColWidth(sheet, "A", lastCol, 28)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}
	return nil
}

// SheetName приводит имя к ограничениям Excel: до 31 символа, без []:*?/\
func SheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			return '_'
		}
		return r
	}, name)
	name = strings.Trim(name, "'")
	if r := []rune(name); len(r) > 31 {
		name = string(r[:31])
	}
	if strings.TrimSpace(name) == "" {
		return "Sheet1"
	}
	return name
}
