package sheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/sefallone/Plan-eco/internal/model"
)

// ErrEmptySheet is returned when the sheet has no header row.
var ErrEmptySheet = errors.New("empty sheet")

// ReadTable reads one sheet of an .xlsx workbook as a Table. The first row
// is the header. When sheet is empty the first sheet is used. Cells are
// read raw so numbers keep full precision and date cells come back as
// serial day numbers.
func ReadTable(r io.Reader, sheet string) (*model.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	name, err := pickSheet(f, sheet)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q: %w", name, ErrEmptySheet)
	}
	return &model.Table{Header: rows[0], Rows: rows[1:]}, nil
}

// Sheets lists the sheet names of a workbook.
func Sheets(r io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

func pickSheet(f *excelize.File, sheet string) (string, error) {
	names := f.GetSheetList()
	if len(names) == 0 {
		return "", errors.New("workbook has no sheets")
	}
	if sheet == "" {
		return names[0], nil
	}
	for _, n := range names {
		if n == sheet {
			return n, nil
		}
	}
	return "", fmt.Errorf("sheet %q not found (have %v)", sheet, names)
}
