package sheet

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/sefallone/Plan-eco/internal/model"
)

// Sheet names used by WriteWorkbook.
const (
	RecordsSheet = "records"
	LongSheet    = "long"
)

// WriteWorkbook writes records (inputs plus derived columns) and the long
// form view to an .xlsx file. Missing values are left as empty cells.
func WriteWorkbook(path string, records []model.MonthlyRecord, long []model.LongRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), RecordsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeRecords(f, records); err != nil {
		return err
	}
	if _, err := f.NewSheet(LongSheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", LongSheet, err)
	}
	if err := writeLong(f, long); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// WriteTable writes a raw table to the first sheet of a new workbook,
// named sheetName. Used to produce input fixtures.
func WriteTable(path, sheetName string, t *model.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := setRow(f, sheetName, 1, toAny(t.Header)); err != nil {
		return err
	}
	for i, row := range t.Rows {
		vals := make([]any, len(row))
		for j, cell := range row {
			vals[j] = cellValue(cell)
		}
		if err := setRow(f, sheetName, i+2, vals); err != nil {
			return err
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeRecords(f *excelize.File, records []model.MonthlyRecord) error {
	cols := model.ValueColumns()
	header := append([]any{model.ColDate}, toAny(cols)...)
	if err := setRow(f, RecordsSheet, 1, header); err != nil {
		return err
	}
	for i, r := range records {
		row := make([]any, 0, len(cols)+1)
		row = append(row, r.MonthLabel())
		for _, c := range cols {
			v, _ := r.Value(c)
			row = append(row, numCell(v))
		}
		if err := setRow(f, RecordsSheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeLong(f *excelize.File, long []model.LongRow) error {
	if err := setRow(f, LongSheet, 1, []any{"month", "category", "metric", "value"}); err != nil {
		return err
	}
	for i, lr := range long {
		if err := setRow(f, LongSheet, i+2, []any{lr.Label, lr.Category, lr.Metric, numCell(lr.Value)}); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, vals []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func numCell(v model.Num) any {
	if !v.Valid {
		return nil
	}
	return v.V
}

// cellValue keeps numeric-looking cells numeric so spreadsheets open with
// real numbers rather than text.
func cellValue(s string) any {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return s
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
