package sheet

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/sefallone/Plan-eco/internal/model"
)

func openBytes(t *testing.T, path string) *bytes.Reader {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return bytes.NewReader(data)
}

func TestWriteTable_ReadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.xlsx")
	in := &model.Table{
		Header: []string{"Fecha", "Total Facturación", "Pacientes x Módulo"},
		Rows: [][]string{
			{"oct-25", "100000", "2"},
			{"nov-25", "120000", "2.1"},
		},
	}
	if err := WriteTable(path, "Proyeccion", in); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}

	got, err := ReadTable(openBytes(t, path), "")
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if len(got.Header) != 3 || got.Header[1] != "Total Facturación" {
		t.Errorf("header = %q", got.Header)
	}
	if len(got.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(got.Rows))
	}
	if got.Cell(1, 0) != "nov-25" || got.Cell(1, 1) != "120000" || got.Cell(1, 2) != "2.1" {
		t.Errorf("row 2 = %q", got.Rows[1])
	}

	names, err := Sheets(openBytes(t, path))
	if err != nil || len(names) != 1 || names[0] != "Proyeccion" {
		t.Errorf("Sheets = %v, %v", names, err)
	}
	if _, err := ReadTable(openBytes(t, path), "Other"); err == nil {
		t.Error("expected error for unknown sheet")
	}
}

func TestReadTable_DateCellsAsSerials(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "Fecha")
	f.SetCellValue(sheet, "A2", time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC))
	path := filepath.Join(t.TempDir(), "dates.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}

	got, err := ReadTable(openBytes(t, path), "")
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if got.Cell(0, 0) != "45931" {
		t.Errorf("date cell = %q, want serial 45931", got.Cell(0, 0))
	}
}

func TestReadTable_EmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	_, err := ReadTable(openBytes(t, path), "")
	if !errors.Is(err, ErrEmptySheet) {
		t.Errorf("expected ErrEmptySheet, got %v", err)
	}
}

func TestWriteWorkbook(t *testing.T) {
	rec := model.MonthlyRecord{
		Month:                     time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		OutpatientBillingProvider: model.N(100),
		OutpatientBillingPartner:  model.N(80),
		AvgEmergencyPrice:         model.Missing,
	}
	rec.Derive()
	long := []model.LongRow{{Label: "2026-01", Category: "billing_by_service", Metric: model.ColOutpatientBillingTotal, Value: model.N(180)}}

	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := WriteWorkbook(path, []model.MonthlyRecord{rec}, long); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	records, err := ReadTable(openBytes(t, path), RecordsSheet)
	if err != nil {
		t.Fatalf("read records sheet: %v", err)
	}
	if len(records.Header) != 1+len(model.ValueColumns()) {
		t.Errorf("records header has %d columns", len(records.Header))
	}
	col := -1
	for i, h := range records.Header {
		if h == model.ColOutpatientBillingTotal {
			col = i
		}
	}
	if col < 0 || records.Cell(0, col) != "180" {
		t.Errorf("outpatient_billing_total cell = %q", records.Cell(0, col))
	}
	if records.Cell(0, 0) != "2026-01" {
		t.Errorf("month cell = %q", records.Cell(0, 0))
	}

	lr, err := ReadTable(openBytes(t, path), LongSheet)
	if err != nil {
		t.Fatalf("read long sheet: %v", err)
	}
	if len(lr.Rows) != 1 || lr.Cell(0, 3) != "180" {
		t.Errorf("long rows = %q", lr.Rows)
	}
}
