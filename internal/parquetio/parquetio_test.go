package parquetio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/sefallone/Plan-eco/internal/model"
)

func sampleRecords() []model.MonthlyRecord {
	a := model.MonthlyRecord{
		Month:                   time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC),
		TotalBilling:            model.N(100000),
		SurgicalBillingProvider: model.N(20),
		SurgicalBillingPartner:  model.N(20),
		PatientsPerSlot:         model.N(2.1),
		AvgEmergencyPrice:       model.Missing,
	}
	b := a
	b.Month = time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)
	b.TotalBilling = model.N(120000)
	a.Derive()
	b.Derive()
	return []model.MonthlyRecord{a, b}
}

func TestWriteRecords_Table(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.parquet")
	if err := WriteRecords(path, sampleRecords()); err != nil {
		t.Fatalf("WriteRecords: %v", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()
	if r.NumRows() != 2 {
		t.Errorf("NumRows = %d", r.NumRows())
	}

	table, err := r.Table()
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	if table.Header[0] != model.ColDate || len(table.Header) != len(model.AllFields) {
		t.Errorf("header = %q", table.Header)
	}
	idx := make(map[string]int)
	for i, h := range table.Header {
		idx[h] = i
	}
	if _, ok := idx[model.ColSurgicalBillingTotal]; ok {
		t.Error("derived columns should not be re-imported")
	}
	if got := table.Cell(1, 0); got != "2025-11" {
		t.Errorf("month = %q", got)
	}
	if got := table.Cell(1, idx[model.ColTotalBilling]); got != "120000" {
		t.Errorf("total_billing = %q", got)
	}
	if got := table.Cell(0, idx[model.ColPatientsPerSlot]); got != "2.1" {
		t.Errorf("patients_per_slot = %q", got)
	}
	if got := table.Cell(0, idx[model.ColAvgEmergencyPrice]); got != "" {
		t.Errorf("missing value = %q, want empty", got)
	}
}

func TestWriteLong(t *testing.T) {
	path := filepath.Join(t.TempDir(), "long.parquet")
	long := []model.LongRow{
		{Label: "2025-10", Category: "slots_by_shift", Metric: model.ColMorningSlots, Value: model.N(1)},
		{Label: "2025-10", Category: "slots_by_shift", Metric: model.ColAfternoonSlots, Value: model.Missing},
	}
	if err := WriteLong(path, long); err != nil {
		t.Fatalf("WriteLong: %v", err)
	}

	rows, err := parquet.ReadFile[model.LongParquetRow](path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d", len(rows))
	}
	if rows[0].Month != "2025-10" || rows[0].Value == nil || *rows[0].Value != 1 {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].Value != nil {
		t.Errorf("missing value written as %v", *rows[1].Value)
	}
}

func TestOpen_RejectsForeignSchema(t *testing.T) {
	type other struct {
		Name string `parquet:"name"`
	}
	path := filepath.Join(t.TempDir(), "other.parquet")
	if err := parquet.WriteFile(path, []other{{Name: "x"}}); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Open(path); err == nil {
		t.Error("expected schema validation error")
	}
	if _, err := Open(filepath.Join(os.TempDir(), "planeco-missing.parquet")); err == nil {
		t.Error("expected error for missing file")
	}
}
