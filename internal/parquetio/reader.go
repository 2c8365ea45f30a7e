package parquetio

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/parquet-go/parquet-go"

	"github.com/sefallone/Plan-eco/internal/model"
)

// Reader wraps a parquet GenericReader for RecordRow exports.
type Reader struct {
	file    *os.File
	reader  *parquet.GenericReader[model.RecordRow]
	columns map[string]bool
}

// Open opens a Parquet export and validates its schema.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	columns, err := ValidateSchema(pf.Schema())
	if err != nil {
		f.Close()
		return nil, err
	}

	r := parquet.NewGenericReader[model.RecordRow](pf)
	return &Reader{file: f, reader: r, columns: columns}, nil
}

// NumRows returns the total number of rows in the Parquet file.
func (r *Reader) NumRows() int64 {
	return r.reader.NumRows()
}

// Read reads up to len(rows) records into the provided slice.
// Returns the number of rows read and io.EOF when done.
func (r *Reader) Read(rows []model.RecordRow) (int, error) {
	n, err := r.reader.Read(rows)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("read parquet rows: %w", err)
	}
	return n, err
}

// Table reads every row and renders it as a raw Table. Only columns present
// in the file schema appear in the header, so absent input columns are
// reported by the loader like for any other source.
func (r *Reader) Table() (*model.Table, error) {
	header := []string{model.ColDate}
	for _, f := range model.AllFields[1:] {
		if r.columns[f.Column] {
			header = append(header, f.Column)
		}
	}

	t := &model.Table{Header: header}
	buf := make([]model.RecordRow, 256)
	for {
		n, readErr := r.Read(buf)
		for i := 0; i < n; i++ {
			t.Rows = append(t.Rows, rowCells(buf[i], header))
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, readErr
		}
	}
	return t, nil
}

func rowCells(row model.RecordRow, header []string) []string {
	rec := recordFromRow(row)
	cells := make([]string, len(header))
	cells[0] = row.Month
	for i, col := range header[1:] {
		v, _ := rec.Value(col)
		cells[i+1] = v.String()
	}
	return cells
}

func recordFromRow(row model.RecordRow) model.MonthlyRecord {
	var rec model.MonthlyRecord
	ptrs := map[string]*float64{
		model.ColTotalBilling:              row.TotalBilling,
		model.ColOutpatientBillingProvider: row.OutpatientBillingProvider,
		model.ColOutpatientBillingPartner:  row.OutpatientBillingPartner,
		model.ColSurgicalBillingProvider:   row.SurgicalBillingProvider,
		model.ColSurgicalBillingPartner:    row.SurgicalBillingPartner,
		model.ColEmergencyBillingProvider:  row.EmergencyBillingProvider,
		model.ColEmergencyBillingPartner:   row.EmergencyBillingPartner,
		model.ColOutpatientPatientCount:    row.OutpatientPatientCount,
		model.ColSurgicalInterventionCount: row.SurgicalInterventionCount,
		model.ColEmergencyVisitCount:       row.EmergencyVisitCount,
		model.ColPatientsPerSlot:           row.PatientsPerSlot,
		model.ColTotalDailySlots:           row.TotalDailySlots,
		model.ColMorningSlots:              row.MorningSlots,
		model.ColAfternoonSlots:            row.AfternoonSlots,
		model.ColOutpatientDaysPerMonth:    row.OutpatientDaysPerMonth,
		model.ColEmergencyDaysPerMonth:     row.EmergencyDaysPerMonth,
		model.ColAvgOutpatientPrice:        row.AvgOutpatientPrice,
		model.ColAvgEmergencyPrice:         row.AvgEmergencyPrice,
		model.ColAvgSurgicalPrice:          row.AvgSurgicalPrice,
		model.ColAvgOutpatientHHMMPrice:    row.AvgOutpatientHHMMPrice,
		model.ColAvgSurgicalHHMMPrice:      row.AvgSurgicalHHMMPrice,
		model.ColEmergencyTraumaDays:       row.EmergencyTraumaDays,
		model.ColEmergencyTotalDays:        row.EmergencyTotalDays,
	}
	for col, p := range ptrs {
		rec.Set(col, model.NumFromPtr(p))
	}
	return rec
}

// Close releases all resources.
func (r *Reader) Close() error {
	if err := r.reader.Close(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}

// Columns lists the lowercase column names present in the file.
func (r *Reader) Columns() []string {
	cols := make([]string, 0, len(r.columns))
	for c := range r.columns {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}
