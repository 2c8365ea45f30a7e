package parquetio

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/sefallone/Plan-eco/internal/model"
)

// WriteRecords writes records with their derived columns to path.
func WriteRecords(path string, records []model.MonthlyRecord) error {
	rows := make([]model.RecordRow, len(records))
	for i, r := range records {
		rows[i] = model.ToRecordRow(r)
	}
	return writeRows(path, rows)
}

// WriteLong writes the melted long-form view to path.
func WriteLong(path string, long []model.LongRow) error {
	rows := make([]model.LongParquetRow, len(long))
	for i, lr := range long {
		rows[i] = model.LongParquetRow{
			Month:    lr.Label,
			Category: lr.Category,
			Metric:   lr.Metric,
			Value:    lr.Value.Ptr(),
		}
	}
	return writeRows(path, rows)
}

func writeRows[T any](path string, rows []T) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create parquet file: %w", err)
	}

	w := parquet.NewGenericWriter[T](f)
	if _, err := w.Write(rows); err != nil {
		f.Close()
		return fmt.Errorf("write parquet rows: %w", err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return f.Close()
}
