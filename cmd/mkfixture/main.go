// mkfixture writes the built-in projection as an input workbook or Parquet
// file, for manual runs and API uploads.
// Usage: go run ./cmd/mkfixture --out testdata/projection.xlsx [--rows 12] [--drop avg_emergency_price]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sefallone/Plan-eco/internal/loader"
	"github.com/sefallone/Plan-eco/internal/model"
	"github.com/sefallone/Plan-eco/internal/normalize"
	"github.com/sefallone/Plan-eco/internal/parquetio"
	"github.com/sefallone/Plan-eco/internal/sheet"
)

func main() {
	out := flag.String("out", "testdata/projection.xlsx", "output .xlsx or .parquet")
	sheetName := flag.String("sheet", "Proyeccion", "worksheet name for .xlsx output")
	maxRows := flag.Int("rows", 0, "keep only the first N months (0 = all)")
	drop := flag.String("drop", "", "canonical column to leave out of the header (.xlsx only)")
	flag.Parse()

	if err := checkOutput(*out, *drop); err != nil {
		fatalf("%v", err)
	}

	table, err := loader.Embedded().Table()
	if err != nil {
		fatalf("embedded table: %v", err)
	}
	if *maxRows > 0 && *maxRows < len(table.Rows) {
		table.Rows = table.Rows[:*maxRows]
	}
	if *drop != "" {
		table, err = dropColumn(table, *drop)
		if err != nil {
			fatalf("%v", err)
		}
	}

	switch filepath.Ext(*out) {
	case ".xlsx":
		err = sheet.WriteTable(*out, *sheetName, table)
	case ".parquet":
		var ds *loader.Dataset
		ds, err = loader.Load(loader.TableSource(loader.EmbeddedName, table), loader.Options{})
		if err == nil {
			err = parquetio.WriteRecords(*out, ds.Records())
		}
	}
	if err != nil {
		fatalf("write %s: %v", *out, err)
	}

	sha, err := normalize.FileHash(*out)
	if err != nil {
		fatalf("hash %s: %v", *out, err)
	}
	fmt.Printf("Wrote %s: %d months, %d columns, sha256 %s\n", *out, len(table.Rows), len(table.Header), sha)
}

// checkOutput rejects combinations the writers cannot honor. A Parquet
// export always carries every column, so a dropped column would come back
// zero-filled rather than absent.
func checkOutput(out, drop string) error {
	switch filepath.Ext(out) {
	case ".xlsx":
		return nil
	case ".parquet":
		if drop != "" {
			return fmt.Errorf("--drop is only supported for .xlsx output")
		}
		return nil
	}
	return fmt.Errorf("unsupported output extension %q", filepath.Ext(out))
}

// dropColumn removes every header that maps to column.
func dropColumn(t *model.Table, column string) (*model.Table, error) {
	f, ok := model.FieldByColumn(column)
	if !ok {
		return nil, fmt.Errorf("unknown column %q", column)
	}
	match := map[string]bool{normalize.HeaderKey(f.Column): true}
	for _, a := range f.Aliases {
		match[normalize.HeaderKey(a)] = true
	}

	var keep []int
	for i, h := range t.Header {
		if !match[normalize.HeaderKey(h)] {
			keep = append(keep, i)
		}
	}
	if len(keep) == len(t.Header) {
		return nil, fmt.Errorf("column %q not present", column)
	}

	out := &model.Table{Header: pick(t.Header, keep)}
	for _, row := range t.Rows {
		out.Rows = append(out.Rows, pick(row, keep))
	}
	return out, nil
}

func pick(row []string, idx []int) []string {
	out := make([]string, 0, len(idx))
	for _, i := range idx {
		if i < len(row) {
			out = append(out, row[i])
		}
	}
	return out
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
