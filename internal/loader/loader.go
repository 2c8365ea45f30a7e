package loader

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sefallone/Plan-eco/internal/model"
	"github.com/sefallone/Plan-eco/internal/normalize"
)

// Options control header matching and date parsing.
type Options struct {
	// Months resolves month abbreviations. Nil means normalize.DefaultMonthTable.
	Months normalize.MonthTable
	// Aliases adds extra accepted headers per canonical column.
	Aliases map[string][]string
}

// Load reads src and returns a validated, immutable Dataset. Non-fatal
// problems are collected as warnings on the Dataset; a *LoadError is
// returned only when no usable table can be produced.
func Load(src Source, opts Options) (*Dataset, error) {
	start := time.Now()
	if src == nil {
		return nil, &LoadError{Source: "<nil>", Err: errors.New("no source")}
	}
	name := src.Name()

	table, err := src.Table()
	if err != nil {
		return nil, &LoadError{Source: name, Err: err}
	}
	if len(table.Header) == 0 {
		return nil, &LoadError{Source: name, Err: errors.New("no header row")}
	}

	months := opts.Months
	if months == nil {
		months = normalize.DefaultMonthTable()
	}

	var warnings []Warning
	colIndex, dupes := mapHeader(table.Header, opts.Aliases)
	warnings = append(warnings, dupes...)

	dateCol, ok := colIndex[model.ColDate]
	if !ok {
		return nil, &LoadError{Source: name, Err: fmt.Errorf("no date column (header %q)", table.Header)}
	}
	for _, f := range model.AllFields[1:] {
		if _, ok := colIndex[f.Column]; !ok {
			warnings = append(warnings, Warning{
				Kind:    MissingColumn,
				Column:  f.Column,
				Message: "column absent from input, filled with 0",
			})
		}
	}

	byMonth := make(map[time.Time]int)
	rowOf := make(map[time.Time]int)
	var records []model.MonthlyRecord
	rowsRead, dropped := 0, 0

	for i, row := range table.Rows {
		rowNum := i + 1
		if blankRow(row) {
			continue
		}
		rowsRead++

		raw := table.Cell(i, dateCol)
		month, err := months.Parse(raw)
		if err != nil {
			dropped++
			warnings = append(warnings, Warning{
				Kind:    DateParse,
				Row:     rowNum,
				Column:  model.ColDate,
				Message: fmt.Sprintf("row dropped: %v", err),
			})
			continue
		}

		rec := model.MonthlyRecord{Month: month}
		for _, f := range model.AllFields[1:] {
			idx, present := colIndex[f.Column]
			if !present {
				rec.Set(f.Column, model.N(0))
				continue
			}
			v, cellErr := normalize.Cell(f.Kind, table.Cell(i, idx))
			if cellErr != nil {
				warnings = append(warnings, Warning{
					Kind:    InvalidValue,
					Row:     rowNum,
					Column:  f.Column,
					Message: cellErr.Error() + ", treated as missing",
				})
			}
			rec.Set(f.Column, v)
		}
		rec.Derive()

		if prev, dup := byMonth[month]; dup {
			warnings = append(warnings, Warning{
				Kind:    DuplicateMonth,
				Row:     rowNum,
				Column:  model.ColDate,
				Message: fmt.Sprintf("%s also on row %d; last occurrence wins", rec.MonthLabel(), rowOf[month]),
			})
			records[prev] = rec
			rowOf[month] = rowNum
			continue
		}
		byMonth[month] = len(records)
		rowOf[month] = rowNum
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, &LoadError{Source: name, Err: fmt.Errorf("no usable rows (%d read, %d dropped)", rowsRead, dropped)}
	}

	sort.Slice(records, func(a, b int) bool {
		return records[a].Month.Before(records[b].Month)
	})

	ds := &Dataset{
		batchID:  uuid.New(),
		source:   name,
		records:  records,
		warnings: warnings,
	}
	if h, ok := src.(Hasher); ok {
		sha, err := h.SHA256()
		if err != nil {
			return nil, &LoadError{Source: name, Err: fmt.Errorf("hash source: %w", err)}
		}
		ds.sha256 = sha
	}
	ds.summary = model.LoadSummary{
		BatchID:     ds.batchID.String(),
		Source:      name,
		SHA256:      ds.sha256,
		RowsRead:    rowsRead,
		Records:     len(records),
		RowsDropped: dropped,
		Warnings:    len(warnings),
		FirstMonth:  records[0].Month,
		LastMonth:   records[len(records)-1].Month,
		Duration:    time.Since(start),
	}
	return ds, nil
}

// mapHeader resolves header positions to canonical columns. Unknown
// headers are ignored.
func mapHeader(header []string, extra map[string][]string) (map[string]int, []Warning) {
	lookup := make(map[string]string)
	for _, f := range model.AllFields {
		lookup[normalize.HeaderKey(f.Column)] = f.Column
		for _, a := range f.Aliases {
			lookup[normalize.HeaderKey(a)] = f.Column
		}
		for _, a := range extra[f.Column] {
			lookup[normalize.HeaderKey(a)] = f.Column
		}
	}

	index := make(map[string]int)
	var warnings []Warning
	for i, h := range header {
		col, ok := lookup[normalize.HeaderKey(h)]
		if !ok {
			continue
		}
		if first, seen := index[col]; seen {
			warnings = append(warnings, Warning{
				Kind:    DuplicateColumn,
				Column:  col,
				Message: fmt.Sprintf("header %q duplicates %q, ignored", normalize.TrimHeader(h), normalize.TrimHeader(header[first])),
			})
			continue
		}
		index[col] = i
	}
	return index, warnings
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
