package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sefallone/Plan-eco/internal/model"
	"github.com/sefallone/Plan-eco/internal/normalize"
	"github.com/sefallone/Plan-eco/internal/parquetio"
	"github.com/sefallone/Plan-eco/internal/sheet"
)

// Source yields raw tabular data for Load.
type Source interface {
	Name() string
	Table() (*model.Table, error)
}

// Hasher is implemented by sources backed by bytes on disk or in memory.
type Hasher interface {
	SHA256() (string, error)
}

// Open picks a source by file extension. An empty path selects the
// built-in table.
func Open(path, sheetName string) (Source, error) {
	if path == "" {
		return Embedded(), nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return Spreadsheet(path, sheetName), nil
	case ".parquet":
		return ParquetFile(path), nil
	}
	return nil, &LoadError{Source: path, Err: fmt.Errorf("unsupported file type %q (want .xlsx or .parquet)", filepath.Ext(path))}
}

type spreadsheetFile struct {
	path  string
	sheet string
}

// Spreadsheet reads one sheet (or the first) of an .xlsx file.
func Spreadsheet(path, sheetName string) Source {
	return &spreadsheetFile{path: path, sheet: sheetName}
}

func (s *spreadsheetFile) Name() string { return s.path }

func (s *spreadsheetFile) Table() (*model.Table, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return sheet.ReadTable(f, s.sheet)
}

func (s *spreadsheetFile) SHA256() (string, error) {
	return normalize.FileHash(s.path)
}

type spreadsheetBytes struct {
	name  string
	sheet string
	data  []byte
}

// SpreadsheetReader buffers an uploaded workbook so it can be both parsed
// and hashed.
func SpreadsheetReader(r io.Reader, name, sheetName string) (Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Source: name, Err: fmt.Errorf("read upload: %w", err)}
	}
	return &spreadsheetBytes{name: name, sheet: sheetName, data: data}, nil
}

func (s *spreadsheetBytes) Name() string { return s.name }

func (s *spreadsheetBytes) Table() (*model.Table, error) {
	return sheet.ReadTable(bytes.NewReader(s.data), s.sheet)
}

func (s *spreadsheetBytes) SHA256() (string, error) {
	return normalize.BytesHash(s.data), nil
}

type parquetFile struct {
	path string
}

// ParquetFile re-imports a records export written by parquetio.WriteRecords.
func ParquetFile(path string) Source {
	return &parquetFile{path: path}
}

func (p *parquetFile) Name() string { return p.path }

func (p *parquetFile) Table() (*model.Table, error) {
	r, err := parquetio.Open(p.path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.Table()
}

func (p *parquetFile) SHA256() (string, error) {
	return normalize.FileHash(p.path)
}

type tableSource struct {
	name  string
	table *model.Table
}

// TableSource wraps an in-memory table.
func TableSource(name string, t *model.Table) Source {
	return &tableSource{name: name, table: t}
}

func (s *tableSource) Name() string { return s.name }

func (s *tableSource) Table() (*model.Table, error) {
	if s.table == nil {
		return nil, fmt.Errorf("no table")
	}
	return s.table, nil
}
