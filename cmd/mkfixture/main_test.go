package main

import (
	"testing"

	"github.com/sefallone/Plan-eco/internal/loader"
	"github.com/sefallone/Plan-eco/internal/model"
)

func TestCheckOutput(t *testing.T) {
	tests := []struct {
		out, drop string
		wantErr   bool
	}{
		{"fx.xlsx", "", false},
		{"fx.xlsx", model.ColAvgEmergencyPrice, false},
		{"fx.parquet", "", false},
		{"fx.parquet", model.ColAvgEmergencyPrice, true},
		{"fx.csv", "", true},
	}
	for _, tt := range tests {
		if err := checkOutput(tt.out, tt.drop); (err != nil) != tt.wantErr {
			t.Errorf("checkOutput(%q, %q) = %v, wantErr %v", tt.out, tt.drop, err, tt.wantErr)
		}
	}
}

func TestDropColumn(t *testing.T) {
	table, _ := loader.Embedded().Table()
	got, err := dropColumn(table, model.ColAvgEmergencyPrice)
	if err != nil {
		t.Fatalf("dropColumn: %v", err)
	}
	if len(got.Header) != len(table.Header)-1 {
		t.Fatalf("header has %d columns, want %d", len(got.Header), len(table.Header)-1)
	}
	for _, h := range got.Header {
		if h == "Precio Medio Urgencias" {
			t.Error("dropped header still present")
		}
	}
	if len(got.Rows[0]) != len(got.Header) {
		t.Errorf("row width %d, header width %d", len(got.Rows[0]), len(got.Header))
	}

	ds, err := loader.Load(loader.TableSource("fx", got), loader.Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	found := false
	for _, w := range ds.Warnings() {
		if w.Kind == loader.MissingColumn && w.Column == model.ColAvgEmergencyPrice {
			found = true
		}
	}
	if !found {
		t.Error("dropped column not reported as missing on load")
	}

	if _, err := dropColumn(table, model.ColAvgSurgicalPrice); err == nil {
		t.Error("expected error for a column not in the table")
	}
}
