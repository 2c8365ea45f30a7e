package normalize

import (
	"testing"
	"time"

	"github.com/sefallone/Plan-eco/internal/model"
)

func TestParse_MonthTokens(t *testing.T) {
	months := DefaultMonthTable()
	tests := []struct {
		in   string
		want time.Time
	}{
		{"oct-25", time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)},
		{"dic-27", time.Date(2027, time.December, 1, 0, 0, 0, 0, time.UTC)},
		{"Ene-26", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{" sept. 2026 ", time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)},
		{"Aug/24", time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)},
		{"mar-70", time.Date(1970, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{"mar-68", time.Date(2068, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{"2025-10", time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)},
		{"2026-02-17", time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)},
		{"2025-10-01T00:00:00Z", time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)},
		{"45931", time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)},
		{"45945.5", time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)},
		{"18264", time.Date(1950, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := months.Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParse_Rejects(t *testing.T) {
	months := DefaultMonthTable()
	for _, in := range []string{"", "xyz-25", "oct", "oct-2025x", "oct-123", "-25", "octubre", "2025", "10", "25", "0", "-45931", "3000000"} {
		if _, err := months.Parse(in); err == nil {
			t.Errorf("Parse(%q): expected error", in)
		}
	}
}

func TestMerge(t *testing.T) {
	months, err := DefaultMonthTable().Merge(map[string]int{"Okt": 10})
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	got, err := months.Parse("okt-25")
	if err != nil || got.Month() != time.October {
		t.Errorf("Parse(okt-25) = %v, %v", got, err)
	}
	if _, ok := DefaultMonthTable()["okt"]; ok {
		t.Error("Merge modified the receiver")
	}

	if _, err := DefaultMonthTable().Merge(map[string]int{"x": 13}); err == nil {
		t.Error("expected error for month 13")
	}
	if _, err := DefaultMonthTable().Merge(map[string]int{"  ": 1}); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"100000", 100000, true},
		{" 2.1 ", 2.1, true},
		{"$1,050", 1050, true},
		{"1,234,567", 1234567, true},
		{"1,234.5", 1234.5, true},
		{"1,234,567.89", 1234567.89, true},
		{"12.500,00", 12500, true},
		{"1.234,56", 1234.56, true},
		{"-1.234,5", -1234.5, true},
		{"1.234.567", 1234567, true},
		{"2,10", 2.1, true},
		{"€ 35", 35, true},
		{"80%", 80, true},
		{"-5", -5, true},
		{"", 0, false},
		{"abc", 0, false},
		{"1,2,3", 0, false},
		{"1.2.3", 0, false},
		{"1.5,2", 0, false},
		{"1,23.4", 0, false},
		{"1.234,56,7", 0, false},
		{"12.500,", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseNumber(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseNumber(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCell(t *testing.T) {
	tests := []struct {
		name    string
		kind    model.Kind
		raw     string
		want    model.Num
		wantErr bool
	}{
		{"amount", model.KindAmount, "18000", model.N(18000), false},
		{"empty", model.KindAmount, "  ", model.Missing, false},
		{"non-numeric", model.KindAmount, "n/d", model.Missing, true},
		{"negative amount", model.KindAmount, "-1", model.Missing, true},
		{"count", model.KindCount, "1850", model.N(1850), false},
		{"fractional count", model.KindCount, "12.5", model.Missing, true},
		{"days", model.KindDays, "21", model.N(21), false},
		{"days zero", model.KindDays, "0", model.Missing, true},
		{"days 32", model.KindDays, "32", model.Missing, true},
		{"date kind", model.KindDate, "5", model.Missing, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cell(tt.kind, tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHeaderKey(t *testing.T) {
	tests := []struct{ a, b string }{
		{"Facturación CCEE VITHAS", "facturacion  ccee vithas"},
		{"Facturación Urgencias OSA (50% )", "Facturacion Urgencias OSA (50%)"},
		{"  Días x mes CCEE ", "DIAS X MES CCEE"},
		{"Pacientes x Módulo ( Cada 15 min )", "pacientes x modulo (cada 15 min)"},
	}
	for _, tt := range tests {
		if HeaderKey(tt.a) != HeaderKey(tt.b) {
			t.Errorf("HeaderKey(%q) = %q, HeaderKey(%q) = %q", tt.a, HeaderKey(tt.a), tt.b, HeaderKey(tt.b))
		}
	}
	if HeaderKey("Módulos Mañana") != "modulos manana" {
		t.Errorf("got %q", HeaderKey("Módulos Mañana"))
	}
}

func TestBytesHash(t *testing.T) {
	// sha256("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := BytesHash([]byte("abc")); got != want {
		t.Errorf("BytesHash = %s", got)
	}
}
