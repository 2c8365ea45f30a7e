package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/sefallone/Plan-eco/internal/model"
)

func TestPrinter_UnknownLanguage(t *testing.T) {
	if _, err := Printer("fr"); err == nil {
		t.Fatal("expected error for unsupported language")
	}
}

func TestFormatKPI_English(t *testing.T) {
	p, err := Printer("en")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		v    model.Num
		want string
	}{
		{model.KPITotalBilling, model.N(3710000), "$3,710,000"},
		{model.KPIAvgOutpatientPrice, model.N(20), "$20.00"},
		{model.KPIAvgPatientsPerSlot, model.N(2), "2.00 Px/Mód"},
		{model.KPIEmergencyVisits, model.N(1500), "1,500"},
		{model.KPIAvgEmergencyPrice, model.Missing, "n/a"},
	}
	for _, tt := range tests {
		if got := FormatKPI(p, tt.name, tt.v); got != tt.want {
			t.Errorf("FormatKPI(%s, %v) = %q, want %q", tt.name, tt.v, got, tt.want)
		}
	}
}

func TestFormatGrowth(t *testing.T) {
	p, _ := Printer("en")
	if got := FormatGrowth(p, model.Growth{Defined: true, Rate: 0.25}); got != "+25.0%" {
		t.Errorf("got %q", got)
	}
	got := FormatGrowth(p, model.Growth{Reason: model.GrowthNoPriorYear})
	if got != "n/a (no_prior_year)" {
		t.Errorf("got %q", got)
	}
}

func TestWriteSummary_NaNMeanShownAsMissing(t *testing.T) {
	p, _ := Printer("en")
	snap := model.Snapshot{Year: 2025, Months: 3, TotalBilling: 360000, AvgEmergencyPrice: math.NaN()}
	var buf bytes.Buffer
	if err := WriteSummary(&buf, p, snap, model.Growth{Year: 2025, Reason: model.GrowthNoPriorYear}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Year 2025 (3 months)", "$360,000", "Avg emergency price", "n/a", "Growth vs 2024"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestWriteSeries(t *testing.T) {
	p, _ := Printer("en")
	rows := []model.LongRow{
		{Label: "2025-10", Metric: model.ColMorningSlots, Value: model.N(1)},
		{Label: "2025-10", Metric: model.ColAfternoonSlots, Value: model.Missing},
	}
	var buf bytes.Buffer
	if err := WriteSeries(&buf, p, rows); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(lines))
	}
	if !strings.HasSuffix(lines[2], "n/a") {
		t.Errorf("missing value not rendered as n/a: %q", lines[2])
	}
}
