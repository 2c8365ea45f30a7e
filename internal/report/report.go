// Package report renders KPI snapshots and long-form series as text tables
// with locale-aware number grouping.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sefallone/Plan-eco/internal/model"
)

var kpiLabels = map[string]string{
	model.KPITotalBilling:           "Total billing",
	model.KPIOutpatientBillingTotal: "Outpatient billing",
	model.KPISurgicalBillingTotal:   "Surgical billing",
	model.KPIEmergencyBillingTotal:  "Emergency billing",
	model.KPIOutpatientPatients:     "Outpatients",
	model.KPISurgicalInterventions:  "Surgical interventions",
	model.KPIEmergencyVisits:        "Emergency visits",
	model.KPIAvgOutpatientPrice:     "Avg outpatient price",
	model.KPIAvgEmergencyPrice:      "Avg emergency price",
	model.KPIAvgPatientsPerSlot:     "Slot productivity",
}

// Printer returns a message printer for "es" or "en". Anything else is an
// error.
func Printer(lang string) (*message.Printer, error) {
	switch lang {
	case "", "es":
		return message.NewPrinter(language.Spanish), nil
	case "en":
		return message.NewPrinter(language.English), nil
	}
	return nil, fmt.Errorf("unsupported language %q (want es or en)", lang)
}

// FormatKPI formats one KPI value for display. Amounts get a currency sign
// and no decimals, prices two decimals, slot productivity a Px/Mód suffix.
func FormatKPI(p *message.Printer, name string, v model.Num) string {
	if !v.Valid {
		return "n/a"
	}
	switch name {
	case model.KPITotalBilling, model.KPIOutpatientBillingTotal,
		model.KPISurgicalBillingTotal, model.KPIEmergencyBillingTotal:
		return p.Sprintf("$%.0f", v.V)
	case model.KPIAvgOutpatientPrice, model.KPIAvgEmergencyPrice:
		return p.Sprintf("$%.2f", v.V)
	case model.KPIAvgPatientsPerSlot:
		return p.Sprintf("%.2f Px/Mód", v.V)
	}
	return p.Sprintf("%.0f", v.V)
}

// FormatGrowth renders a growth rate as a signed percentage, or the reason
// it is undefined.
func FormatGrowth(p *message.Printer, g model.Growth) string {
	if !g.Defined {
		return "n/a (" + g.Reason + ")"
	}
	return p.Sprintf("%+.1f%%", g.Rate*100)
}

// WriteSummary writes the KPI table for snap followed by its growth line.
func WriteSummary(w io.Writer, p *message.Printer, snap model.Snapshot, g model.Growth) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Year %d (%d months)\t\n", snap.Year, snap.Months)
	for _, kv := range snap.KPIs() {
		fmt.Fprintf(tw, "%s\t%s\t\n", kpiLabels[kv.Name], FormatKPI(p, kv.Name, kv.Value))
	}
	fmt.Fprintf(tw, "Growth vs %d\t%s\t\n", g.Year-1, FormatGrowth(p, g))
	return tw.Flush()
}

// WriteSeries writes long-form rows as aligned month/metric/value columns.
func WriteSeries(w io.Writer, p *message.Printer, rows []model.LongRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MONTH\tMETRIC\tVALUE")
	for _, r := range rows {
		val := "n/a"
		if r.Value.Valid {
			val = p.Sprintf("%v", r.Value.V)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Label, r.Metric, val)
	}
	return tw.Flush()
}
