// Package metrics filters monthly records by year and computes the KPI
// snapshot, year-over-year growth and the long-form category views. All
// functions are pure and safe for concurrent use over a shared slice.
package metrics

import (
	"fmt"
	"math"

	"github.com/sefallone/Plan-eco/internal/model"
)

// EmptyFilterError is returned when no record falls in the requested year.
// It is recoverable by choosing another year.
type EmptyFilterError struct {
	Year int
}

func (e *EmptyFilterError) Error() string {
	return fmt.Sprintf("no data for year %d", e.Year)
}

// FilterYear returns the records whose month falls in year, in input order.
func FilterYear(records []model.MonthlyRecord, year int) []model.MonthlyRecord {
	var out []model.MonthlyRecord
	for _, r := range records {
		if r.Month.Year() == year {
			out = append(out, r)
		}
	}
	return out
}

// Summarize computes the KPI snapshot for year. Sums and means skip missing
// values; a mean divides by the number of present values.
func Summarize(records []model.MonthlyRecord, year int) (model.Snapshot, error) {
	rows := FilterYear(records, year)
	if len(rows) == 0 {
		return model.Snapshot{}, &EmptyFilterError{Year: year}
	}

	col := func(get func(model.MonthlyRecord) model.Num) []model.Num {
		vals := make([]model.Num, len(rows))
		for i, r := range rows {
			vals[i] = get(r)
		}
		return vals
	}

	return model.Snapshot{
		Year:   year,
		Months: len(rows),

		TotalBilling:           sum(col(func(r model.MonthlyRecord) model.Num { return r.TotalBilling })),
		OutpatientBillingTotal: sum(col(func(r model.MonthlyRecord) model.Num { return r.OutpatientBillingTotal })),
		SurgicalBillingTotal:   sum(col(func(r model.MonthlyRecord) model.Num { return r.SurgicalBillingTotal })),
		EmergencyBillingTotal:  sum(col(func(r model.MonthlyRecord) model.Num { return r.EmergencyBillingTotal })),
		OutpatientPatients:     sum(col(func(r model.MonthlyRecord) model.Num { return r.OutpatientPatientCount })),
		SurgicalInterventions:  sum(col(func(r model.MonthlyRecord) model.Num { return r.SurgicalInterventionCount })),
		EmergencyVisits:        sum(col(func(r model.MonthlyRecord) model.Num { return r.EmergencyVisitCount })),
		AvgOutpatientPrice:     mean(col(func(r model.MonthlyRecord) model.Num { return r.AvgOutpatientPrice })),
		AvgEmergencyPrice:      mean(col(func(r model.MonthlyRecord) model.Num { return r.AvgEmergencyPrice })),
		AvgPatientsPerSlot:     mean(col(func(r model.MonthlyRecord) model.Num { return r.PatientsPerSlot })),
	}, nil
}

// Growth computes total billing growth of year over year-1. The result is
// undefined (Defined == false) when year-1 has no records or its total is
// zero; that is not an error.
func Growth(records []model.MonthlyRecord, year int) (model.Growth, error) {
	cur, err := Summarize(records, year)
	if err != nil {
		return model.Growth{}, err
	}
	g := model.Growth{Year: year, Current: cur.TotalBilling}

	prior, err := Summarize(records, year-1)
	if err != nil {
		g.Reason = model.GrowthNoPriorYear
		return g, nil
	}
	g.Prior = prior.TotalBilling
	if prior.TotalBilling == 0 {
		g.Reason = model.GrowthZeroPriorTotal
		return g, nil
	}
	g.Rate = cur.TotalBilling/prior.TotalBilling - 1
	g.Defined = true
	return g, nil
}

func sum(vals []model.Num) float64 {
	var s float64
	for _, v := range vals {
		if v.Valid {
			s += v.V
		}
	}
	return s
}

func mean(vals []model.Num) float64 {
	var s float64
	n := 0
	for _, v := range vals {
		if v.Valid {
			s += v.V
			n++
		}
	}
	if n == 0 {
		return math.NaN()
	}
	return s / float64(n)
}
