package model

import "math"

// KPI names, in display order.
const (
	KPITotalBilling           = "total_billing"
	KPIOutpatientBillingTotal = "outpatient_billing_total"
	KPISurgicalBillingTotal   = "surgical_billing_total"
	KPIEmergencyBillingTotal  = "emergency_billing_total"
	KPIOutpatientPatients     = "outpatient_patients"
	KPISurgicalInterventions  = "surgical_interventions"
	KPIEmergencyVisits        = "emergency_visits"
	KPIAvgOutpatientPrice     = "avg_outpatient_price"
	KPIAvgEmergencyPrice      = "avg_emergency_price"
	KPIAvgPatientsPerSlot     = "avg_patients_per_slot"
)

// KPINames lists every KPI a Snapshot carries.
var KPINames = []string{
	KPITotalBilling,
	KPIOutpatientBillingTotal,
	KPISurgicalBillingTotal,
	KPIEmergencyBillingTotal,
	KPIOutpatientPatients,
	KPISurgicalInterventions,
	KPIEmergencyVisits,
	KPIAvgOutpatientPrice,
	KPIAvgEmergencyPrice,
	KPIAvgPatientsPerSlot,
}

// Snapshot is the KPI set for one year. Means with no present values are NaN.
type Snapshot struct {
	Year   int
	Months int

	TotalBilling           float64
	OutpatientBillingTotal float64
	SurgicalBillingTotal   float64
	EmergencyBillingTotal  float64
	OutpatientPatients     float64
	SurgicalInterventions  float64
	EmergencyVisits        float64
	AvgOutpatientPrice     float64
	AvgEmergencyPrice      float64
	AvgPatientsPerSlot     float64
}

// KPIValue is a single named KPI.
type KPIValue struct {
	Name  string `json:"name"`
	Value Num    `json:"value"`
}

// KPIs returns the snapshot as ordered name/value pairs.
func (s Snapshot) KPIs() []KPIValue {
	vals := []float64{
		s.TotalBilling,
		s.OutpatientBillingTotal,
		s.SurgicalBillingTotal,
		s.EmergencyBillingTotal,
		s.OutpatientPatients,
		s.SurgicalInterventions,
		s.EmergencyVisits,
		s.AvgOutpatientPrice,
		s.AvgEmergencyPrice,
		s.AvgPatientsPerSlot,
	}
	out := make([]KPIValue, len(KPINames))
	for i, name := range KPINames {
		v := Missing
		if !math.IsNaN(vals[i]) {
			v = N(vals[i])
		}
		out[i] = KPIValue{Name: name, Value: v}
	}
	return out
}

// Map returns the snapshot keyed by KPI name.
func (s Snapshot) Map() map[string]float64 {
	m := make(map[string]float64, len(KPINames))
	for _, kv := range s.KPIs() {
		if kv.Value.Valid {
			m[kv.Name] = kv.Value.V
		} else {
			m[kv.Name] = math.NaN()
		}
	}
	return m
}

// Reasons a Growth is undefined.
const (
	GrowthNoPriorYear    = "no_prior_year"
	GrowthZeroPriorTotal = "zero_prior_total"
)

// Growth is year-over-year growth of total billing. Defined is false when
// the prior year has no records or a zero total; Rate is then meaningless.
type Growth struct {
	Year    int     `json:"year"`
	Current float64 `json:"current"`
	Prior   float64 `json:"prior"`
	Rate    float64 `json:"rate"`
	Defined bool    `json:"defined"`
	Reason  string  `json:"reason,omitempty"`
}
