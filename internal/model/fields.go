package model

// Kind classifies how a column's cells are parsed and range-checked.
type Kind int

const (
	KindDate   Kind = iota
	KindAmount      // numeric >= 0
	KindCount       // integer >= 0
	KindDays        // integer in [1,31]
)

func (k Kind) String() string {
	switch k {
	case KindDate:
		return "date"
	case KindAmount:
		return "amount"
	case KindCount:
		return "count"
	case KindDays:
		return "days"
	}
	return "unknown"
}

// Canonical column names.
const (
	ColDate                      = "date"
	ColTotalBilling              = "total_billing"
	ColOutpatientBillingProvider = "outpatient_billing_provider"
	ColOutpatientBillingPartner  = "outpatient_billing_partner"
	ColSurgicalBillingProvider   = "surgical_billing_provider"
	ColSurgicalBillingPartner    = "surgical_billing_partner"
	ColEmergencyBillingProvider  = "emergency_billing_provider"
	ColEmergencyBillingPartner   = "emergency_billing_partner"
	ColOutpatientPatientCount    = "outpatient_patient_count"
	ColSurgicalInterventionCount = "surgical_intervention_count"
	ColEmergencyVisitCount       = "emergency_visit_count"
	ColPatientsPerSlot           = "patients_per_slot"
	ColTotalDailySlots           = "total_daily_slots"
	ColMorningSlots              = "morning_slots"
	ColAfternoonSlots            = "afternoon_slots"
	ColOutpatientDaysPerMonth    = "outpatient_days_per_month"
	ColEmergencyDaysPerMonth     = "emergency_days_per_month"
	ColAvgOutpatientPrice        = "avg_outpatient_price"
	ColAvgEmergencyPrice         = "avg_emergency_price"
	ColAvgSurgicalPrice          = "avg_surgical_price"
	ColAvgOutpatientHHMMPrice    = "avg_outpatient_hhmm_price"
	ColAvgSurgicalHHMMPrice      = "avg_surgical_hhmm_price"
	ColEmergencyTraumaDays       = "emergency_trauma_days"
	ColEmergencyTotalDays        = "emergency_total_days"

	// Derived, never read from input.
	ColOutpatientBillingTotal = "outpatient_billing_total"
	ColSurgicalBillingTotal   = "surgical_billing_total"
	ColEmergencyBillingTotal  = "emergency_billing_total"
	ColTotalRevenueAll        = "total_revenue_all"
)

// Field describes one input column of a monthly record.
type Field struct {
	Column  string
	Kind    Kind
	Aliases []string // headers used by the projection spreadsheets
}

// AllFields lists every input column in canonical order. The date column
// comes first.
var AllFields = []Field{
	{Column: ColDate, Kind: KindDate, Aliases: []string{"Fecha", "Mes", "Month"}},
	{Column: ColTotalBilling, Kind: KindAmount, Aliases: []string{"Total Facturación"}},
	{Column: ColOutpatientBillingProvider, Kind: KindAmount, Aliases: []string{"Facturación CCEE VITHAS"}},
	{Column: ColOutpatientBillingPartner, Kind: KindAmount, Aliases: []string{"Facturación CCEE OSA (80%)", "Facturación CCEE OSA"}},
	{Column: ColOutpatientPatientCount, Kind: KindCount, Aliases: []string{"No. De Pacientes CCEE"}},
	{Column: ColPatientsPerSlot, Kind: KindAmount, Aliases: []string{"Pacientes x Módulo (Cada 15 min)", "Pacientes x Módulo"}},
	{Column: ColOutpatientDaysPerMonth, Kind: KindDays, Aliases: []string{"Días x mes CCEE"}},
	{Column: ColTotalDailySlots, Kind: KindAmount, Aliases: []string{"Módulos Totales x día"}},
	{Column: ColMorningSlots, Kind: KindAmount, Aliases: []string{"Módulos Mañana"}},
	{Column: ColAfternoonSlots, Kind: KindAmount, Aliases: []string{"Módulos Tarde"}},
	{Column: ColAvgOutpatientPrice, Kind: KindAmount, Aliases: []string{"Precio Medio Consultas CCEE"}},
	{Column: ColAvgOutpatientHHMMPrice, Kind: KindAmount, Aliases: []string{"Precio HHMM 80% Consultas"}},
	{Column: ColSurgicalBillingProvider, Kind: KindAmount, Aliases: []string{"Facturación Quirúrgico VITHAS"}},
	{Column: ColSurgicalBillingPartner, Kind: KindAmount, Aliases: []string{"Facturación Quirúrgico OSA (90%)", "Facturación Quirúrgico OSA"}},
	{Column: ColSurgicalInterventionCount, Kind: KindCount, Aliases: []string{"No. De Intervenciones Quirúrgicas"}},
	{Column: ColAvgSurgicalPrice, Kind: KindAmount, Aliases: []string{"Precio Medio Quirúrgico", "Precio Medio Intervenciones Quirúrgicas"}},
	{Column: ColAvgSurgicalHHMMPrice, Kind: KindAmount, Aliases: []string{"Precio Medio HHMM Quirúrgicas"}},
	{Column: ColEmergencyBillingPartner, Kind: KindAmount, Aliases: []string{"Facturación Urgencias OSA (50%)", "Facturación Urgencias OSA"}},
	{Column: ColEmergencyBillingProvider, Kind: KindAmount, Aliases: []string{"Facturación Urgencias VITHAS"}},
	{Column: ColEmergencyVisitCount, Kind: KindCount, Aliases: []string{"No. Urgencias Mes"}},
	{Column: ColEmergencyDaysPerMonth, Kind: KindDays, Aliases: []string{"Días x Mes Urgencias"}},
	{Column: ColEmergencyTraumaDays, Kind: KindAmount, Aliases: []string{"Urgencias días Trauma (15%)"}},
	{Column: ColEmergencyTotalDays, Kind: KindAmount, Aliases: []string{"Urgencias días totales Vitha", "Urgencias días totales Vithas"}},
	{Column: ColAvgEmergencyPrice, Kind: KindAmount, Aliases: []string{"Precio Medio Urgencias"}},
}

// DerivedColumns lists the computed columns in output order.
var DerivedColumns = []string{
	ColOutpatientBillingTotal,
	ColSurgicalBillingTotal,
	ColEmergencyBillingTotal,
	ColTotalRevenueAll,
}

// FieldByColumn returns the Field for the given canonical column, or ok=false.
func FieldByColumn(column string) (Field, bool) {
	for _, f := range AllFields {
		if f.Column == column {
			return f, true
		}
	}
	return Field{}, false
}

// ValueColumns returns every numeric column (inputs, then derived) in
// output order. The date column is not included.
func ValueColumns() []string {
	cols := make([]string, 0, len(AllFields)-1+len(DerivedColumns))
	for _, f := range AllFields[1:] {
		cols = append(cols, f.Column)
	}
	return append(cols, DerivedColumns...)
}
