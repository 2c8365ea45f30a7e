package model

// RecordRow mirrors the Parquet export schema for a monthly record.
// Month is written as YYYY-MM.
type RecordRow struct {
	Month string `parquet:"month"`

	TotalBilling              *float64 `parquet:"total_billing,optional"`
	OutpatientBillingProvider *float64 `parquet:"outpatient_billing_provider,optional"`
	OutpatientBillingPartner  *float64 `parquet:"outpatient_billing_partner,optional"`
	SurgicalBillingProvider   *float64 `parquet:"surgical_billing_provider,optional"`
	SurgicalBillingPartner    *float64 `parquet:"surgical_billing_partner,optional"`
	EmergencyBillingProvider  *float64 `parquet:"emergency_billing_provider,optional"`
	EmergencyBillingPartner   *float64 `parquet:"emergency_billing_partner,optional"`

	OutpatientPatientCount    *float64 `parquet:"outpatient_patient_count,optional"`
	SurgicalInterventionCount *float64 `parquet:"surgical_intervention_count,optional"`
	EmergencyVisitCount       *float64 `parquet:"emergency_visit_count,optional"`

	PatientsPerSlot *float64 `parquet:"patients_per_slot,optional"`
	TotalDailySlots *float64 `parquet:"total_daily_slots,optional"`
	MorningSlots    *float64 `parquet:"morning_slots,optional"`
	AfternoonSlots  *float64 `parquet:"afternoon_slots,optional"`

	OutpatientDaysPerMonth *float64 `parquet:"outpatient_days_per_month,optional"`
	EmergencyDaysPerMonth  *float64 `parquet:"emergency_days_per_month,optional"`

	AvgOutpatientPrice     *float64 `parquet:"avg_outpatient_price,optional"`
	AvgEmergencyPrice      *float64 `parquet:"avg_emergency_price,optional"`
	AvgSurgicalPrice       *float64 `parquet:"avg_surgical_price,optional"`
	AvgOutpatientHHMMPrice *float64 `parquet:"avg_outpatient_hhmm_price,optional"`
	AvgSurgicalHHMMPrice   *float64 `parquet:"avg_surgical_hhmm_price,optional"`

	EmergencyTraumaDays *float64 `parquet:"emergency_trauma_days,optional"`
	EmergencyTotalDays  *float64 `parquet:"emergency_total_days,optional"`

	// Derived columns are exported for downstream consumers; the loader
	// ignores them on re-import and recomputes.
	OutpatientBillingTotal *float64 `parquet:"outpatient_billing_total,optional"`
	SurgicalBillingTotal   *float64 `parquet:"surgical_billing_total,optional"`
	EmergencyBillingTotal  *float64 `parquet:"emergency_billing_total,optional"`
	TotalRevenueAll        *float64 `parquet:"total_revenue_all,optional"`
}

// ToRecordRow converts a record into its export row.
func ToRecordRow(r MonthlyRecord) RecordRow {
	return RecordRow{
		Month:                     r.MonthLabel(),
		TotalBilling:              r.TotalBilling.Ptr(),
		OutpatientBillingProvider: r.OutpatientBillingProvider.Ptr(),
		OutpatientBillingPartner:  r.OutpatientBillingPartner.Ptr(),
		SurgicalBillingProvider:   r.SurgicalBillingProvider.Ptr(),
		SurgicalBillingPartner:    r.SurgicalBillingPartner.Ptr(),
		EmergencyBillingProvider:  r.EmergencyBillingProvider.Ptr(),
		EmergencyBillingPartner:   r.EmergencyBillingPartner.Ptr(),
		OutpatientPatientCount:    r.OutpatientPatientCount.Ptr(),
		SurgicalInterventionCount: r.SurgicalInterventionCount.Ptr(),
		EmergencyVisitCount:       r.EmergencyVisitCount.Ptr(),
		PatientsPerSlot:           r.PatientsPerSlot.Ptr(),
		TotalDailySlots:           r.TotalDailySlots.Ptr(),
		MorningSlots:              r.MorningSlots.Ptr(),
		AfternoonSlots:            r.AfternoonSlots.Ptr(),
		OutpatientDaysPerMonth:    r.OutpatientDaysPerMonth.Ptr(),
		EmergencyDaysPerMonth:     r.EmergencyDaysPerMonth.Ptr(),
		AvgOutpatientPrice:        r.AvgOutpatientPrice.Ptr(),
		AvgEmergencyPrice:         r.AvgEmergencyPrice.Ptr(),
		AvgSurgicalPrice:          r.AvgSurgicalPrice.Ptr(),
		AvgOutpatientHHMMPrice:    r.AvgOutpatientHHMMPrice.Ptr(),
		AvgSurgicalHHMMPrice:      r.AvgSurgicalHHMMPrice.Ptr(),
		EmergencyTraumaDays:       r.EmergencyTraumaDays.Ptr(),
		EmergencyTotalDays:        r.EmergencyTotalDays.Ptr(),
		OutpatientBillingTotal:    r.OutpatientBillingTotal.Ptr(),
		SurgicalBillingTotal:      r.SurgicalBillingTotal.Ptr(),
		EmergencyBillingTotal:     r.EmergencyBillingTotal.Ptr(),
		TotalRevenueAll:           r.TotalRevenueAll.Ptr(),
	}
}

// LongParquetRow mirrors the Parquet export schema for the melted view.
type LongParquetRow struct {
	Month    string   `parquet:"month"`
	Category string   `parquet:"category"`
	Metric   string   `parquet:"metric"`
	Value    *float64 `parquet:"value,optional"`
}
