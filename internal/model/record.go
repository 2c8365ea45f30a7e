package model

import "time"

// MonthlyRecord is one month of the billing projection. Month is always the
// first day of the month in UTC.
type MonthlyRecord struct {
	Month time.Time

	TotalBilling Num

	OutpatientBillingProvider Num
	OutpatientBillingPartner  Num
	SurgicalBillingProvider   Num
	SurgicalBillingPartner    Num
	EmergencyBillingProvider  Num
	EmergencyBillingPartner   Num

	OutpatientPatientCount    Num
	SurgicalInterventionCount Num
	EmergencyVisitCount       Num

	PatientsPerSlot Num
	TotalDailySlots Num
	MorningSlots    Num
	AfternoonSlots  Num

	OutpatientDaysPerMonth Num
	EmergencyDaysPerMonth  Num

	AvgOutpatientPrice     Num
	AvgEmergencyPrice      Num
	AvgSurgicalPrice       Num
	AvgOutpatientHHMMPrice Num
	AvgSurgicalHHMMPrice   Num

	EmergencyTraumaDays Num
	EmergencyTotalDays  Num

	// Derived by Derive.
	OutpatientBillingTotal Num
	SurgicalBillingTotal   Num
	EmergencyBillingTotal  Num
	TotalRevenueAll        Num
}

var recordFields = map[string]func(r *MonthlyRecord) *Num{
	ColTotalBilling:              func(r *MonthlyRecord) *Num { return &r.TotalBilling },
	ColOutpatientBillingProvider: func(r *MonthlyRecord) *Num { return &r.OutpatientBillingProvider },
	ColOutpatientBillingPartner:  func(r *MonthlyRecord) *Num { return &r.OutpatientBillingPartner },
	ColSurgicalBillingProvider:   func(r *MonthlyRecord) *Num { return &r.SurgicalBillingProvider },
	ColSurgicalBillingPartner:    func(r *MonthlyRecord) *Num { return &r.SurgicalBillingPartner },
	ColEmergencyBillingProvider:  func(r *MonthlyRecord) *Num { return &r.EmergencyBillingProvider },
	ColEmergencyBillingPartner:   func(r *MonthlyRecord) *Num { return &r.EmergencyBillingPartner },
	ColOutpatientPatientCount:    func(r *MonthlyRecord) *Num { return &r.OutpatientPatientCount },
	ColSurgicalInterventionCount: func(r *MonthlyRecord) *Num { return &r.SurgicalInterventionCount },
	ColEmergencyVisitCount:       func(r *MonthlyRecord) *Num { return &r.EmergencyVisitCount },
	ColPatientsPerSlot:           func(r *MonthlyRecord) *Num { return &r.PatientsPerSlot },
	ColTotalDailySlots:           func(r *MonthlyRecord) *Num { return &r.TotalDailySlots },
	ColMorningSlots:              func(r *MonthlyRecord) *Num { return &r.MorningSlots },
	ColAfternoonSlots:            func(r *MonthlyRecord) *Num { return &r.AfternoonSlots },
	ColOutpatientDaysPerMonth:    func(r *MonthlyRecord) *Num { return &r.OutpatientDaysPerMonth },
	ColEmergencyDaysPerMonth:     func(r *MonthlyRecord) *Num { return &r.EmergencyDaysPerMonth },
	ColAvgOutpatientPrice:        func(r *MonthlyRecord) *Num { return &r.AvgOutpatientPrice },
	ColAvgEmergencyPrice:         func(r *MonthlyRecord) *Num { return &r.AvgEmergencyPrice },
	ColAvgSurgicalPrice:          func(r *MonthlyRecord) *Num { return &r.AvgSurgicalPrice },
	ColAvgOutpatientHHMMPrice:    func(r *MonthlyRecord) *Num { return &r.AvgOutpatientHHMMPrice },
	ColAvgSurgicalHHMMPrice:      func(r *MonthlyRecord) *Num { return &r.AvgSurgicalHHMMPrice },
	ColEmergencyTraumaDays:       func(r *MonthlyRecord) *Num { return &r.EmergencyTraumaDays },
	ColEmergencyTotalDays:        func(r *MonthlyRecord) *Num { return &r.EmergencyTotalDays },
	ColOutpatientBillingTotal:    func(r *MonthlyRecord) *Num { return &r.OutpatientBillingTotal },
	ColSurgicalBillingTotal:      func(r *MonthlyRecord) *Num { return &r.SurgicalBillingTotal },
	ColEmergencyBillingTotal:     func(r *MonthlyRecord) *Num { return &r.EmergencyBillingTotal },
	ColTotalRevenueAll:           func(r *MonthlyRecord) *Num { return &r.TotalRevenueAll },
}

// Value returns the value of a numeric column, or ok=false for an unknown
// column name.
func (r MonthlyRecord) Value(column string) (Num, bool) {
	get, ok := recordFields[column]
	if !ok {
		return Missing, false
	}
	return *get(&r), true
}

// Set assigns an input column. Derived columns cannot be set; they are
// overwritten by Derive.
func (r *MonthlyRecord) Set(column string, v Num) bool {
	get, ok := recordFields[column]
	if !ok || isDerived(column) {
		return false
	}
	*get(r) = v
	return true
}

// Derive recomputes the billing totals from their provider/partner parts.
func (r *MonthlyRecord) Derive() {
	r.OutpatientBillingTotal = r.OutpatientBillingProvider.Add(r.OutpatientBillingPartner)
	r.SurgicalBillingTotal = r.SurgicalBillingProvider.Add(r.SurgicalBillingPartner)
	r.EmergencyBillingTotal = r.EmergencyBillingProvider.Add(r.EmergencyBillingPartner)
	r.TotalRevenueAll = r.OutpatientBillingTotal.Add(r.SurgicalBillingTotal).Add(r.EmergencyBillingTotal)
}

// MonthLabel formats the month as YYYY-MM, which sorts chronologically.
func (r MonthlyRecord) MonthLabel() string {
	return r.Month.Format("2006-01")
}

func isDerived(column string) bool {
	for _, c := range DerivedColumns {
		if c == column {
			return true
		}
	}
	return false
}
