package model

import "time"

// Category groups related metrics for multi-series views.
type Category struct {
	Name    string
	Title   string
	Metrics []string
}

// AllCategories lists the long-form views in display order.
var AllCategories = []Category{
	{Name: "billing_by_service", Title: "Billing by service line", Metrics: []string{ColOutpatientBillingTotal, ColSurgicalBillingTotal, ColEmergencyBillingTotal}},
	{Name: "patients_vs_interventions", Title: "Outpatients and surgical interventions", Metrics: []string{ColOutpatientPatientCount, ColSurgicalInterventionCount}},
	{Name: "average_prices", Title: "Average prices", Metrics: []string{ColAvgOutpatientPrice, ColAvgEmergencyPrice}},
	{Name: "activity_days", Title: "Activity days per month", Metrics: []string{ColOutpatientDaysPerMonth, ColEmergencyDaysPerMonth}},
	{Name: "slots_by_shift", Title: "Slots by shift", Metrics: []string{ColMorningSlots, ColAfternoonSlots}},
	{Name: "hhmm_prices", Title: "HHMM prices", Metrics: []string{ColAvgOutpatientHHMMPrice, ColAvgSurgicalHHMMPrice}},
	{Name: "emergency_days", Title: "Emergency days", Metrics: []string{ColEmergencyTraumaDays, ColEmergencyTotalDays}},
}

// CategoryByName returns the Category with the given name, or ok=false.
func CategoryByName(name string) (Category, bool) {
	for _, c := range AllCategories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// LongRow is one (month, metric) cell of the melted view.
type LongRow struct {
	Month    time.Time `json:"-"`
	Label    string    `json:"month"`
	Category string    `json:"category"`
	Metric   string    `json:"metric"`
	Value    Num       `json:"value"`
}
