package metrics

import (
	"fmt"
	"sort"

	"github.com/sefallone/Plan-eco/internal/model"
)

// Melt returns the long-form view of one category: one row per month and
// metric, months in input order, metrics in category order.
func Melt(records []model.MonthlyRecord, category string) ([]model.LongRow, error) {
	cat, ok := model.CategoryByName(category)
	if !ok {
		return nil, fmt.Errorf("unknown category %q", category)
	}
	return melt(records, cat), nil
}

// MeltAll returns the long-form view of every category.
func MeltAll(records []model.MonthlyRecord) []model.LongRow {
	var out []model.LongRow
	for _, cat := range model.AllCategories {
		out = append(out, melt(records, cat)...)
	}
	return out
}

func melt(records []model.MonthlyRecord, cat model.Category) []model.LongRow {
	out := make([]model.LongRow, 0, len(records)*len(cat.Metrics))
	for _, r := range records {
		for _, m := range cat.Metrics {
			v, _ := r.Value(m)
			out = append(out, model.LongRow{
				Month:    r.Month,
				Label:    r.MonthLabel(),
				Category: cat.Name,
				Metric:   m,
				Value:    v,
			})
		}
	}
	return out
}

// Years lists the distinct years in records, most recent first.
func Years(records []model.MonthlyRecord) []int {
	seen := make(map[int]bool)
	var years []int
	for _, r := range records {
		if y := r.Month.Year(); !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
