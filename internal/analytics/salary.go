package analytics

import (
	"math"

	"jtrack-backend/internal/domain"
)

// salaryBracket is one fixed bar of the salary chart. The upper bound is
// exclusive; the last bracket is open-ended.
type salaryBracket struct {
	min   float64
	max   float64
	label string
}

var salaryBrackets = []salaryBracket{
	{0, 50000, "0-50k"},
	{50000, 75000, "50-75k"},
	{75000, 100000, "75-100k"},
	{100000, 125000, "100-125k"},
	{125000, 150000, "125-150k"},
	{150000, 200000, "150-200k"},
	{200000, math.Inf(1), "200k+"},
}

// SalaryBucket is the chart datum for one non-empty bracket.
type SalaryBucket struct {
	Range       string  `json:"range"`
	Count       int     `json:"count"`
	SuccessRate float64 `json:"success_rate"` // percentage of members offered/accepted
}

// SalaryBuckets groups applications by the average of their salary bounds
// (or the single bound when only one is set). Applications without salary
// data are skipped, and empty brackets are excluded from the output.
func SalaryBuckets(apps []domain.Application) []SalaryBucket {
	counts := make([]int, len(salaryBrackets))
	successes := make([]int, len(salaryBrackets))

	for _, app := range apps {
		sr := app.SalaryRange
		if sr == nil || (sr.Min == 0 && sr.Max == 0) {
			continue
		}

		var avg float64
		switch {
		case sr.Min != 0 && sr.Max != 0:
			avg = float64(sr.Min+sr.Max) / 2
		case sr.Min != 0:
			avg = float64(sr.Min)
		default:
			avg = float64(sr.Max)
		}

		for i, b := range salaryBrackets {
			if avg >= b.min && avg < b.max {
				counts[i]++
				if isSuccessful(app.Status) {
					successes[i]++
				}
				break
			}
		}
	}

	var out []SalaryBucket
	for i, b := range salaryBrackets {
		if counts[i] == 0 {
			continue
		}
		out = append(out, SalaryBucket{
			Range:       b.label,
			Count:       counts[i],
			SuccessRate: float64(successes[i]) / float64(counts[i]) * 100,
		})
	}
	return out
}
