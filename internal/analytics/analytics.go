// Package analytics derives the dashboard statistics and chart datasets from
// a snapshot of application records. Every function here is pure: same input,
// same output, no state, no side effects.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"jtrack-backend/internal/domain"
)

type Timeframe string

const (
	Timeframe7Days  Timeframe = "7days"
	Timeframe30Days Timeframe = "30days"
	Timeframe90Days Timeframe = "90days"
	TimeframeAll    Timeframe = "all"
)

// ParseTimeframe maps the query value to a Timeframe, defaulting to all time.
func ParseTimeframe(s string) Timeframe {
	switch Timeframe(s) {
	case Timeframe7Days, Timeframe30Days, Timeframe90Days:
		return Timeframe(s)
	default:
		return TimeframeAll
	}
}

// FilterByTimeframe keeps the applications whose application date falls on or
// after the window cutoff relative to now.
func FilterByTimeframe(apps []domain.Application, tf Timeframe, now time.Time) []domain.Application {
	if tf == TimeframeAll {
		return apps
	}
	days := 30
	switch tf {
	case Timeframe7Days:
		days = 7
	case Timeframe90Days:
		days = 90
	}
	cutoff := now.AddDate(0, 0, -days)

	var out []domain.Application
	for _, app := range apps {
		if !app.ApplicationDate.Before(cutoff) {
			out = append(out, app)
		}
	}
	return out
}

func isActive(status string) bool {
	return status == domain.StatusApplied || status == domain.StatusInterviewing
}

func isSuccessful(status string) bool {
	return status == domain.StatusOffered || status == domain.StatusAccepted
}

// StatusCounts maps every status to its count. Statuses with no applications
// are present with an explicit zero, never omitted.
func StatusCounts(apps []domain.Application) map[string]int {
	counts := make(map[string]int, len(domain.ApplicationStatuses))
	for _, status := range domain.ApplicationStatuses {
		counts[status] = 0
	}
	for _, app := range apps {
		counts[app.Status]++
	}
	return counts
}

// percent formats n/total as a percentage string with one decimal, "0%" when
// total is zero.
func percent(n, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(n)/float64(total)*100)
}

// SuccessRate is the share of applications that reached OFFERED or ACCEPTED.
func SuccessRate(apps []domain.Application) string {
	successful := 0
	for _, app := range apps {
		if isSuccessful(app.Status) {
			successful++
		}
	}
	return percent(successful, len(apps))
}

// ResponseRate is the share of applications with a final answer either way
// (OFFERED, ACCEPTED or REJECTED).
func ResponseRate(apps []domain.Application) string {
	responded := 0
	for _, app := range apps {
		if isSuccessful(app.Status) || app.Status == domain.StatusRejected {
			responded++
		}
	}
	return percent(responded, len(apps))
}

// Summary is the dashboard stat block.
type Summary struct {
	Total        int    `json:"total"`
	Active       int    `json:"active"`
	Offered      int    `json:"offered"`
	Rejected     int    `json:"rejected"`
	Accepted     int    `json:"accepted"`
	Withdrawn    int    `json:"withdrawn"`
	SuccessRate  string `json:"success_rate"`
	ResponseRate string `json:"response_rate"`
}

// Summarize computes the headline numbers. Offered counts OFFERED and
// ACCEPTED together, matching the success-rate numerator.
func Summarize(apps []domain.Application) Summary {
	s := Summary{Total: len(apps)}
	for _, app := range apps {
		switch {
		case isActive(app.Status):
			s.Active++
		case isSuccessful(app.Status):
			s.Offered++
		case app.Status == domain.StatusRejected:
			s.Rejected++
		}
		if app.Status == domain.StatusAccepted {
			s.Accepted++
		}
		if app.Status == domain.StatusWithdrawn {
			s.Withdrawn++
		}
	}
	s.SuccessRate = percent(s.Offered, s.Total)
	s.ResponseRate = percent(s.Offered+s.Rejected, s.Total)
	return s
}

// TimelinePoint is one calendar date on the cumulative timeline chart.
type TimelinePoint struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Total    int    `json:"total"`
	Active   int    `json:"active"`
	Offered  int    `json:"offered"`
	Rejected int    `json:"rejected"`
}

// Timeline walks the applications in application-date order accumulating
// running totals. Applications sharing a date collapse into one point that
// carries the latest running totals for that date.
func Timeline(apps []domain.Application) []TimelinePoint {
	if len(apps) == 0 {
		return nil
	}

	sorted := make([]domain.Application, len(apps))
	copy(sorted, apps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ApplicationDate.Before(sorted[j].ApplicationDate)
	})

	var (
		points                           []TimelinePoint
		total, active, offered, rejected int
	)
	for _, app := range sorted {
		total++
		switch {
		case isActive(app.Status):
			active++
		case isSuccessful(app.Status):
			offered++
		case app.Status == domain.StatusRejected:
			rejected++
		}

		date := app.ApplicationDate.Format("2006-01-02")
		point := TimelinePoint{Date: date, Total: total, Active: active, Offered: offered, Rejected: rejected}
		if n := len(points); n > 0 && points[n-1].Date == date {
			points[n-1] = point
		} else {
			points = append(points, point)
		}
	}
	return points
}
