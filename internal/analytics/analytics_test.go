package analytics_test

import (
	"testing"
	"time"

	"jtrack-backend/internal/analytics"
	"jtrack-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func app(status string, date time.Time) domain.Application {
	return domain.Application{
		CompanyName:       "Acme",
		PositionTitle:     "Engineer",
		Status:            status,
		ApplicationDate:   date,
		ApplicationSource: domain.SourceLinkedIn,
	}
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestParseTimeframe(t *testing.T) {
	assert.Equal(t, analytics.Timeframe7Days, analytics.ParseTimeframe("7days"))
	assert.Equal(t, analytics.Timeframe30Days, analytics.ParseTimeframe("30days"))
	assert.Equal(t, analytics.Timeframe90Days, analytics.ParseTimeframe("90days"))
	assert.Equal(t, analytics.TimeframeAll, analytics.ParseTimeframe("all"))
	assert.Equal(t, analytics.TimeframeAll, analytics.ParseTimeframe(""))
	assert.Equal(t, analytics.TimeframeAll, analytics.ParseTimeframe("yesterday"))
}

func TestFilterByTimeframe(t *testing.T) {
	now := day("2026-06-30")
	apps := []domain.Application{
		app(domain.StatusApplied, day("2026-06-28")), // inside 7 days
		app(domain.StatusApplied, day("2026-06-10")), // inside 30 days
		app(domain.StatusApplied, day("2026-01-01")), // outside 90 days
	}

	assert.Len(t, analytics.FilterByTimeframe(apps, analytics.Timeframe7Days, now), 1)
	assert.Len(t, analytics.FilterByTimeframe(apps, analytics.Timeframe30Days, now), 2)
	assert.Len(t, analytics.FilterByTimeframe(apps, analytics.Timeframe90Days, now), 2)
	assert.Len(t, analytics.FilterByTimeframe(apps, analytics.TimeframeAll, now), 3)
}

func TestStatusCountsZeroFilled(t *testing.T) {
	counts := analytics.StatusCounts(nil)

	assert.Len(t, counts, len(domain.ApplicationStatuses))
	for _, status := range domain.ApplicationStatuses {
		assert.Equal(t, 0, counts[status])
	}
}

func TestStatusCounts(t *testing.T) {
	apps := []domain.Application{
		app(domain.StatusApplied, day("2026-01-01")),
		app(domain.StatusApplied, day("2026-01-02")),
		app(domain.StatusRejected, day("2026-01-03")),
	}

	counts := analytics.StatusCounts(apps)
	assert.Equal(t, 2, counts[domain.StatusApplied])
	assert.Equal(t, 1, counts[domain.StatusRejected])
	assert.Equal(t, 0, counts[domain.StatusOffered])
}

func TestRatesEmpty(t *testing.T) {
	assert.Equal(t, "0%", analytics.SuccessRate(nil))
	assert.Equal(t, "0%", analytics.ResponseRate(nil))
}

func TestRates(t *testing.T) {
	apps := []domain.Application{
		app(domain.StatusApplied, day("2026-01-01")),
		app(domain.StatusOffered, day("2026-01-02")),
		app(domain.StatusRejected, day("2026-01-03")),
	}

	assert.Equal(t, "33.3%", analytics.SuccessRate(apps))
	assert.Equal(t, "66.7%", analytics.ResponseRate(apps))
}

func TestSummarize(t *testing.T) {
	apps := []domain.Application{
		app(domain.StatusApplied, day("2026-01-01")),
		app(domain.StatusInterviewing, day("2026-01-02")),
		app(domain.StatusOffered, day("2026-01-03")),
		app(domain.StatusAccepted, day("2026-01-04")),
		app(domain.StatusRejected, day("2026-01-05")),
		app(domain.StatusWithdrawn, day("2026-01-06")),
	}

	s := analytics.Summarize(apps)
	assert.Equal(t, 6, s.Total)
	assert.Equal(t, 2, s.Active)
	assert.Equal(t, 2, s.Offered) // OFFERED and ACCEPTED together
	assert.Equal(t, 1, s.Rejected)
	assert.Equal(t, 1, s.Accepted)
	assert.Equal(t, 1, s.Withdrawn)
	assert.Equal(t, "33.3%", s.SuccessRate)
	assert.Equal(t, "50.0%", s.ResponseRate)
}

func TestSummarizeEmpty(t *testing.T) {
	s := analytics.Summarize(nil)
	assert.Equal(t, 0, s.Total)
	assert.Equal(t, "0%", s.SuccessRate)
	assert.Equal(t, "0%", s.ResponseRate)
}

func TestTimelineCumulative(t *testing.T) {
	apps := []domain.Application{
		app(domain.StatusRejected, day("2026-01-03")),
		app(domain.StatusApplied, day("2026-01-01")),
		app(domain.StatusOffered, day("2026-01-02")),
	}

	points := analytics.Timeline(apps)
	assert.Len(t, points, 3)

	assert.Equal(t, "2026-01-01", points[0].Date)
	assert.Equal(t, 1, points[0].Total)
	assert.Equal(t, 1, points[0].Active)

	assert.Equal(t, "2026-01-02", points[1].Date)
	assert.Equal(t, 2, points[1].Total)
	assert.Equal(t, 1, points[1].Offered)

	assert.Equal(t, "2026-01-03", points[2].Date)
	assert.Equal(t, 3, points[2].Total)
	assert.Equal(t, 1, points[2].Rejected)
}

func TestTimelineCollapsesSameDate(t *testing.T) {
	apps := []domain.Application{
		app(domain.StatusApplied, day("2026-01-01")),
		app(domain.StatusOffered, day("2026-01-01")),
		app(domain.StatusApplied, day("2026-01-02")),
	}

	points := analytics.Timeline(apps)
	assert.Len(t, points, 2)

	// One point for Jan 1 carrying the totals after both applications
	assert.Equal(t, "2026-01-01", points[0].Date)
	assert.Equal(t, 2, points[0].Total)
	assert.Equal(t, 1, points[0].Active)
	assert.Equal(t, 1, points[0].Offered)

	assert.Equal(t, "2026-01-02", points[1].Date)
	assert.Equal(t, 3, points[1].Total)
}

func TestTimelineEmpty(t *testing.T) {
	assert.Nil(t, analytics.Timeline(nil))
}
