package analytics_test

import (
	"testing"

	"jtrack-backend/internal/analytics"
	"jtrack-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func salariedApp(status string, min, max int) domain.Application {
	a := app(status, day("2026-01-01"))
	a.SalaryRange = &domain.SalaryRange{Min: min, Max: max, Currency: "USD", Period: "YEARLY"}
	return a
}

func TestSalaryBucketsAverageAssignment(t *testing.T) {
	// avg 100000 lands in 100-125k: lower bound inclusive, upper exclusive
	buckets := analytics.SalaryBuckets([]domain.Application{
		salariedApp(domain.StatusApplied, 90000, 110000),
	})

	assert.Len(t, buckets, 1)
	assert.Equal(t, "100-125k", buckets[0].Range)
	assert.Equal(t, 1, buckets[0].Count)
}

func TestSalaryBucketsSingleBound(t *testing.T) {
	buckets := analytics.SalaryBuckets([]domain.Application{
		salariedApp(domain.StatusApplied, 60000, 0),
		salariedApp(domain.StatusApplied, 0, 250000),
	})

	assert.Len(t, buckets, 2)
	assert.Equal(t, "50-75k", buckets[0].Range)
	assert.Equal(t, "200k+", buckets[1].Range)
}

func TestSalaryBucketsSkipsMissingData(t *testing.T) {
	noSalary := app(domain.StatusApplied, day("2026-01-01"))
	zeroSalary := salariedApp(domain.StatusApplied, 0, 0)

	assert.Empty(t, analytics.SalaryBuckets([]domain.Application{noSalary, zeroSalary}))
}

func TestSalaryBucketsSuccessRate(t *testing.T) {
	buckets := analytics.SalaryBuckets([]domain.Application{
		salariedApp(domain.StatusOffered, 80000, 90000),
		salariedApp(domain.StatusRejected, 80000, 90000),
	})

	assert.Len(t, buckets, 1)
	assert.Equal(t, "75-100k", buckets[0].Range)
	assert.Equal(t, 2, buckets[0].Count)
	assert.InDelta(t, 50.0, buckets[0].SuccessRate, 0.001)
}

func TestSourceBreakdown(t *testing.T) {
	linkedin := app(domain.StatusOffered, day("2026-01-01"))
	board := app(domain.StatusApplied, day("2026-01-02"))
	board.ApplicationSource = domain.SourceJobBoard
	board2 := app(domain.StatusRejected, day("2026-01-03"))
	board2.ApplicationSource = domain.SourceJobBoard
	missing := app(domain.StatusApplied, day("2026-01-04"))
	missing.ApplicationSource = ""

	stats := analytics.SourceBreakdown([]domain.Application{linkedin, board, board2, missing})

	assert.Len(t, stats, 3)
	assert.Equal(t, domain.SourceJobBoard, stats[0].Source)
	assert.Equal(t, 2, stats[0].Total)
	assert.Equal(t, 1, stats[0].Pending)
	assert.Equal(t, 1, stats[0].Rejected)

	// LINKEDIN and OTHER tie at one each; encounter order breaks the tie
	assert.Equal(t, domain.SourceLinkedIn, stats[1].Source)
	assert.InDelta(t, 100.0, stats[1].SuccessRate, 0.001)
	assert.Equal(t, domain.SourceOther, stats[2].Source)
}

func TestSourceBreakdownTopTen(t *testing.T) {
	var apps []domain.Application
	sources := []string{"S1", "S2", "S3", "S4", "S5", "S6", "S7", "S8", "S9", "S10", "S11", "S12"}
	for _, s := range sources {
		a := app(domain.StatusApplied, day("2026-01-01"))
		a.ApplicationSource = s
		apps = append(apps, a)
	}

	stats := analytics.SourceBreakdown(apps)
	assert.Len(t, stats, 10)
	// All tied, so the first ten encountered survive
	assert.Equal(t, "S1", stats[0].Source)
	assert.Equal(t, "S10", stats[9].Source)
}
