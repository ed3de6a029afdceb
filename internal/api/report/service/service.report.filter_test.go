package reportsvc

import (
	"math"
	"testing"
	"time"

	reportdto "sentiment_dashboard/internal/api/report/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestParseDateBestEffort(t *testing.T) {
	cases := map[string]time.Time{
		"2025-01-02":                       time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		"2025-01-02T03:04:05":              time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		"2025-01-02 03:04:05":              time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		"2025-01-02T03:04:05.250":          time.Date(2025, 1, 2, 3, 4, 5, 250000000, time.UTC),
		"2025-01-02T03:04:05+02:00":        time.Date(2025, 1, 2, 1, 4, 5, 0, time.UTC),
		"2025-01-02T03:04:05Z":             time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		"2025-01-02T03:04":                 time.Date(2025, 1, 2, 3, 4, 0, 0, time.UTC),
		"2025-01-02T03:04:05.123456-05:00": time.Date(2025, 1, 2, 8, 4, 5, 123456000, time.UTC),
	}
	for in, want := range cases {
		got, ok := ParseDateBestEffort(in)
		require.True(t, ok, in)
		assert.True(t, want.Equal(got), "%s: got %s", in, got)
		assert.Equal(t, time.UTC, got.Location(), in)
	}

	for _, bad := range []string{"", "yesterday", "2025/01/02", "02-01-2025"} {
		_, ok := ParseDateBestEffort(bad)
		assert.False(t, ok, bad)
	}
}

func TestBuildReviewFilterInclusiveBounds(t *testing.T) {
	f := BuildReviewFilter(reportdto.FilterQuery{
		Platform:  strPtr("gorgias"),
		Company:   strPtr("acme"),
		StartDate: strPtr("2025-01-01"),
		EndDate:   strPtr("2025-01-31T23:59:59"),
	}, fixedNow)

	m := f.BSON()
	assert.Equal(t, "gorgias", m["platform"])
	assert.Equal(t, "acme", m["company"])
	tp := m["time_period"].(bson.M)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), tp["$gte"])
	assert.Equal(t, time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC), tp["$lte"])
	assert.NotContains(t, tp, "$gt")
	assert.NotContains(t, tp, "$lt")
}

func TestBuildReviewFilterDaysOverridesDates(t *testing.T) {
	f := BuildReviewFilter(reportdto.FilterQuery{
		StartDate: strPtr("2020-01-01"),
		EndDate:   strPtr("2020-02-01"),
		Days:      intPtr(7),
	}, fixedNow)

	require.NotNil(t, f.From)
	require.NotNil(t, f.To)
	assert.Equal(t, fixedNow.AddDate(0, 0, -7), *f.From)
	assert.Equal(t, fixedNow, *f.To)
}

func TestBuildReviewFilterDropsBadDatesAndEmptyValues(t *testing.T) {
	f := BuildReviewFilter(reportdto.FilterQuery{
		Platform:  strPtr(""),
		StartDate: strPtr("not-a-date"),
		EndDate:   strPtr("2025-02-01"),
	}, fixedNow)

	m := f.BSON()
	assert.NotContains(t, m, "platform")
	assert.NotContains(t, m, "company")
	assert.Equal(t, bson.M{"$lte": time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)}, m["time_period"])

	assert.Empty(t, BuildReviewFilter(reportdto.FilterQuery{}, fixedNow).BSON())
}

func TestWithSentimentCopies(t *testing.T) {
	f := BuildReviewFilter(reportdto.FilterQuery{Company: strPtr("acme")}, fixedNow)
	narrowed := f.WithSentiment("negative")
	assert.Equal(t, "negative", narrowed["overall_sentiment"])
	assert.NotContains(t, f.BSON(), "overall_sentiment")

	many := f.WithSentiments("positive", "neutral")
	assert.Equal(t, bson.M{"$in": []string{"positive", "neutral"}}, many["overall_sentiment"])
}

func TestDaysFilterDefault(t *testing.T) {
	f := DaysFilter(reportdto.FilterQuery{}, 60, fixedNow)
	assert.Equal(t, fixedNow.AddDate(0, 0, -60), *f.From)

	f = DaysFilter(reportdto.FilterQuery{Days: intPtr(0)}, 60, fixedNow)
	assert.Equal(t, fixedNow, *f.From)
}

func TestBuildReviewFilterLargeDays(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	f := BuildReviewFilter(reportdto.FilterQuery{Days: intPtr(110000)}, now)
	require.NotNil(t, f.From)
	require.NotNil(t, f.To)
	assert.True(t, f.From.Before(*f.To))
	assert.Equal(t, now.AddDate(0, 0, -110000), *f.From)

	for _, days := range []int{maxWindowDays + 1, math.MaxInt32, math.MaxInt} {
		f = BuildReviewFilter(reportdto.FilterQuery{Days: intPtr(days)}, now)
		assert.True(t, f.From.Before(*f.To), "days=%d", days)
	}

	f = DaysFilter(reportdto.FilterQuery{Days: intPtr(365)}, 60, now)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *f.From)
}
