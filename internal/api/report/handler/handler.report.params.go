package reporthdl

import (
	basehdl "sentiment_dashboard/internal/api/base/handler"
	reportdto "sentiment_dashboard/internal/api/report/dto"

	"github.com/gofiber/fiber/v3"
)

const (
	defaultLimit       = 10
	defaultListLimit   = 20
	defaultMonthsLimit = 12
)

// filterQuery đọc platform, company, start_date, end_date, days từ query string.
func filterQuery(c fiber.Ctx) (reportdto.FilterQuery, error) {
	days, err := basehdl.OptInt(c, "days")
	if err != nil {
		return reportdto.FilterQuery{}, err
	}
	q := reportdto.FilterQuery{
		Platform:  basehdl.OptString(c, "platform"),
		Company:   basehdl.OptString(c, "company"),
		StartDate: basehdl.OptString(c, "start_date"),
		EndDate:   basehdl.OptString(c, "end_date"),
		Days:      days,
	}
	return q, basehdl.ValidateInput(&q)
}

func categoryTableQuery(c fiber.Ctx) (reportdto.CategoryTableQuery, error) {
	f, err := filterQuery(c)
	if err != nil {
		return reportdto.CategoryTableQuery{}, err
	}
	limit, err := basehdl.IntOr(c, "limit", defaultLimit)
	if err != nil {
		return reportdto.CategoryTableQuery{}, err
	}
	q := reportdto.CategoryTableQuery{FilterQuery: f, Sentiment: basehdl.OptString(c, "sentiment"), Limit: limit}
	return q, basehdl.ValidateInput(&q)
}

func detailedQuery(c fiber.Ctx) (reportdto.DetailedQuery, error) {
	f, err := filterQuery(c)
	if err != nil {
		return reportdto.DetailedQuery{}, err
	}
	limit, err := basehdl.IntOr(c, "limit", defaultLimit)
	if err != nil {
		return reportdto.DetailedQuery{}, err
	}
	q := reportdto.DetailedQuery{FilterQuery: f, Limit: limit}
	return q, basehdl.ValidateInput(&q)
}

func reviewListQuery(c fiber.Ctx) (reportdto.ReviewListQuery, error) {
	skip, err := basehdl.IntOr(c, "skip", 0)
	if err != nil {
		return reportdto.ReviewListQuery{}, err
	}
	limit, err := basehdl.IntOr(c, "limit", defaultListLimit)
	if err != nil {
		return reportdto.ReviewListQuery{}, err
	}
	q := reportdto.ReviewListQuery{
		Sentiment: basehdl.OptString(c, "sentiment"),
		Platform:  basehdl.OptString(c, "platform"),
		Company:   basehdl.OptString(c, "company"),
		Skip:      skip,
		Limit:     limit,
	}
	return q, basehdl.ValidateInput(&q)
}

func issueDetailsQuery(c fiber.Ctx) (reportdto.IssueDetailsQuery, error) {
	limit, err := basehdl.IntOr(c, "limit", defaultListLimit)
	if err != nil {
		return reportdto.IssueDetailsQuery{}, err
	}
	q := reportdto.IssueDetailsQuery{
		Category:  c.Query("category"),
		Sentiment: basehdl.OptString(c, "sentiment"),
		Company:   basehdl.OptString(c, "company"),
		Limit:     limit,
	}
	return q, basehdl.ValidateInput(&q)
}

func categoryAnalysisQuery(c fiber.Ctx) (reportdto.CategoryAnalysisQuery, error) {
	q := reportdto.CategoryAnalysisQuery{
		Category: c.Query("category"),
		Company:  basehdl.OptString(c, "company"),
	}
	return q, basehdl.ValidateInput(&q)
}

func monthlyAnalysisQuery(c fiber.Ctx) (reportdto.MonthlyAnalysisQuery, error) {
	year, err := basehdl.IntOr(c, "year", 0)
	if err != nil {
		return reportdto.MonthlyAnalysisQuery{}, err
	}
	month, err := basehdl.IntOr(c, "month", 0)
	if err != nil {
		return reportdto.MonthlyAnalysisQuery{}, err
	}
	q := reportdto.MonthlyAnalysisQuery{Company: c.Query("company"), Year: year, Month: month}
	return q, basehdl.ValidateInput(&q)
}

func availableMonthsQuery(c fiber.Ctx) (reportdto.AvailableMonthsQuery, error) {
	limit, err := basehdl.IntOr(c, "limit", defaultMonthsLimit)
	if err != nil {
		return reportdto.AvailableMonthsQuery{}, err
	}
	q := reportdto.AvailableMonthsQuery{Company: c.Query("company"), Limit: limit}
	return q, basehdl.ValidateInput(&q)
}
