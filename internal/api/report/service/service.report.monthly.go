package reportsvc

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"sentiment_dashboard/core/common"
	reportdto "sentiment_dashboard/internal/api/report/dto"
	"sentiment_dashboard/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// monthsOnMiss là số tháng gợi ý khi không có rollup cho tháng được hỏi.
const monthsOnMiss = 3

// MonthlyAnalysis - /report/monthly_analysis. Tháng từ cutoff trở đi bị từ chối trước khi
// truy vấn store; không tìm thấy thì liệt kê các tháng gần nhất đang có.
func (s *ReportService) MonthlyAnalysis(ctx context.Context, q reportdto.MonthlyAnalysisQuery) (out map[string]interface{}, err error) {
	defer s.track("monthly_analysis", time.Now(), &err)

	start := time.Date(q.Year, time.Month(q.Month), 1, 0, 0, 0, 0, time.UTC)
	cutoff := s.opts.MonthlyCutoff
	if !start.Before(cutoff) {
		return nil, common.WithDetails(common.ErrPeriodBeyondData, map[string]string{
			"requested": start.Format("2006-01"),
			"cutoff":    cutoff.Format("2006-01"),
		})
	}

	filter := bson.M{
		"company":    q.Company,
		"start_date": bson.M{"$gte": start, "$lt": start.AddDate(0, 1, 0)},
	}
	var doc bson.M
	err = s.cols.MonthlyRollups.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		months, listErr := s.listMonths(ctx, q.Company, monthsOnMiss)
		if listErr != nil {
			return nil, listErr
		}
		return nil, common.WithDetails(common.ErrRollupNotFound, map[string]interface{}{
			"requested":        start.Format("2006-01"),
			"available_months": months,
		})
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return utility.NormalizeDocument(doc), nil
}

// AvailableMonths - /report/available_months: tối đa limit tháng có rollup, mới nhất trước.
func (s *ReportService) AvailableMonths(ctx context.Context, q reportdto.AvailableMonthsQuery) (out *reportdto.AvailableMonthsReport, err error) {
	defer s.track("available_months", time.Now(), &err)

	months, err := s.listMonths(ctx, q.Company, q.Limit)
	if err != nil {
		return nil, err
	}
	return &reportdto.AvailableMonthsReport{Company: q.Company, AvailableMonths: months}, nil
}

func (s *ReportService) listMonths(ctx context.Context, company string, limit int) ([]reportdto.MonthRef, error) {
	pipeline := []bson.M{
		{"$match": bson.M{
			"company":    company,
			"start_date": bson.M{"$lt": s.opts.MonthlyCutoff},
		}},
		{"$group": bson.M{"_id": yearMonthOf("start_date")}},
		{"$sort": bson.M{"_id": -1}},
		{"$limit": limit},
	}
	rows, err := aggregate[struct {
		Label string `bson:"_id"`
	}](ctx, s.cols.MonthlyRollups, pipeline)
	if err != nil {
		return nil, err
	}

	months := make([]reportdto.MonthRef, 0, len(rows))
	for _, r := range rows {
		if ref, ok := parseMonthLabel(r.Label); ok {
			months = append(months, ref)
		}
		if len(months) == limit {
			break
		}
	}
	return months, nil
}

func parseMonthLabel(label string) (reportdto.MonthRef, bool) {
	parts := strings.Split(label, "-")
	if len(parts) != 2 {
		return reportdto.MonthRef{}, false
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		return reportdto.MonthRef{}, false
	}
	return reportdto.MonthRef{Year: year, Month: month, Label: label}, true
}
