package reportsvc

import (
	"context"
	"sort"
	"strings"
	"time"

	"sentiment_dashboard/core/common"
	"sentiment_dashboard/core/logger"
	reportdto "sentiment_dashboard/internal/api/report/dto"
	"sentiment_dashboard/internal/api/report/models"
	"sentiment_dashboard/internal/database"
	"sentiment_dashboard/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
)

// Detailed - /report/detailed: sentiment %, detail %, top category và last_updated.
func (s *ReportService) Detailed(ctx context.Context, q reportdto.DetailedQuery) (out *reportdto.DetailedReport, err error) {
	defer s.track("detailed", time.Now(), &err)

	now := s.now()
	base := BuildReviewFilter(dateRangeOnly(q.FilterQuery), now).WithSentiments(models.Sentiments...)

	total, err := count(ctx, s.cols.Reviews, base)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, emptyBase(NotFoundOnEmptyBase, common.ErrNoReviewData)
	}

	overall, err := countBy(ctx, s.cols.Reviews, base, "overall_sentiment", false, 0)
	if err != nil {
		return nil, err
	}
	detail, err := countBy(ctx, s.cols.Reviews, with(base, bson.M{"overall_sentiment_detail": bson.M{"$ne": ""}}), "overall_sentiment_detail", false, 0)
	if err != nil {
		return nil, err
	}
	categories, err := countBy(ctx, s.cols.Reviews, with(base, bson.M{"overall_sentimental_category": bson.M{"$ne": ""}}), "overall_sentimental_category", true, q.Limit)
	if err != nil {
		return nil, err
	}

	out = &reportdto.DetailedReport{
		OverallSentiment:           percentMap(overall, total),
		OverallSentimentDetail:     percentMap(detail, total),
		OverallSentimentalCategory: toCountMap(sortedDesc(categories, q.Limit)),
		TotalReviews:               total,
	}
	if out.LastUpdated, err = lastUpdated(ctx, s.cols.Reviews, base, now); err != nil {
		return nil, err
	}
	return out, nil
}

// OverallDetail - /report/overall_detail: phân bố overall_sentiment_detail.
// Bỏ nhãn rỗng và nhãn có tỉ lệ dưới DetailMinShare phần trăm.
func (s *ReportService) OverallDetail(ctx context.Context, q reportdto.FilterQuery) (out *reportdto.OverallDetailReport, err error) {
	defer s.track("overall_detail", time.Now(), &err)

	now := s.now()
	base := BuildReviewFilter(reportdto.FilterQuery{Platform: q.Platform, Company: q.Company, Days: q.Days}, now).BSON()

	total, err := count(ctx, s.cols.Reviews, base)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, emptyBase(NotFoundOnEmptyBase, common.ErrNoDetailData)
	}

	rows, err := countBy(ctx, s.cols.Reviews, base, "overall_sentiment_detail", false, 0)
	if err != nil {
		return nil, err
	}

	out = &reportdto.OverallDetailReport{
		OverallSentimentDetail: map[string]reportdto.DetailShare{},
		TotalReviews:           total,
	}
	for _, r := range rows {
		if strings.TrimSpace(r.ID) == "" || r.Count == 0 {
			continue
		}
		pct := utility.Percent(r.Count, total)
		if pct < s.opts.DetailMinShare {
			continue
		}
		out.OverallSentimentDetail[r.ID] = reportdto.DetailShare{Count: r.Count, Percentage: pct}
	}

	if out.LastUpdated, err = lastUpdated(ctx, s.cols.Reviews, base, now); err != nil {
		return nil, err
	}
	return out, nil
}

// DetailCategories - /report/detail_categories (days mặc định 30). Bước 1 đọc collection
// emotion detail; nếu rỗng và policy cho phép, bước 2 đọc collection pre-saved với cùng
// predicate. Mỗi nhãn lấy dòng đầu tiên.
func (s *ReportService) DetailCategories(ctx context.Context, q reportdto.FilterQuery) (out *reportdto.DetailCategoryReport, err error) {
	defer s.track("detail_categories", time.Now(), &err)

	f := DaysFilter(reportdto.FilterQuery{Platform: q.Platform, Company: q.Company, Days: q.Days}, 30, s.now())
	match := with(f.bsonOn("created_at"), bson.M{"overall_sentiment_detail": bson.M{"$ne": ""}})

	rows, err := findEmotionDetails(ctx, s.cols.EmotionDetails, match)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 && s.opts.DetailFallback == DetailFallbackPreSaved && s.cols.PreSavedDetails != nil {
		logger.WithModuleAndCollection("report", s.cols.PreSavedDetails.Name()).
			Info("No emotion detail rows in window, falling back to pre-saved data")
		if rows, err = findEmotionDetails(ctx, s.cols.PreSavedDetails, match); err != nil {
			return nil, err
		}
	}

	seen := map[string]bool{}
	out = &reportdto.DetailCategoryReport{Details: []reportdto.DetailCategoryItem{}}
	for _, row := range rows {
		if seen[row.OverallSentimentDetail] {
			continue
		}
		seen[row.OverallSentimentDetail] = true
		out.Details = append(out.Details, reportdto.DetailCategoryItem{
			OverallSentimentDetail:       row.OverallSentimentDetail,
			Categories:                   orEmpty(row.Categories),
			OverallSentimentalCategories: orEmpty(row.OverallSentimentalCategories),
			Summary:                      row.Summary,
		})
	}
	sort.SliceStable(out.Details, func(i, j int) bool {
		return out.Details[i].OverallSentimentDetail < out.Details[j].OverallSentimentDetail
	})
	return out, nil
}

func findEmotionDetails(ctx context.Context, col database.Collection, match bson.M) ([]models.EmotionDetail, error) {
	if col == nil {
		return nil, nil
	}
	cursor, err := col.Find(ctx, match)
	if err != nil {
		return nil, storeErr(err)
	}
	rows, err := database.DecodeAll[models.EmotionDetail](ctx, cursor)
	if err != nil {
		return nil, storeErr(err)
	}
	return rows, nil
}

func percentMap(rows []groupCount, total int64) map[string]float64 {
	m := make(map[string]float64, len(rows))
	for _, r := range rows {
		m[r.ID] = utility.Percent(r.Count, total)
	}
	return m
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
