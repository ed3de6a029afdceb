package reportsvc

import (
	"context"
	"sort"
	"time"

	reportdto "sentiment_dashboard/internal/api/report/dto"
	"sentiment_dashboard/internal/api/report/models"
	"sentiment_dashboard/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
)

type monthSentiments struct {
	Month      string `bson:"_id"`
	Sentiments []struct {
		Sentiment string `bson:"sentiment"`
		Count     int64  `bson:"count"`
	} `bson:"sentiments"`
}

// Trends - /report/trends: số review theo tháng và sentiment, tháng tăng dần,
// sentiment vắng mặt = 0. Review không có time_period thì không có tháng và bị bỏ qua.
func (s *ReportService) Trends(ctx context.Context, q reportdto.FilterQuery) (out *reportdto.TrendReport, err error) {
	defer s.track("trends", time.Now(), &err)

	f := BuildReviewFilter(reportdto.FilterQuery{Platform: q.Platform, Company: q.Company, Days: q.Days}, s.now())
	pipeline := []bson.M{
		{"$match": f.WithSentiments(models.Sentiments...)},
		{"$project": bson.M{"year_month": yearMonthOf("time_period"), "overall_sentiment": 1}},
		{"$group": bson.M{
			"_id":   bson.M{"year_month": "$year_month", "sentiment": "$overall_sentiment"},
			"count": bson.M{"$sum": 1},
		}},
		{"$group": bson.M{
			"_id":        "$_id.year_month",
			"sentiments": bson.M{"$push": bson.M{"sentiment": "$_id.sentiment", "count": "$count"}},
		}},
		{"$sort": bson.M{"_id": 1}},
	}
	rows, err := aggregate[monthSentiments](ctx, s.cols.Reviews, pipeline)
	if err != nil {
		return nil, err
	}

	out = &reportdto.TrendReport{Trends: make([]reportdto.TrendPoint, 0, len(rows))}
	for _, row := range rows {
		if row.Month == "" {
			continue
		}
		p := reportdto.TrendPoint{Month: row.Month}
		for _, item := range row.Sentiments {
			switch item.Sentiment {
			case models.SentimentPositive:
				p.Positive = item.Count
			case models.SentimentNegative:
				p.Negative = item.Count
			case models.SentimentNeutral:
				p.Neutral = item.Count
			}
		}
		out.Trends = append(out.Trends, p)
	}
	sort.SliceStable(out.Trends, func(i, j int) bool { return out.Trends[i].Month < out.Trends[j].Month })
	return out, nil
}

// NegativeTrends - /report/negative_trends: số review negative theo tháng.
func (s *ReportService) NegativeTrends(ctx context.Context, q reportdto.FilterQuery) (out *reportdto.NegativeTrendReport, err error) {
	defer s.track("negative_trends", time.Now(), &err)

	f := BuildReviewFilter(reportdto.FilterQuery{Platform: q.Platform, Company: q.Company, StartDate: q.StartDate, EndDate: q.EndDate}, s.now())
	pipeline := []bson.M{
		{"$match": f.WithSentiment(models.SentimentNegative)},
		{"$project": bson.M{"year_month": yearMonthOf("time_period")}},
		{"$group": bson.M{"_id": "$year_month", "count": bson.M{"$sum": 1}}},
		{"$sort": bson.M{"_id": 1}},
	}
	rows, err := aggregate[groupCount](ctx, s.cols.Reviews, pipeline)
	if err != nil {
		return nil, err
	}

	out = &reportdto.NegativeTrendReport{Trends: make([]reportdto.NegativeTrendPoint, 0, len(rows))}
	for _, r := range rows {
		if r.ID == "" {
			continue
		}
		out.Trends = append(out.Trends, reportdto.NegativeTrendPoint{Month: r.ID, Negative: r.Count})
	}
	sort.SliceStable(out.Trends, func(i, j int) bool { return out.Trends[i].Month < out.Trends[j].Month })
	return out, nil
}

type monthCategories struct {
	Month      string `bson:"_id"`
	Categories []struct {
		Category  string `bson:"category"`
		Sentiment string `bson:"sentiment"`
		Count     int64  `bson:"count"`
	} `bson:"categoryData"`
}

// MonthlyFeedback - /report/monthly_feedback: top 3 category positive và negative mỗi tháng.
func (s *ReportService) MonthlyFeedback(ctx context.Context, q reportdto.FilterQuery) (out *reportdto.MonthlyFeedbackReport, err error) {
	defer s.track("monthly_feedback", time.Now(), &err)

	f := BuildReviewFilter(reportdto.FilterQuery{Platform: q.Platform, Company: q.Company, Days: q.Days}, s.now())
	match := f.WithSentiments(models.SentimentPositive, models.SentimentNegative)
	// time_period must exist; the day window, when present, stays on the same field.
	tp := bson.M{"$exists": true, "$ne": nil}
	for k, v := range f.window() {
		tp[k] = v
	}
	match["time_period"] = tp

	pipeline := []bson.M{
		{"$match": match},
		{"$project": bson.M{
			"year_month": yearMonthOf("time_period"),
			"category":   "$overall_sentimental_category",
			"sentiment":  "$overall_sentiment",
		}},
		{"$group": bson.M{
			"_id":   bson.M{"month": "$year_month", "category": "$category", "sentiment": "$sentiment"},
			"count": bson.M{"$sum": 1},
		}},
		{"$group": bson.M{
			"_id": "$_id.month",
			"categoryData": bson.M{"$push": bson.M{
				"category":  "$_id.category",
				"sentiment": "$_id.sentiment",
				"count":     "$count",
			}},
		}},
		{"$sort": bson.M{"_id": 1}},
	}
	rows, err := aggregate[monthCategories](ctx, s.cols.Reviews, pipeline)
	if err != nil {
		return nil, err
	}

	out = &reportdto.MonthlyFeedbackReport{Data: make([]reportdto.MonthlyFeedbackItem, 0, len(rows))}
	for _, row := range rows {
		var pos, neg []utility.Counted
		for _, c := range row.Categories {
			switch c.Sentiment {
			case models.SentimentPositive:
				pos = append(pos, utility.Counted{Key: c.Category, Count: c.Count})
			case models.SentimentNegative:
				neg = append(neg, utility.Counted{Key: c.Category, Count: c.Count})
			}
		}
		out.Data = append(out.Data, reportdto.MonthlyFeedbackItem{
			Month:       row.Month,
			TopPositive: humanizedTop(pos, models.SentimentPositive, 3),
			TopNegative: humanizedTop(neg, models.SentimentNegative, 3),
		})
	}
	sort.SliceStable(out.Data, func(i, j int) bool { return out.Data[i].Month < out.Data[j].Month })
	return out, nil
}

func humanizedTop(items []utility.Counted, sentiment string, n int) []reportdto.CategoryCount {
	top := utility.TopN(items, n)
	out := make([]reportdto.CategoryCount, 0, len(top))
	for _, item := range top {
		out = append(out, reportdto.CategoryCount{
			Category:  utility.HumanizeLabel(item.Key),
			Sentiment: sentiment,
			Count:     item.Count,
		})
	}
	return out
}
