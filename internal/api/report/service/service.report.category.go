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

// CategoryTable - /report/category_table: top overall_sentimental_category (đã humanize).
func (s *ReportService) CategoryTable(ctx context.Context, q reportdto.CategoryTableQuery) (out *reportdto.CategoryTableReport, err error) {
	defer s.track("category_table", time.Now(), &err)

	match := with(BuildReviewFilter(dateRangeOnly(q.FilterQuery), s.now()).BSON(),
		bson.M{"overall_sentimental_category": bson.M{"$ne": ""}})
	if q.Sentiment != nil && *q.Sentiment != "" {
		match["overall_sentiment"] = *q.Sentiment
	}

	rows, err := countBy(ctx, s.cols.Reviews, match, "overall_sentimental_category", true, q.Limit)
	if err != nil {
		return nil, err
	}

	rows = sortedDesc(rows, q.Limit)
	out = &reportdto.CategoryTableReport{Table: make([]reportdto.CategoryTableRow, 0, len(rows))}
	for _, r := range rows {
		out.Table = append(out.Table, reportdto.CategoryTableRow{Category: utility.HumanizeLabel(r.ID), Count: r.Count})
	}
	return out, nil
}

type categoryGroup struct {
	ID struct {
		Category  string `bson:"category"`
		Sentiment string `bson:"sentiment"`
		Subcat    string `bson:"subcat"`
	} `bson:"_id"`
	Count int64 `bson:"count"`
}

// CategorySentimentDetails - /report/category_sentiment_details (days mặc định 60):
// positive/negative count và subcategory map cho từng category, sắp theo tên category.
func (s *ReportService) CategorySentimentDetails(ctx context.Context, q reportdto.FilterQuery) (out *reportdto.CategorySentimentReport, err error) {
	defer s.track("category_sentiment_details", time.Now(), &err)

	f := DaysFilter(reportdto.FilterQuery{Platform: q.Platform, Company: q.Company, Days: q.Days}, 60, s.now())
	pipeline := []bson.M{
		{"$match": with(f.BSON(), bson.M{"category": bson.M{"$ne": ""}})},
		{"$group": bson.M{
			"_id": bson.M{
				"category":  "$category",
				"sentiment": "$overall_sentiment",
				"subcat":    "$overall_sentimental_category",
			},
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id.category": 1}},
	}
	rows, err := aggregate[categoryGroup](ctx, s.cols.Reviews, pipeline)
	if err != nil {
		return nil, err
	}

	byCategory := map[string]*reportdto.CategorySentimentItem{}
	var order []string
	for _, r := range rows {
		item, ok := byCategory[r.ID.Category]
		if !ok {
			item = &reportdto.CategorySentimentItem{
				Category:        r.ID.Category,
				PositiveSubcats: map[string]int64{},
				NegativeSubcats: map[string]int64{},
			}
			byCategory[r.ID.Category] = item
			order = append(order, r.ID.Category)
		}
		switch r.ID.Sentiment {
		case models.SentimentPositive:
			item.PositiveCount += r.Count
			item.PositiveSubcats[r.ID.Subcat] += r.Count
		case models.SentimentNegative:
			item.NegativeCount += r.Count
			item.NegativeSubcats[r.ID.Subcat] += r.Count
		}
	}
	sort.Strings(order)

	out = &reportdto.CategorySentimentReport{CategorySentiment: make([]reportdto.CategorySentimentItem, 0, len(order))}
	for _, cat := range order {
		out.CategorySentiment = append(out.CategorySentiment, *byCategory[cat])
	}
	return out, nil
}

// CategoryAnalysis - /report/category_analysis. Không khớp review nào thì trả shape toàn
// số 0 kèm danh sách category của company, không trả lỗi not-found.
func (s *ReportService) CategoryAnalysis(ctx context.Context, q reportdto.CategoryAnalysisQuery) (out *reportdto.CategoryAnalysisReport, err error) {
	defer s.track("category_analysis", time.Now(), &err)

	base := bson.M{"category": q.Category}
	scope := bson.M{}
	if q.Company != nil && *q.Company != "" {
		base["company"] = *q.Company
		scope["company"] = *q.Company
	}

	out = &reportdto.CategoryAnalysisReport{
		Category:              q.Category,
		SentimentCounts:       map[string]float64{models.SentimentPositive: 0, models.SentimentNegative: 0, models.SentimentNeutral: 0},
		DetailCounts:          map[string]int64{},
		Pros:                  []string{},
		Cons:                  []string{},
		SentimentalCategories: []string{},
	}

	total, err := count(ctx, s.cols.Reviews, base)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		if err = emptyBase(ZeroFillOnEmptyBase, nil); err != nil {
			return nil, err
		}
		if out.AvailableCategories, err = s.availableCategories(ctx, scope); err != nil {
			return nil, err
		}
		return out, nil
	}

	sentiments, err := countBy(ctx, s.cols.Reviews, base, "overall_sentiment", false, 0)
	if err != nil {
		return nil, err
	}
	for _, r := range sentiments {
		if _, ok := out.SentimentCounts[r.ID]; ok {
			out.SentimentCounts[r.ID] = utility.Percent(r.Count, total)
		}
	}

	details, err := countBy(ctx, s.cols.Reviews, base, "overall_sentiment_detail", false, 0)
	if err != nil {
		return nil, err
	}
	for _, r := range details {
		if r.ID != "" {
			out.DetailCounts[r.ID] = r.Count
		}
	}

	pros, err := topSummaries(ctx, s.cols.Reviews, base, models.SentimentPositive, 10)
	if err != nil {
		return nil, err
	}
	cons, err := topSummaries(ctx, s.cols.Reviews, base, models.SentimentNegative, 10)
	if err != nil {
		return nil, err
	}
	out.Pros, out.Cons = keys(pros), keys(cons)

	subcats, err := countBy(ctx, s.cols.Reviews, base, "overall_sentimental_category", false, 0)
	if err != nil {
		return nil, err
	}
	for _, r := range subcats {
		if r.ID != "" {
			out.SentimentalCategories = append(out.SentimentalCategories, r.ID)
		}
	}
	sort.Strings(out.SentimentalCategories)
	return out, nil
}

func (s *ReportService) availableCategories(ctx context.Context, scope bson.M) ([]string, error) {
	values, err := s.cols.Reviews.Distinct(ctx, "category", scope)
	if err != nil {
		return nil, storeErr(err)
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if str, ok := v.(string); ok && str != "" {
			out = append(out, str)
		}
	}
	sort.Strings(out)
	return out, nil
}
