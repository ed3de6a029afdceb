package reportsvc

import (
	"context"
	"time"

	"sentiment_dashboard/core/common"
	reportdto "sentiment_dashboard/internal/api/report/dto"
	"sentiment_dashboard/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
)

// OverallByPlatform - /report/overall_by_platform. Phần trăm chia cho mọi review trong
// base, kể cả review chưa gán nhãn, nên tổng có thể nhỏ hơn 100.
func (s *ReportService) OverallByPlatform(ctx context.Context, q reportdto.FilterQuery) (out *reportdto.OverallReport, err error) {
	defer s.track("overall_by_platform", time.Now(), &err)

	now := s.now()
	base := BuildReviewFilter(reportdto.FilterQuery{Platform: q.Platform, Company: q.Company, Days: q.Days}, now).BSON()

	total, err := count(ctx, s.cols.Reviews, base)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, emptyBase(NotFoundOnEmptyBase, common.ErrNoReviewData)
	}

	rows, err := countBy(ctx, s.cols.Reviews, with(base, bson.M{"overall_sentiment": bson.M{"$ne": ""}}), "overall_sentiment", false, 0)
	if err != nil {
		return nil, err
	}

	out = &reportdto.OverallReport{
		OverallSentiment: make(map[string]float64, len(rows)),
		SentimentCounts:  make(map[string]int64, len(rows)),
		TotalReviews:     total,
	}
	for _, r := range rows {
		out.OverallSentiment[r.ID] = utility.Percent(r.Count, total)
		out.SentimentCounts[r.ID] = r.Count
	}

	if out.LastUpdated, err = lastUpdated(ctx, s.cols.Reviews, base, now); err != nil {
		return nil, err
	}
	return out, nil
}

// emptyBase trả lỗi theo policy; ZeroFillOnEmptyBase trả nil để caller tự dựng shape toàn số 0.
func emptyBase(policy EmptyBasePolicy, notFound error) error {
	if policy == NotFoundOnEmptyBase {
		return notFound
	}
	return nil
}
