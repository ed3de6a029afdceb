package reportsvc

import (
	"context"
	"time"

	"sentiment_dashboard/core/common"
	reportdto "sentiment_dashboard/internal/api/report/dto"
	"sentiment_dashboard/internal/api/report/models"
)

// ProsCons - /report/pros_cons: top 10 summary mỗi chiều được gửi cho summarizer.
func (s *ReportService) ProsCons(ctx context.Context, q reportdto.FilterQuery) (out *reportdto.ProsConsReport, err error) {
	defer s.track("pros_cons", time.Now(), &err)

	if s.summarizer == nil {
		return nil, common.ErrSummarizerDisabled
	}

	base := BuildReviewFilter(dateRangeOnly(q), s.now()).BSON()
	pos, err := topSummaries(ctx, s.cols.Reviews, base, models.SentimentPositive, 10)
	if err != nil {
		return nil, err
	}
	neg, err := topSummaries(ctx, s.cols.Reviews, base, models.SentimentNegative, 10)
	if err != nil {
		return nil, err
	}

	result, err := s.summarizer.Summarize(ctx, keys(pos), keys(neg))
	if err != nil {
		return nil, err
	}

	out = &reportdto.ProsConsReport{
		Pros: make([]reportdto.ProsConsItem, 0, len(result.Pros)),
		Cons: make([]reportdto.ProsConsItem, 0, len(result.Cons)),
	}
	for _, p := range result.Pros {
		out.Pros = append(out.Pros, reportdto.ProsConsItem{Text: p.Text, Count: p.Count})
	}
	for _, c := range result.Cons {
		out.Cons = append(out.Cons, reportdto.ProsConsItem{Text: c.Text, Count: c.Count})
	}
	return out, nil
}

// TopProsCons - /report/top_pros_cons: top 5 summary -> count mỗi chiều.
func (s *ReportService) TopProsCons(ctx context.Context, q reportdto.FilterQuery) (out *reportdto.TopProsConsReport, err error) {
	defer s.track("top_pros_cons", time.Now(), &err)

	base := BuildReviewFilter(dateRangeOnly(q), s.now()).BSON()
	pos, err := topSummaries(ctx, s.cols.Reviews, base, models.SentimentPositive, 5)
	if err != nil {
		return nil, err
	}
	neg, err := topSummaries(ctx, s.cols.Reviews, base, models.SentimentNegative, 5)
	if err != nil {
		return nil, err
	}

	out = &reportdto.TopProsConsReport{TopPros: toCountMap(pos), TopCons: toCountMap(neg)}
	return out, nil
}

// dateRangeOnly bỏ days: các report dùng start_date/end_date không nhận days.
func dateRangeOnly(q reportdto.FilterQuery) reportdto.FilterQuery {
	q.Days = nil
	return q
}

func keys(rows []groupCount) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func toCountMap(rows []groupCount) map[string]int64 {
	m := make(map[string]int64, len(rows))
	for _, r := range rows {
		m[r.ID] = r.Count
	}
	return m
}
