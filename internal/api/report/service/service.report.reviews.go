package reportsvc

import (
	"context"
	"time"

	reportdto "sentiment_dashboard/internal/api/report/dto"
	"sentiment_dashboard/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Reviews - /reviews: danh sách review phân trang, document giữ nguyên (ObjectID -> string).
func (s *ReportService) Reviews(ctx context.Context, q reportdto.ReviewListQuery) (out *reportdto.ReviewListReport, err error) {
	defer s.track("reviews", time.Now(), &err)

	filter := bson.M{}
	setIf(filter, "overall_sentiment", q.Sentiment)
	setIf(filter, "platform", q.Platform)
	setIf(filter, "company", q.Company)

	opts := options.Find().SetSkip(int64(q.Skip)).SetLimit(int64(q.Limit))
	docs, err := s.findDocs(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	out = &reportdto.ReviewListReport{Reviews: make([]map[string]interface{}, 0, len(docs))}
	for _, d := range docs {
		out.Reviews = append(out.Reviews, utility.NormalizeDocument(d))
	}
	return out, nil
}

// IssueDetails - /report/issue_details: review của một sentimental category.
// Category có thể là nhãn đã humanize ("Late Delivery"), được đổi lại thành token.
func (s *ReportService) IssueDetails(ctx context.Context, q reportdto.IssueDetailsQuery) (out *reportdto.ReviewListReport, err error) {
	defer s.track("issue_details", time.Now(), &err)

	filter := bson.M{"overall_sentimental_category": utility.ToCategoryToken(q.Category)}
	setIf(filter, "company", q.Company)
	setIf(filter, "overall_sentiment", q.Sentiment)

	docs, err := s.findDocs(ctx, filter, options.Find().SetLimit(int64(q.Limit)))
	if err != nil {
		return nil, err
	}

	out = &reportdto.ReviewListReport{Reviews: make([]map[string]interface{}, 0, len(docs))}
	for _, d := range docs {
		out.Reviews = append(out.Reviews, utility.NormalizeReview(d))
	}
	return out, nil
}

func (s *ReportService) findDocs(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]bson.M, error) {
	cursor, err := s.cols.Reviews.Find(ctx, filter, opts)
	if err != nil {
		return nil, storeErr(err)
	}
	defer cursor.Close(ctx)

	docs := make([]bson.M, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, storeErr(err)
	}
	return docs, nil
}

func setIf(m bson.M, key string, v *string) {
	if v != nil && *v != "" {
		m[key] = *v
	}
}
