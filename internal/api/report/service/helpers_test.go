package reportsvc

import (
	"context"
	"testing"
	"time"

	"sentiment_dashboard/internal/database/databasetest"
	"sentiment_dashboard/internal/summarizer"

	"go.mongodb.org/mongo-driver/bson"
)

var fixedNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	reviews  *databasetest.FakeCollection
	rollups  *databasetest.FakeCollection
	insights *databasetest.FakeCollection
	emotions *databasetest.FakeCollection
	presaved *databasetest.FakeCollection
	sum      *stubSummarizer
}

func newFixture() *fixture {
	return &fixture{
		reviews:  &databasetest.FakeCollection{CollectionName: "sentimental_analysis"},
		rollups:  &databasetest.FakeCollection{CollectionName: "sentimental_analysis_monthly"},
		insights: &databasetest.FakeCollection{CollectionName: "shopify_insights_lifetime"},
		emotions: &databasetest.FakeCollection{CollectionName: "sentimental_emotion_analysis_detail"},
		presaved: &databasetest.FakeCollection{CollectionName: "sentimental_analysis_pre_save_data"},
		sum:      &stubSummarizer{},
	}
}

func (f *fixture) service(opts Options) *ReportService {
	if opts.Now == nil {
		opts.Now = func() time.Time { return fixedNow }
	}
	return NewReportServiceWithCollections(Collections{
		Reviews:          f.reviews,
		MonthlyRollups:   f.rollups,
		LifetimeInsights: f.insights,
		EmotionDetails:   f.emotions,
		PreSavedDetails:  f.presaved,
	}, opts, f.sum)
}

type stubSummarizer struct {
	pros, cons []string
	result     *summarizer.ProsCons
	err        error
}

func (s *stubSummarizer) Summarize(_ context.Context, pros, cons []string) (*summarizer.ProsCons, error) {
	s.pros, s.cons = pros, cons
	if s.err != nil {
		return nil, s.err
	}
	if s.result == nil {
		return &summarizer.ProsCons{}, nil
	}
	return s.result, nil
}

// stage trả về stage có key op (vd "$match") của pipeline.
func stage(t *testing.T, pipeline interface{}, op string) bson.M {
	t.Helper()
	for _, st := range pipeline.([]bson.M) {
		if v, ok := st[op]; ok {
			if m, ok := v.(bson.M); ok {
				return m
			}
		}
	}
	return nil
}

// groupField trả về "$field" của $group đầu tiên khi _id là string.
func groupField(pipeline interface{}) string {
	for _, st := range pipeline.([]bson.M) {
		if g, ok := st["$group"].(bson.M); ok {
			if id, ok := g["_id"].(string); ok {
				return id
			}
			return ""
		}
	}
	return ""
}

func matchOf(pipeline interface{}) bson.M {
	for _, st := range pipeline.([]bson.M) {
		if m, ok := st["$match"].(bson.M); ok {
			return m
		}
	}
	return nil
}

func counts(pairs ...interface{}) []interface{} {
	out := make([]interface{}, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, bson.M{"_id": pairs[i], "count": int32(pairs[i+1].(int))})
	}
	return out
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
