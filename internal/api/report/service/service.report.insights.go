package reportsvc

import (
	"context"
	"errors"
	"time"

	"sentiment_dashboard/core/common"
	reportdto "sentiment_dashboard/internal/api/report/dto"
	"sentiment_dashboard/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ShopifyInsights - /shopify_insights: echo các field của document lifetime đầu tiên.
func (s *ReportService) ShopifyInsights(ctx context.Context) (out *reportdto.ShopifyInsightsReport, err error) {
	defer s.track("shopify_insights", time.Now(), &err)

	var doc bson.M
	err = s.cols.LifetimeInsights.FindOne(ctx, bson.M{}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, common.ErrInsightsNotFound
	}
	if err != nil {
		return nil, storeErr(err)
	}

	n := utility.NormalizeDocument(doc)
	return &reportdto.ShopifyInsightsReport{
		Company:             n["company"],
		TotalGrossSales:     n["total_gross_sales"],
		TotalCustomers:      n["total_customers"],
		TotalOrders:         n["total_orders"],
		BestSellingProducts: n["best_selling_products"],
	}, nil
}
