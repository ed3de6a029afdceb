package router

import (
	apirouter "sentiment_dashboard/internal/api/router"
	reporthdl "sentiment_dashboard/internal/api/report/handler"

	"github.com/gofiber/fiber/v3"
)

// Register trả về hàm đăng ký route report. auth là nil khi report mở công khai
// (REPORT_REQUIRE_AUTH=false).
func Register(h *reporthdl.ReportHandler, auth fiber.Handler) apirouter.RegisterFunc {
	return func(root fiber.Router, r *apirouter.Router) error {
		var mws []fiber.Handler
		if auth != nil {
			mws = append(mws, auth)
		}

		report := apirouter.RegisterGroupWithMiddleware(root, "/report", mws)
		report.Get("/overall_by_platform", h.HandleOverallByPlatform)
		report.Get("/trends", h.HandleTrends)
		report.Get("/monthly_feedback", h.HandleMonthlyFeedback)
		report.Get("/negative_trends", h.HandleNegativeTrends)
		report.Get("/pros_cons", h.HandleProsCons)
		report.Get("/category_table", h.HandleCategoryTable)
		report.Get("/detailed", h.HandleDetailed)
		report.Get("/top_pros_cons", h.HandleTopProsCons)
		report.Get("/platform_comparison", h.HandlePlatformComparison)
		report.Get("/overall_detail", h.HandleOverallDetail)
		report.Get("/category_sentiment_details", h.HandleCategorySentimentDetails)
		report.Get("/detail_categories", h.HandleDetailCategories)
		report.Get("/category_analysis", h.HandleCategoryAnalysis)
		report.Get("/issue_details", h.HandleIssueDetails)
		report.Get("/monthly_analysis", h.HandleMonthlyAnalysis)
		report.Get("/available_months", h.HandleAvailableMonths)

		apirouter.RegisterRouteWithMiddleware(root, "/reviews", fiber.MethodGet, "", mws, h.HandleReviews)
		apirouter.RegisterRouteWithMiddleware(root, "/shopify_insights", fiber.MethodGet, "", mws, h.HandleShopifyInsights)
		return nil
	}
}
