// Package reporthdl chứa các HTTP handler cho report sentiment.
package reporthdl

import (
	basehdl "sentiment_dashboard/internal/api/base/handler"
	reportsvc "sentiment_dashboard/internal/api/report/service"

	"github.com/gofiber/fiber/v3"
)

// ReportHandler parse query, gọi ReportService và ghi kết quả.
type ReportHandler struct {
	svc *reportsvc.ReportService
}

// NewReportHandler tạo ReportHandler.
func NewReportHandler(svc *reportsvc.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// HandleOverallByPlatform - GET /report/overall_by_platform
func (h *ReportHandler) HandleOverallByPlatform(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		q, err := filterQuery(c)
		if err != nil {
			return basehdl.WriteError(c, err)
		}
		out, err := h.svc.OverallByPlatform(c.Context(), q)
		return basehdl.WriteResult(c, out, err)
	})
}

// HandleTrends - GET /report/trends
func (h *ReportHandler) HandleTrends(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		q, err := filterQuery(c)
		if err != nil {
			return basehdl.WriteError(c, err)
		}
		out, err := h.svc.Trends(c.Context(), q)
		return basehdl.WriteResult(c, out, err)
	})
}

// HandleMonthlyFeedback - GET /report/monthly_feedback
func (h *ReportHandler) HandleMonthlyFeedback(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		q, err := filterQuery(c)
		if err != nil {
			return basehdl.WriteError(c, err)
		}
		out, err := h.svc.MonthlyFeedback(c.Context(), q)
		return basehdl.WriteResult(c, out, err)
	})
}

// HandleNegativeTrends - GET /report/negative_trends
func (h *ReportHandler) HandleNegativeTrends(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		q, err := filterQuery(c)
		if err != nil {
			return basehdl.WriteError(c, err)
		}
		out, err := h.svc.NegativeTrends(c.Context(), q)
		return basehdl.WriteResult(c, out, err)
	})
}

// HandleProsCons - GET /report/pros_cons
func (h *ReportHandler) HandleProsCons(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		q, err := filterQuery(c)
		if err != nil {
			return basehdl.WriteError(c, err)
		}
		out, err := h.svc.ProsCons(c.Context(), q)
		return basehdl.WriteResult(c, out, err)
	})
}

// HandleTopProsCons - GET /report/top_pros_cons
func (h *ReportHandler) HandleTopProsCons(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		q, err := filterQuery(c)
		if err != nil {
			return basehdl.WriteError(c, err)
		}
		out, err := h.svc.TopProsCons(c.Context(), q)
		return basehdl.WriteResult(c, out, err)
	})
}

// HandleCategoryTable - GET /report/category_table
func (h *ReportHandler) HandleCategoryTable(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		q, err := categoryTableQuery(c)
		if err != nil {
			return basehdl.WriteError(c, err)
		}
		out, err := h.svc.CategoryTable(c.Context(), q)
		return basehdl.WriteResult(c, out, err)
	})
}

// HandleDetailed - GET /report/detailed
func (h *ReportHandler) HandleDetailed(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		q, err := detailedQuery(c)
		if err != nil {
			return basehdl.WriteError(c, err)
		}
		out, err := h.svc.Detailed(c.Context(), q)
		return basehdl.WriteResult(c, out, err)
	})
}

// HandlePlatformComparison - GET /report/platform_comparison
func (h *ReportHandler) HandlePlatformComparison(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		q, err := filterQuery(c)
		if err != nil {
			return basehdl.WriteError(c, err)
		}
		out, err := h.svc.PlatformComparison(c.Context(), q)
		return basehdl.WriteResult(c, out, err)
	})
}

// HandleOverallDetail - GET /report/overall_detail
func (h *ReportHandler) HandleOverallDetail(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		q, err := filterQuery(c)
		if err != nil {
			return basehdl.WriteError(c, err)
		}
		out, err := h.svc.OverallDetail(c.Context(), q)
		return basehdl.WriteResult(c, out, err)
	})
}

// HandleCategorySentimentDetails - GET /report/category_sentiment_details
func (h *ReportHandler) HandleCategorySentimentDetails(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		q, err := filterQuery(c)
		if err != nil {
			return basehdl.WriteError(c, err)
		}
		out, err := h.svc.CategorySentimentDetails(c.Context(), q)
		return basehdl.WriteResult(c, out, err)
	})
}

// HandleDetailCategories - GET /report/detail_categories
func (h *ReportHandler) HandleDetailCategories(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		q, err := filterQuery(c)
		if err != nil {
			return basehdl.WriteError(c, err)
		}
		out, err := h.svc.DetailCategories(c.Context(), q)
		return basehdl.WriteResult(c, out, err)
	})
}

// HandleCategoryAnalysis - GET /report/category_analysis
func (h *ReportHandler) HandleCategoryAnalysis(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		q, err := categoryAnalysisQuery(c)
		if err != nil {
			return basehdl.WriteError(c, err)
		}
		out, err := h.svc.CategoryAnalysis(c.Context(), q)
		return basehdl.WriteResult(c, out, err)
	})
}

// HandleIssueDetails - GET /report/issue_details
func (h *ReportHandler) HandleIssueDetails(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		q, err := issueDetailsQuery(c)
		if err != nil {
			return basehdl.WriteError(c, err)
		}
		out, err := h.svc.IssueDetails(c.Context(), q)
		return basehdl.WriteResult(c, out, err)
	})
}

// HandleReviews - GET /reviews
func (h *ReportHandler) HandleReviews(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		q, err := reviewListQuery(c)
		if err != nil {
			return basehdl.WriteError(c, err)
		}
		out, err := h.svc.Reviews(c.Context(), q)
		return basehdl.WriteResult(c, out, err)
	})
}

// HandleMonthlyAnalysis - GET /report/monthly_analysis
func (h *ReportHandler) HandleMonthlyAnalysis(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		q, err := monthlyAnalysisQuery(c)
		if err != nil {
			return basehdl.WriteError(c, err)
		}
		out, err := h.svc.MonthlyAnalysis(c.Context(), q)
		return basehdl.WriteResult(c, out, err)
	})
}

// HandleAvailableMonths - GET /report/available_months
func (h *ReportHandler) HandleAvailableMonths(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		q, err := availableMonthsQuery(c)
		if err != nil {
			return basehdl.WriteError(c, err)
		}
		out, err := h.svc.AvailableMonths(c.Context(), q)
		return basehdl.WriteResult(c, out, err)
	})
}

// HandleShopifyInsights - GET /shopify_insights
func (h *ReportHandler) HandleShopifyInsights(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		out, err := h.svc.ShopifyInsights(c.Context())
		return basehdl.WriteResult(c, out, err)
	})
}
