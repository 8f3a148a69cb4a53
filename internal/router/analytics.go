package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/analytics"
	"github.com/labstack/echo/v4"
)

const defaultAnalyticsLimit = 10

type AnalyticsRouter struct {
	e         *echo.Echo
	analytics *analytics.Service
}

func NewAnalyticsRouter(e *echo.Echo, svc *analytics.Service) *AnalyticsRouter {
	return &AnalyticsRouter{e: e, analytics: svc}
}

func (r *AnalyticsRouter) Bind() {
	g := r.e.Group(apiPrefix + "/analytics")
	g.GET("/categories", r.categoriesHandler)
	g.GET("/trending", r.trendingHandler)
	g.GET("/feedback", r.feedbackHandler)
}

// @Summary Category popularity
// @Tags analytics
// @Produce json
// @Param kind query string false "faq or resource"
// @Router /api/v1/analytics/categories [get]
func (r *AnalyticsRouter) categoriesHandler(c echo.Context) error {
	kind, err := kindQueryParam(c)
	if err != nil {
		return err
	}
	stats, err := r.analytics.Categories(c.Request().Context(), kind)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// @Summary Most viewed records per day
// @Tags analytics
// @Produce json
// @Param kind query string false "faq or resource"
// @Param limit query int false "Maximum items"
// @Router /api/v1/analytics/trending [get]
func (r *AnalyticsRouter) trendingHandler(c echo.Context) error {
	kind, err := kindQueryParam(c)
	if err != nil {
		return err
	}
	limit, err := intQueryParam(c, "limit", defaultAnalyticsLimit)
	if err != nil {
		return err
	}
	items, err := r.analytics.Trending(c.Request().Context(), kind, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// @Summary FAQ feedback overview
// @Tags analytics
// @Produce json
// @Param limit query int false "Maximum least helpful items"
// @Router /api/v1/analytics/feedback [get]
func (r *AnalyticsRouter) feedbackHandler(c echo.Context) error {
	limit, err := intQueryParam(c, "limit", defaultAnalyticsLimit)
	if err != nil {
		return err
	}
	report, err := r.analytics.Feedback(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}
