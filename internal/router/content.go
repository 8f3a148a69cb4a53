package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/apperr"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/engagement"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/search"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage"
	"github.com/DjordjeVuckovic/sanctuary-hub/pkg/utils"
	"github.com/labstack/echo/v4"
)

type ContentRouter struct {
	e          *echo.Echo
	repo       storage.Repository
	searcher   *search.Service
	engagement *engagement.Recorder
}

func NewContentRouter(e *echo.Echo, repo storage.Repository, searcher *search.Service, recorder *engagement.Recorder) *ContentRouter {
	return &ContentRouter{
		e:          e,
		repo:       repo,
		searcher:   searcher,
		engagement: recorder,
	}
}

type FeedbackRequest struct {
	Helpful *bool `json:"helpful"`
}

type RatingRequest struct {
	Rating int `json:"rating"`
}

func (r *ContentRouter) Bind() {
	g := r.e.Group(apiPrefix)
	for _, ks := range kindSegments {
		kind := ks.kind
		g.GET("/"+ks.segment+"/search", func(c echo.Context) error { return r.searchHandler(c, kind) })
		g.GET("/"+ks.segment+"/:id", func(c echo.Context) error { return r.getHandler(c, kind) })
		g.POST("/"+ks.segment+"/:id/view", func(c echo.Context) error { return r.viewHandler(c, kind) })
	}
	g.POST("/faqs/:id/feedback", r.feedbackHandler)
	g.POST("/resources/:id/download", r.downloadHandler)
	g.POST("/resources/:id/rating", r.ratingHandler)
}

// searchHandler godoc
// @Summary Search FAQs or resources
// @Tags search
// @Produce json
// @Param kind path string true "Content kind" Enums(faqs, resources)
// @Param q query string false "Text to look for"
// @Param category query string false "Category id"
// @Param tags query string false "Comma separated tag ids"
// @Param type query string false "Resource type"
// @Param difficulty query string false "Resource difficulty"
// @Param audience query string false "Target audience"
// @Param sortBy query string false "relevance, popularity, rating, date or alphabetical"
// @Param sortOrder query string false "asc or desc"
// @Param page query int false "1-indexed page"
// @Param pageSize query int false "Items per page"
// @Success 200 {object} search.Result
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/{kind}/search [get]
func (r *ContentRouter) searchHandler(c echo.Context, kind content.Kind) error {
	page, err := intQueryParam(c, "page", 1)
	if err != nil {
		return err
	}
	pageSize, err := intQueryParam(c, "pageSize", 0)
	if err != nil {
		return err
	}

	q := search.Query{
		Text:       c.QueryParam("q"),
		CategoryID: c.QueryParam("category"),
		TagIDs:     utils.SplitList(c.QueryParam("tags")),
		Type:       c.QueryParam("type"),
		Difficulty: c.QueryParam("difficulty"),
		Audience:   c.QueryParam("audience"),
		SortBy:     search.SortBy(c.QueryParam("sortBy")),
		SortOrder:  search.SortOrder(c.QueryParam("sortOrder")),
		Page:       page,
		PageSize:   pageSize,
	}

	res, err := r.searcher.Search(c.Request().Context(), kind, q)
	if err != nil {
		return fmt.Errorf("search %s: %w", kind, err)
	}
	return c.JSON(http.StatusOK, res)
}

// getHandler godoc
// @Summary Get a record
// @Tags content
// @Produce json
// @Param kind path string true "Content kind" Enums(faqs, resources)
// @Param id path string true "Record id"
// @Success 200 {object} content.Record
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/{kind}/{id} [get]
func (r *ContentRouter) getHandler(c echo.Context, kind content.Kind) error {
	id := c.Param("id")
	rec, err := r.repo.Get(c.Request().Context(), kind, id)
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.NewNotFound(string(kind), id)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rec)
}

// feedbackHandler godoc
// @Summary Record a helpful or not helpful vote
// @Tags engagement
// @Accept json
// @Param id path string true "Record id"
// @Param body body FeedbackRequest true "Vote"
// @Success 204
// @Router /api/v1/faqs/{id}/feedback [post]
func (r *ContentRouter) feedbackHandler(c echo.Context) error {
	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid feedback body", err)
	}
	if req.Helpful == nil {
		return apperr.NewValidation("helpful is required")
	}
	if err := r.engagement.RecordFeedback(c.Request().Context(), c.Param("id"), *req.Helpful); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// downloadHandler godoc
// @Summary Record a resource download
// @Tags engagement
// @Param id path string true "Record id"
// @Success 204
// @Router /api/v1/resources/{id}/download [post]
func (r *ContentRouter) downloadHandler(c echo.Context) error {
	if err := r.engagement.RecordDownload(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ratingHandler godoc
// @Summary Rate a resource from 1 to 5
// @Tags engagement
// @Accept json
// @Param id path string true "Record id"
// @Param body body RatingRequest true "Rating"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/resources/{id}/rating [post]
func (r *ContentRouter) ratingHandler(c echo.Context) error {
	var req RatingRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid rating body", err)
	}
	if err := r.engagement.RateResource(c.Request().Context(), c.Param("id"), req.Rating); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// viewHandler godoc
// @Summary Record a view
// @Tags engagement
// @Param kind path string true "Content kind" Enums(faqs, resources)
// @Param id path string true "Record id"
// @Success 204
// @Router /api/v1/{kind}/{id}/view [post]
func (r *ContentRouter) viewHandler(c echo.Context, kind content.Kind) error {
	if err := r.engagement.RecordView(c.Request().Context(), kind, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
