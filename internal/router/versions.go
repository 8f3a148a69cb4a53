package router

import (
	"net/http"
	"strconv"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/apperr"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/versioning"
	"github.com/labstack/echo/v4"
)

type VersionRouter struct {
	e        *echo.Echo
	versions *versioning.Service
}

func NewVersionRouter(e *echo.Echo, versions *versioning.Service) *VersionRouter {
	return &VersionRouter{e: e, versions: versions}
}

type UpdateRequest struct {
	Fields map[string]content.Value `json:"fields"`
	Author string                   `json:"author"`
	Note   string                   `json:"note"`
}

type DiffRequest struct {
	Previous *content.Record `json:"previous"`
	Current  content.Record  `json:"current"`
}

func (r *VersionRouter) Bind() {
	g := r.e.Group(apiPrefix)
	for _, ks := range kindSegments {
		kind := ks.kind
		g.PUT("/"+ks.segment+"/:id", func(c echo.Context) error { return r.updateHandler(c, kind) })
		g.GET("/"+ks.segment+"/:id/versions", func(c echo.Context) error { return r.listHandler(c, kind) })
		g.GET("/"+ks.segment+"/:id/versions/compare", func(c echo.Context) error { return r.compareHandler(c, kind) })
		g.POST("/"+ks.segment+"/:id/versions/:version/restore", func(c echo.Context) error { return r.restoreHandler(c, kind) })
	}
	g.POST("/diff", r.diffHandler)
}

// updateHandler godoc
// @Summary Edit record fields and commit a new version
// @Tags versions
// @Accept json
// @Produce json
// @Param kind path string true "Content kind" Enums(faqs, resources)
// @Param id path string true "Record id"
// @Param body body UpdateRequest true "Field edits"
// @Success 200 {object} versioning.Commit
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/{kind}/{id} [put]
func (r *VersionRouter) updateHandler(c echo.Context, kind content.Kind) error {
	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid update body", err)
	}

	commit, err := r.versions.Update(c.Request().Context(), kind, c.Param("id"), req.Fields, req.Author, req.Note)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, commit)
}

// listHandler godoc
// @Summary List the versions of a record
// @Tags versions
// @Produce json
// @Param kind path string true "Content kind" Enums(faqs, resources)
// @Param id path string true "Record id"
// @Success 200 {array} versioning.Version
// @Router /api/v1/{kind}/{id}/versions [get]
func (r *VersionRouter) listHandler(c echo.Context, kind content.Kind) error {
	return c.JSON(http.StatusOK, r.versions.Versions(kind, c.Param("id")))
}

// compareHandler godoc
// @Summary Compare two versions of a record
// @Tags versions
// @Produce json
// @Param kind path string true "Content kind" Enums(faqs, resources)
// @Param id path string true "Record id"
// @Param from query int true "Older version"
// @Param to query int true "Newer version"
// @Success 200 {object} versioning.Comparison
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/{kind}/{id}/versions/compare [get]
func (r *VersionRouter) compareHandler(c echo.Context, kind content.Kind) error {
	from, err := intQueryParam(c, "from", 0)
	if err != nil {
		return err
	}
	to, err := intQueryParam(c, "to", 0)
	if err != nil {
		return err
	}
	if from == 0 || to == 0 {
		return apperr.NewValidation("from and to are required")
	}

	cmp, err := r.versions.Compare(c.Request().Context(), kind, c.Param("id"), from, to)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cmp)
}

// restoreHandler godoc
// @Summary Restore an earlier version
// @Tags versions
// @Produce json
// @Param kind path string true "Content kind" Enums(faqs, resources)
// @Param id path string true "Record id"
// @Param version path int true "Version to restore"
// @Success 200 {object} versioning.Commit
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/{kind}/{id}/versions/{version}/restore [post]
func (r *VersionRouter) restoreHandler(c echo.Context, kind content.Kind) error {
	number, err := strconv.Atoi(c.Param("version"))
	if err != nil {
		return apperr.NewValidation("version must be a number")
	}

	commit, err := r.versions.Restore(c.Request().Context(), kind, c.Param("id"), number, c.QueryParam("author"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, commit)
}

// diffHandler godoc
// @Summary Diff two posted snapshots
// @Tags versions
// @Accept json
// @Produce json
// @Param body body DiffRequest true "Snapshots"
// @Success 200 {object} versioning.Tracked
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/diff [post]
func (r *VersionRouter) diffHandler(c echo.Context) error {
	var req DiffRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid diff body", err)
	}

	tracked, err := r.versions.Tracker().Track(c.Request().Context(), req.Previous, req.Current)
	if err != nil {
		return apperr.NewValidationWrap("cannot diff snapshots", err)
	}
	return c.JSON(http.StatusOK, tracked)
}
