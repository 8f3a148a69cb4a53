package router

import (
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/apperr"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"github.com/labstack/echo/v4"
)

const apiPrefix = "/api/v1"

// kindSegments maps the URL segment of each collection to its kind
var kindSegments = []struct {
	segment string
	kind    content.Kind
}{
	{segment: "faqs", kind: content.FAQ},
	{segment: "resources", kind: content.Resource},
}

type ErrorResponse struct {
	Error string `json:"error"`
	Title string `json:"title,omitempty"`
}

func intQueryParam(c echo.Context, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.NewValidation(name + " must be a number")
	}
	return n, nil
}

func kindQueryParam(c echo.Context) (content.Kind, error) {
	raw := c.QueryParam("kind")
	if raw == "" {
		return content.FAQ, nil
	}
	kind, err := content.ParseKind(raw)
	if err != nil {
		return "", apperr.NewValidationWrap("invalid kind", err)
	}
	return kind, nil
}
