package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "validation",
			err:      fmt.Errorf("wrap: %w", apperr.NewValidation("page must be a number")),
			wantCode: http.StatusBadRequest,
			wantBody: "page must be a number",
		},
		{
			name:     "not found",
			err:      apperr.NewNotFound("resource", "r-9"),
			wantCode: http.StatusNotFound,
			wantBody: "resource r-9 not found",
		},
		{
			name:     "echo http error",
			err:      echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"),
			wantCode: http.StatusMethodNotAllowed,
			wantBody: "nope",
		},
		{
			name:     "anything else",
			err:      errors.New("db down"),
			wantCode: http.StatusInternalServerError,
			wantBody: "internal server error",
		},
	}

	handler := apperr.GlobalErrorHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			handler(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
