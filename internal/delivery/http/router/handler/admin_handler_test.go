package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mockUC "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminHandler_NullBodyRejected(t *testing.T) {
	productID := uuid.New().String()

	tests := []struct {
		name   string
		method string
		target string
		call   func(h *AdminHandler, c echo.Context) error
		withID bool
	}{
		{"create category", http.MethodPost, "/admin/categories", func(h *AdminHandler, c echo.Context) error { return h.CreateCategory(c) }, false},
		{"create product", http.MethodPost, "/admin/products", func(h *AdminHandler, c echo.Context) error { return h.CreateProduct(c) }, false},
		{"update product", http.MethodPut, "/admin/products/" + productID, func(h *AdminHandler, c echo.Context) error { return h.UpdateProduct(c) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUC.NewMockAdminUsecase(t)
			handler := NewAdminHandler(uc, discardLogger())

			e := echo.New()
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader("null"))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.withID {
				c.SetParamNames("id")
				c.SetParamValues(productID)
			}

			err := tt.call(handler, c)

			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
		})
	}
}
