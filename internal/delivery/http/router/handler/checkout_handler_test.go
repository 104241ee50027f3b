package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mockSvc "storefront/internal/mocks/service"
	mockUC "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestCheckoutHandler(t *testing.T) (*CheckoutHandler, *mockUC.MockCheckoutUsecase) {
	uc := mockUC.NewMockCheckoutUsecase(t)
	receiptSvc := mockSvc.NewMockReceiptService(t)
	handler := NewCheckoutHandler(uc, receiptSvc, discardLogger())

	return handler, uc
}

func newCheckoutContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/checkout/smart-watch", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("smart-watch")
	c.Set("userID", uuid.New())

	return c, rec
}

func TestCheckoutHandler_SubmitCheckout_NullBodyRejected(t *testing.T) {
	handler, _ := createTestCheckoutHandler(t)

	// A literal JSON null binds to a nil input; the handler must answer 400
	// without forwarding it. The strict mock fails the test on any call.
	c, rec := newCheckoutContext(echo.New(), "null")

	err := handler.SubmitCheckout(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestCheckoutHandler_SubmitCheckout_MalformedBodyRejected(t *testing.T) {
	handler, _ := createTestCheckoutHandler(t)

	c, rec := newCheckoutContext(echo.New(), "{not json")

	err := handler.SubmitCheckout(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutHandler_SubmitCheckout_MissingIdentityRejected(t *testing.T) {
	handler, _ := createTestCheckoutHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/checkout/smart-watch", strings.NewReader("{}"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.SubmitCheckout(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
