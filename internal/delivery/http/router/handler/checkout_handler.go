package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler serves the order workflow endpoints.
type CheckoutHandler struct {
	uc         usecase.CheckoutUsecase
	receiptSvc service.ReceiptService
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, receiptSvc service.ReceiptService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:         uc,
		receiptSvc: receiptSvc,
		logger:     logger,
	}
}

// InitiateCheckout returns the checkout form data: the product being bought
// and prefill values from the caller's account and profile.
func (h *CheckoutHandler) InitiateCheckout(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.uc.InitiateCheckout(c.Request().Context(), userID, c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"product":         toProductView(output.Product),
		"initial_name":    output.InitialName,
		"initial_email":   output.InitialEmail,
		"initial_address": output.InitialAddress,
	}, "Checkout initiated")
}

// SubmitCheckout validates the submitted form and records the order.
func (h *CheckoutHandler) SubmitCheckout(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.SubmitCheckoutInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	orderID, err := h.uc.SubmitCheckout(c.Request().Context(), userID, c.Param("slug"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"order_id": orderID.String(),
	}, "Order placed successfully")
}

// GetOrder returns one order of the caller, with a scannable receipt embedded.
func (h *CheckoutHandler) GetOrder(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	view := toOrderView(order)

	// The receipt is decoration on the success page; a QR failure must not
	// hide the order itself.
	if qr, qrErr := h.receiptSvc.OrderReceiptQR(order.ID); qrErr == nil {
		view.ReceiptQR = base64.StdEncoding.EncodeToString(qr)
	} else {
		h.logger.Warn("Failed to render order receipt QR",
			slog.String("order_id", order.ID.String()),
			slog.String("error", qrErr.Error()),
		)
	}

	return response.Success(c, http.StatusOK, view, "Order retrieved")
}

// ListOrders returns the caller's order history, newest first.
func (h *CheckoutHandler) ListOrders(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, toOrderView(order))
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"orders": views,
	}, "Orders retrieved")
}

// currentUserID reads the authenticated user id set by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}

// OrderView is the outward representation of a recorded order.
type OrderView struct {
	ID            string       `json:"id"`
	Product       *ProductView `json:"product,omitempty"`
	FullName      string       `json:"full_name"`
	Email         string       `json:"email"`
	Address       string       `json:"address"`
	PaymentMethod string       `json:"payment_method"`
	Amount        string       `json:"amount"`
	CreatedAt     time.Time    `json:"created_at"`
	ReceiptQR     string       `json:"receipt_qr,omitempty"` // base64-encoded PNG
}

func toOrderView(order *entity.Order) *OrderView {
	if order == nil {
		return nil
	}

	return &OrderView{
		ID:            order.ID.String(),
		Product:       toProductView(order.Product),
		FullName:      order.FullName,
		Email:         order.Email,
		Address:       order.Address,
		PaymentMethod: order.PaymentMethod.String(),
		Amount:        order.Amount.StringFixed(2),
		CreatedAt:     order.CreatedAt,
	}
}
