package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iswarpatel123/braintree-render/internal/client"
	"github.com/iswarpatel123/braintree-render/internal/dto"
	"github.com/iswarpatel123/braintree-render/internal/service"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

func (h *CheckoutHandler) Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.PingResponse{
		OK:      true,
		Message: "pong",
	})
}

func (h *CheckoutHandler) ClientToken(c echo.Context) error {
	ctx := c.Request().Context()

	token, err := h.checkoutService.GenerateClientToken(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ClientTokenResponse{
			OK:      false,
			Message: "Failed to generate client token",
			Error:   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, dto.ClientTokenResponse{
		OK:          true,
		ClientToken: token,
	})
}

func (h *CheckoutHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.CheckoutResponse{
			OK:      false,
			Message: "Invalid request payload",
		})
	}

	result, err := h.checkoutService.ProcessCheckout(ctx, &req)

	var declineErr *service.DeclineError
	var persistErr *service.PersistenceError
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, dto.CheckoutResponse{
			OK:            true,
			OrderID:       result.OrderID,
			TransactionID: result.TransactionID,
		})
	case errors.Is(err, service.ErrMissingFields):
		return c.JSON(http.StatusBadRequest, dto.CheckoutResponse{
			OK:      false,
			Message: "Missing required fields",
		})
	case errors.As(err, &declineErr):
		return c.JSON(http.StatusBadRequest, dto.CheckoutResponse{
			OK:      false,
			Message: declineErr.Status,
		})
	case errors.As(err, &persistErr):
		return c.JSON(http.StatusInternalServerError, dto.CheckoutResponse{
			OK:            false,
			Message:       "Payment processed but order creation failed. Please contact support.",
			TransactionID: persistErr.TransactionID,
		})
	default:
		return c.JSON(http.StatusInternalServerError, dto.CheckoutResponse{
			OK:    false,
			Error: err.Error(),
		})
	}
}

func (h *CheckoutHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	orderID := c.Param("orderID")
	if orderID == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"ok":      false,
			"message": "missing order id",
		})
	}

	order, err := h.checkoutService.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, client.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"ok":      false,
				"message": "Order not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"ok":    false,
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"ok":    true,
		"order": order,
	})
}

func (h *CheckoutHandler) ListReconciliation(c echo.Context) error {
	ctx := c.Request().Context()

	records, err := h.checkoutService.ListUnresolved(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"ok":    false,
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"ok":      true,
		"records": records,
	})
}
