package handlers

import (
	"net/http"

	"github.com/OmarEl-Mohandes/PaymentGateway/internal/domain"
	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	service domain.PaymentService
}

func NewPaymentHandler(service domain.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var req domain.CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrMalformedInput([]string{"invalid request body"})
	}
	if req.MerchantID == "" {
		return domain.ErrMalformedInput([]string{"merchant_id is required"})
	}

	resp, err := h.service.CreatePayment(c.Request().Context(), req.MerchantID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, resp)
}

func (h *PaymentHandler) SettlePayment(c echo.Context) error {
	var req domain.SettlementRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrMalformedInput([]string{"invalid request body"})
	}
	req.PaymentID = c.Param("id")

	if reasons := validateSettlementRequest(req); len(reasons) > 0 {
		return domain.ErrMalformedInput(reasons)
	}

	outcome, err := h.service.SettlePayment(c.Request().Context(), req)
	if err != nil {
		return err
	}

	// Business failures ride in the body with fail codes; transport-level
	// status codes stay reserved for the gateway's own auth layer.
	return c.JSON(http.StatusOK, outcome)
}

func (h *PaymentHandler) GetPayment(c echo.Context) error {
	paymentID := c.Param("id")
	merchantID := c.QueryParam("merchant_id")
	if merchantID == "" {
		return domain.ErrMalformedInput([]string{"merchant_id query parameter is required"})
	}

	projection, err := h.service.GetPayment(c.Request().Context(), paymentID, merchantID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, projection)
}

func validateSettlementRequest(req domain.SettlementRequest) []string {
	var reasons []string

	if req.MerchantID == "" {
		reasons = append(reasons, "merchant_id is required")
	}
	if req.Amount <= 0 {
		reasons = append(reasons, "amount must be greater than 0")
	}
	if req.Currency == "" {
		reasons = append(reasons, "currency is required")
	}
	if req.CardName == "" {
		reasons = append(reasons, "card_name is required")
	}
	if req.CardNumber == "" {
		reasons = append(reasons, "card_number is required")
	}
	if req.ExpiryMonth < 1 || req.ExpiryMonth > 12 {
		reasons = append(reasons, "expiry_month must be between 1 and 12")
	}
	if req.ExpiryYear <= 0 {
		reasons = append(reasons, "expiry_year is required")
	}

	return reasons
}
