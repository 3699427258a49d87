package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bistro-service/internal/api/dto"
	"github.com/spec-kit/bistro-service/internal/auth"
	"github.com/spec-kit/bistro-service/internal/service"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

// CheckoutHandler exposes payment-intent creation and order finalization.
type CheckoutHandler struct {
	checkout *service.CheckoutService
}

// NewCheckoutHandler constructs handler.
func NewCheckoutHandler(checkout *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// PaymentIntent handles POST /checkout/payment-intent.
func (h *CheckoutHandler) PaymentIntent(c *fiber.Ctx) error {
	var req dto.PaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	secret, err := h.checkout.BeginPaymentIntent(c.UserContext(), req.Price)
	if err != nil {
		return err
	}
	return c.JSON(dto.PaymentIntentResponse{ClientSecret: secret})
}

// Finalize handles POST /checkout/payments. The payment owner is the
// validated identity; the body cannot speak for anyone else.
func (h *CheckoutHandler) Finalize(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("missing identity")
	}

	var req dto.FinalizeCheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	result, err := h.checkout.Finalize(c.UserContext(), identity.Subject, req.Price, req.CartItemIDs, req.MenuItemIDs, req.IdempotencyKey)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.FinalizeCheckoutResponse{
		PaymentID:    result.PaymentID,
		RemovedCount: result.RemovedCount,
	})
}
