package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bistro-service/internal/api/dto"
	"github.com/spec-kit/bistro-service/internal/auth"
	"github.com/spec-kit/bistro-service/internal/service"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

// CartHandler exposes cart endpoints.
type CartHandler struct {
	carts *service.CartService
}

// NewCartHandler constructs handler.
func NewCartHandler(carts *service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// List handles GET /cart?email=... for the authenticated owner.
func (h *CartHandler) List(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("missing identity")
	}

	entries, err := h.carts.ListOwn(c.UserContext(), identity, c.Query("email"))
	if err != nil {
		return err
	}
	return c.JSON(entries)
}

// Add handles POST /cart.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("missing identity")
	}

	var req dto.AddCartEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	entry, err := h.carts.Add(c.UserContext(), identity, req.MenuItemID, req.Name, req.Category, req.Price, req.Image)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(entry)
}

// Remove handles DELETE /cart/:id.
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	removed, err := h.carts.Remove(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"removed": removed})
}
