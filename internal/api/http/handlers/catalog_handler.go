package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bistro-service/internal/api/dto"
	"github.com/spec-kit/bistro-service/internal/service"
	apperrors "github.com/spec-kit/bistro-service/pkg/util"
)

// CatalogHandler exposes menu and review endpoints.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListMenu handles GET /menu.
func (h *CatalogHandler) ListMenu(c *fiber.Ctx) error {
	items, err := h.catalog.ListMenu(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// CreateMenuItem handles POST /menu (admin only).
func (h *CatalogHandler) CreateMenuItem(c *fiber.Ctx) error {
	var req dto.CreateMenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	item, err := h.catalog.CreateMenuItem(c.UserContext(), req.Name, req.Category, req.Price, req.Image, req.Recipe)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(item)
}

// DeleteMenuItem handles DELETE /menu/:id (admin only).
func (h *CatalogHandler) DeleteMenuItem(c *fiber.Ctx) error {
	if err := h.catalog.DeleteMenuItem(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListReviews handles GET /reviews.
func (h *CatalogHandler) ListReviews(c *fiber.Ctx) error {
	reviews, err := h.catalog.ListReviews(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(reviews)
}
