package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bistro-service/internal/service"
)

// ReportsHandler exposes admin reporting endpoints.
type ReportsHandler struct {
	reports *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reports *service.ReportService) *ReportsHandler {
	return &ReportsHandler{reports: reports}
}

// OrderStats handles GET /reports/order-stats (admin only).
func (h *ReportsHandler) OrderStats(c *fiber.Ctx) error {
	stats, err := h.reports.CategoryBreakdown(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// AdminStats handles GET /reports/admin-stats (admin only).
func (h *ReportsHandler) AdminStats(c *fiber.Ctx) error {
	stats, err := h.reports.DashboardStats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
