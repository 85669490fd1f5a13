package handlers

import (
	"bloodbridge/internal/core/services"
	"bloodbridge/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles the admin dashboard endpoint
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get returns the composed admin dashboard
// @Summary Admin dashboard
// @Description All requests plus active and donated donors in one payload
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.DashboardData
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	data, err := h.dashboardService.Get(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Error fetching dashboard data", err)
	}

	return c.JSON(data)
}
