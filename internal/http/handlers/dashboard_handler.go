package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/support-portal/backend/internal/http/dto"
	"github.com/support-portal/backend/internal/middleware"
	"github.com/support-portal/backend/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
	log              *zap.Logger
}

func NewDashboardHandler(dashboardService *services.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, log: log}
}

func (h *DashboardHandler) Metrics(c *fiber.Ctx) error {
	actor := middleware.GetIdentity(c)
	m, err := h.dashboardService.Metrics(c.Context(), actor)
	if err != nil {
		h.log.Error("dashboard metrics failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: m})
}

func (h *DashboardHandler) ListTickets(c *fiber.Ctx) error {
	actor := middleware.GetIdentity(c)

	var status, priority *string
	if v := c.Query("status"); v != "" {
		status = &v
	}
	if v := c.Query("priority"); v != "" {
		priority = &v
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	tickets, err := h.dashboardService.ListTickets(c.Context(), actor, status, priority, limit, offset)
	if err != nil {
		h.log.Error("list tickets failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: tickets})
}
